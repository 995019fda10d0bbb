package nes

import "testing"

// testBus is a flat 64KB memory.
type testBus struct {
	mem     [0x10000]byte
	onWrite func(address uint16, data byte)
}

func (b *testBus) Read(address uint16) byte {
	return b.mem[address]
}

func (b *testBus) Write(address uint16, data byte) {
	b.mem[address] = data
	if b.onWrite != nil {
		b.onWrite(address, data)
	}
}

// load copies data to memory at address.
func (b *testBus) load(address uint16, data ...byte) {
	for i, x := range data {
		b.mem[address+uint16(i)] = x
	}
}

func (b *testBus) setVector(vector uint16, address uint16) {
	b.load(vector, byte(address), byte(address>>8))
}

// newTestCPU creates a CPU which has been reset to a program at pc.
// Cycles and P are cleared.
func newTestCPU(t *testing.T, config Config, pc uint16, program ...byte) (*CPU, *testBus) {
	t.Helper()
	bus := &testBus{}
	bus.setVector(resetVector, pc)
	bus.load(pc, program...)
	cpu := NewCPU(config)
	if cycles, err := cpu.Step(bus); err != nil || cycles != 7 {
		t.Fatalf("reset: got=(%d, %v), want=(7, nil)", cycles, err)
	}
	if cpu.pc != pc {
		t.Fatalf("cpu.pc after reset: got=0x%04x, want=0x%04x", cpu.pc, pc)
	}
	cpu.cycles = 0
	cpu.p.decodeFrom(0x00)
	return cpu, bus
}

// mustStep runs a step and fails on an error.
func mustStep(t *testing.T, cpu *CPU, bus Bus) int {
	t.Helper()
	cycles, err := cpu.Step(bus)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return cycles
}
