package nes

import "testing"

func TestTrace(t *testing.T) {
	bus := &testBus{}
	bus.setVector(resetVector, 0xC000)
	bus.load(0xC000, 0x4C, 0xF5, 0xC5)
	bus.load(0xC5F5, 0x04, 0xA9)
	cpu := NewCPU(Config{})
	mustStep(t, cpu, bus)
	for _, want := range []string{
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7",
		"C5F5  04 A9    *NOP $A9                         A:00 X:00 Y:00 P:24 SP:FD CYC:10",
	} {
		if got := cpu.Trace(bus); got != want {
			t.Errorf("Trace:\ngot =%q\nwant=%q", got, want)
		}
		mustStep(t, cpu, bus)
	}
}

func TestDisassemble(t *testing.T) {
	for _, test := range []struct {
		program  []byte
		want     string
		wantSize uint16
	}{
		{program: []byte{0xEA}, want: "NOP", wantSize: 1},
		{program: []byte{0x0A}, want: "ASL A", wantSize: 1},
		{program: []byte{0xA9, 0x42}, want: "LDA #$42", wantSize: 2},
		{program: []byte{0xB5, 0x10}, want: "LDA $10,X", wantSize: 2},
		{program: []byte{0xB6, 0x10}, want: "LDX $10,Y", wantSize: 2},
		{program: []byte{0xD0, 0xFE}, want: "BNE $8000", wantSize: 2},
		{program: []byte{0xBD, 0x34, 0x12}, want: "LDA $1234,X", wantSize: 3},
		{program: []byte{0x6C, 0xFF, 0x02}, want: "JMP ($02FF)", wantSize: 3},
		{program: []byte{0xA1, 0x80}, want: "LDA ($80,X)", wantSize: 2},
		{program: []byte{0xB1, 0x80}, want: "LDA ($80),Y", wantSize: 2},
	} {
		bus := &testBus{}
		bus.load(0x8000, test.program...)
		cpu := NewCPU(Config{})
		got, size := cpu.Disassemble(bus, 0x8000)
		if got != test.want || size != test.wantSize {
			t.Errorf("Disassemble(% x): got=(%q, %d), want=(%q, %d)", test.program, got, size, test.want, test.wantSize)
		}
	}
}

// peekBus counts reads, which have side effects on a real bus.
type peekBus struct {
	testBus
	reads int
}

func (b *peekBus) Read(address uint16) byte {
	b.reads++
	return b.testBus.Read(address)
}

func (b *peekBus) Peek(address uint16) byte {
	return b.mem[address]
}

func TestTraceUsesPeek(t *testing.T) {
	bus := &peekBus{}
	bus.load(0x8000, 0xAD, 0x02, 0x20)
	cpu := NewCPU(Config{})
	cpu.pc = 0x8000
	cpu.Trace(bus)
	if bus.reads != 0 {
		t.Errorf("reads: got=%d, want=0", bus.reads)
	}
}
