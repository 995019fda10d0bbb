package nes

import "testing"

func TestUnofficialOpcodes(t *testing.T) {
	for _, test := range []struct {
		name    string
		program []byte
		a, x    byte
		carry   bool
		memory  byte // at 0x10
		wantA   byte
		wantX   byte
		wantMem byte
		wantP   byte
		cycles  int
	}{
		{name: "LAX", program: []byte{0xA7, 0x10}, memory: 0x80, wantA: 0x80, wantX: 0x80, wantMem: 0x80, wantP: 0xA0, cycles: 3},
		{name: "SAX", program: []byte{0x87, 0x10}, a: 0xF0, x: 0x3C, wantA: 0xF0, wantX: 0x3C, wantMem: 0x30, wantP: 0x20, cycles: 3},
		{name: "DCP", program: []byte{0xC7, 0x10}, a: 0x40, memory: 0x41, wantA: 0x40, wantMem: 0x40, wantP: 0x23, cycles: 5},
		{name: "ISB", program: []byte{0xE7, 0x10}, a: 0x10, carry: true, memory: 0x04, wantA: 0x0B, wantMem: 0x05, wantP: 0x21, cycles: 5},
		{name: "SLO", program: []byte{0x07, 0x10}, a: 0x01, memory: 0x81, wantA: 0x03, wantMem: 0x02, wantP: 0x21, cycles: 5},
		{name: "RLA", program: []byte{0x27, 0x10}, a: 0xFF, carry: true, memory: 0x40, wantA: 0x81, wantMem: 0x81, wantP: 0xA0, cycles: 5},
		{name: "SRE", program: []byte{0x47, 0x10}, a: 0x01, memory: 0x03, wantA: 0x00, wantMem: 0x01, wantP: 0x23, cycles: 5},
		{name: "RRA", program: []byte{0x67, 0x10}, a: 0x10, memory: 0x03, wantA: 0x12, wantMem: 0x01, wantP: 0x20, cycles: 5},
		{name: "ANC", program: []byte{0x0B, 0xFF}, a: 0x80, wantA: 0x80, wantP: 0xA1, cycles: 2},
		{name: "ALR", program: []byte{0x4B, 0x03}, a: 0xFF, wantA: 0x01, wantP: 0x21, cycles: 2},
		{name: "ARR carry in", program: []byte{0x6B, 0xFF}, a: 0xC0, carry: true, wantA: 0xE0, wantP: 0xA1, cycles: 2},
		{name: "ARR overflow", program: []byte{0x6B, 0xFF}, a: 0x40, wantA: 0x20, wantP: 0x60, cycles: 2},
		{name: "AXS", program: []byte{0xCB, 0x02}, a: 0xF0, x: 0x3C, wantA: 0xF0, wantX: 0x2E, wantP: 0x21, cycles: 2},
		{name: "XAA", program: []byte{0x8B, 0xFF}, x: 0x0F, wantA: 0x0E, wantX: 0x0F, wantP: 0x20, cycles: 2},
		{name: "LXA", program: []byte{0xAB, 0x0F}, wantA: 0x0F, wantX: 0x0F, wantP: 0x20, cycles: 2},
		{name: "SBC 0xEB", program: []byte{0xEB, 0x01}, a: 0x05, carry: true, wantA: 0x04, wantP: 0x21, cycles: 2},
		{name: "NOP zeropage", program: []byte{0x04, 0x10}, a: 0x01, memory: 0x55, wantA: 0x01, wantMem: 0x55, wantP: 0x20, cycles: 3},
	} {
		cpu, bus := newTestCPU(t, Config{}, 0x8000, test.program...)
		cpu.a = test.a
		cpu.x = test.x
		cpu.p.c = test.carry
		bus.mem[0x10] = test.memory
		cycles := mustStep(t, cpu, bus)
		if cycles != test.cycles {
			t.Errorf("%s: cycles: got=%d, want=%d", test.name, cycles, test.cycles)
		}
		if cpu.a != test.wantA {
			t.Errorf("%s: cpu.a: got=0x%02x, want=0x%02x", test.name, cpu.a, test.wantA)
		}
		if cpu.x != test.wantX {
			t.Errorf("%s: cpu.x: got=0x%02x, want=0x%02x", test.name, cpu.x, test.wantX)
		}
		if bus.mem[0x10] != test.wantMem {
			t.Errorf("%s: memory: got=0x%02x, want=0x%02x", test.name, bus.mem[0x10], test.wantMem)
		}
		if got := cpu.P(); got != test.wantP {
			t.Errorf("%s: cpu.P(): got=0x%02x, want=0x%02x", test.name, got, test.wantP)
		}
		if cpu.pc != 0x8002 {
			t.Errorf("%s: cpu.pc: got=0x%04x, want=0x8002", test.name, cpu.pc)
		}
	}
}

func TestLAS(t *testing.T) {
	cpu, bus := newTestCPU(t, Config{}, 0x8000, 0xBB, 0xF0, 0x01)
	cpu.y = 0x20
	bus.mem[0x0210] = 0xF3
	if cycles := mustStep(t, cpu, bus); cycles != 5 {
		t.Errorf("cycles: got=%d, want=5", cycles)
	}
	// S is 0xFD after reset.
	if cpu.a != 0xF1 || cpu.x != 0xF1 || cpu.s != 0xF1 {
		t.Errorf("A, X, S: got=(0x%02x, 0x%02x, 0x%02x), want=0xf1", cpu.a, cpu.x, cpu.s)
	}
	if !cpu.p.n || cpu.p.z {
		t.Errorf("N, Z: got=(%v, %v), want=(true, false)", cpu.p.n, cpu.p.z)
	}
}

func TestStoreHigh(t *testing.T) {
	for _, test := range []struct {
		name    string
		program []byte
		a, x, y byte
		address uint16
		want    byte
		wantS   byte
	}{
		{name: "SHX", program: []byte{0x9E, 0x00, 0x12}, x: 0xFF, y: 0x10, address: 0x1210, want: 0x13, wantS: 0xFD},
		{name: "SHX crossed", program: []byte{0x9E, 0xF0, 0x12}, x: 0x05, y: 0x20, address: 0x0110, want: 0x01, wantS: 0xFD},
		{name: "SHY", program: []byte{0x9C, 0x00, 0x12}, x: 0x10, y: 0xFF, address: 0x1210, want: 0x13, wantS: 0xFD},
		{name: "SHA", program: []byte{0x9F, 0x00, 0x12}, a: 0xFF, x: 0x33, y: 0x10, address: 0x1210, want: 0x13, wantS: 0xFD},
		{name: "TAS", program: []byte{0x9B, 0x00, 0x12}, a: 0xFF, x: 0xF7, address: 0x1200, want: 0x13, wantS: 0xF7},
	} {
		cpu, bus := newTestCPU(t, Config{}, 0x8000, test.program...)
		cpu.a, cpu.x, cpu.y = test.a, test.x, test.y
		if cycles := mustStep(t, cpu, bus); cycles != 5 {
			t.Errorf("%s: cycles: got=%d, want=5", test.name, cycles)
		}
		if got := bus.mem[test.address]; got != test.want {
			t.Errorf("%s: memory[0x%04x]: got=0x%02x, want=0x%02x", test.name, test.address, got, test.want)
		}
		if cpu.s != test.wantS {
			t.Errorf("%s: cpu.s: got=0x%02x, want=0x%02x", test.name, cpu.s, test.wantS)
		}
	}
}

func TestUnofficialNOPPageCross(t *testing.T) {
	cpu, bus := newTestCPU(t, Config{}, 0x8000, 0x1C, 0xF0, 0x12)
	cpu.x = 0x20
	if cycles := mustStep(t, cpu, bus); cycles != 5 {
		t.Errorf("cycles: got=%d, want=5", cycles)
	}
	if cpu.pc != 0x8003 {
		t.Errorf("cpu.pc: got=0x%04x, want=0x8003", cpu.pc)
	}
}
