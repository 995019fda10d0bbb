package nes

import "testing"

// newINES builds an iNES image with banks of 16KB PRG ROM, the program is
// placed at the start of the first bank and the reset vector points to
// 0x8000.
func newINES(mapper byte, banks int, program ...byte) []byte {
	buf := []byte{'N', 'E', 'S', 0x1A, byte(banks), 0, mapper << 4, mapper & 0xF0}
	buf = append(buf, make([]byte, inesHeaderSizeBytes-len(buf))...)
	prg := make([]byte, banks*prgROMSizeUnit)
	copy(prg, program)
	last := (banks - 1) * prgROMSizeUnit
	prg[last+0x3FFC] = 0x00
	prg[last+0x3FFD] = 0x80
	return append(buf, prg...)
}

func TestNewCartridge(t *testing.T) {
	c, err := NewCartridge(newINES(2, 4, 0xEA))
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.Mapper() != 2 {
		t.Errorf("Mapper(): got=%d, want=2", c.Mapper())
	}
	if len(c.prgROM) != 4*prgROMSizeUnit {
		t.Errorf("len(prgROM): got=%d, want=%d", len(c.prgROM), 4*prgROMSizeUnit)
	}
	if c.prgROM[0] != 0xEA {
		t.Errorf("prgROM[0]: got=0x%02x, want=0xea", c.prgROM[0])
	}
}

func TestNewCartridgeTrainer(t *testing.T) {
	image := newINES(0, 1, 0xEA)
	image[6] |= 0x04
	trained := append(append(append([]byte(nil), image[:inesHeaderSizeBytes]...), make([]byte, trainerSizeBytes)...), image[inesHeaderSizeBytes:]...)
	c, err := NewCartridge(trained)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.prgROM[0] != 0xEA {
		t.Errorf("prgROM[0]: got=0x%02x, want=0xea", c.prgROM[0])
	}
}

func TestNewCartridgeErrors(t *testing.T) {
	noPRG := newINES(0, 1)
	noPRG[4] = 0
	for _, test := range []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "bad magic", data: append([]byte("NES!"), make([]byte, 12)...)},
		{name: "no PRG ROM", data: noPRG},
		{name: "truncated", data: newINES(0, 1)[:0x1000]},
	} {
		if _, err := NewCartridge(test.data); err == nil {
			t.Errorf("%s: got=nil, want an error", test.name)
		}
	}
}

func TestNewMapper(t *testing.T) {
	c, err := NewCartridge(newINES(1, 1))
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if _, err := NewMapper(c); err == nil {
		t.Errorf("NewMapper(mapper 1): got=nil, want an error")
	}
}

func TestMapper0(t *testing.T) {
	c, _ := NewCartridge(newINES(0, 1, 0x11, 0x22))
	m, err := NewMapper(c)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	// NROM-128 mirrors the bank at 0xC000.
	if got := m.Read(0xC001); got != 0x22 {
		t.Errorf("Read(0xc001): got=0x%02x, want=0x22", got)
	}
	m.Write(0x8000, 0xFF)
	if got := m.Read(0x8000); got != 0x11 {
		t.Errorf("Read(0x8000) after a write: got=0x%02x, want=0x11", got)
	}
	m.Write(0x6000, 0x80)
	if got := m.Read(0x6000); got != 0x80 {
		t.Errorf("Read(0x6000): got=0x%02x, want=0x80", got)
	}
}

func TestMapper2(t *testing.T) {
	image := newINES(2, 4)
	for bank := 0; bank < 4; bank++ {
		image[inesHeaderSizeBytes+bank*prgROMSizeUnit] = byte(bank)
	}
	c, _ := NewCartridge(image)
	m, err := NewMapper(c)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if got := m.Read(0xC000); got != 3 {
		t.Errorf("Read(0xc000): got=%d, want=3", got)
	}
	for _, bank := range []byte{0, 2, 1, 5} {
		m.Write(0x8000, bank)
		if got, want := m.Read(0x8000), bank%4; got != want {
			t.Errorf("Read(0x8000) on bank %d: got=%d, want=%d", bank, got, want)
		}
		if got := m.Read(0xC000); got != 3 {
			t.Errorf("Read(0xc000) on bank %d: got=%d, want=3", bank, got)
		}
	}
}
