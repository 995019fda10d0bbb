package nes

// Mapper2: https://www.nesdev.org/wiki/UxROM
type mapper2 struct {
	banks       int
	currentBank int
	prgROM      []byte
	prgRAM      [prgRAMSize]byte
}

func newMapper2(prgROM []byte) *mapper2 {
	return &mapper2{banks: len(prgROM) / prgROMSizeUnit, prgROM: prgROM}
}

func (m *mapper2) Read(address uint16) byte {
	switch {
	case address < 0x8000:
		return m.prgRAM[address%prgRAMSize]
	case address < 0xC000:
		// CPU $8000-$BFFF: 16 KB switchable PRG ROM bank
		return m.prgROM[m.currentBank*prgROMSizeUnit+int(address-0x8000)]
	default:
		// CPU $C000-$FFFF: 16 KB PRG ROM bank, fixed to the last bank
		return m.prgROM[(m.banks-1)*prgROMSizeUnit+int(address-0xC000)]
	}
}

func (m *mapper2) Write(address uint16, data byte) {
	if address < 0x8000 {
		m.prgRAM[address%prgRAMSize] = data
		return
	}
	m.currentBank = int(data) % m.banks
}
