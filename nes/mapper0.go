package nes

import "github.com/golang/glog"

const prgRAMSize = 0x2000

// Mapper0: https://www.nesdev.org/wiki/NROM
type mapper0 struct {
	prgROM []byte
	prgRAM [prgRAMSize]byte
}

func newMapper0(prgROM []byte) *mapper0 {
	return &mapper0{prgROM: prgROM}
}

func (m *mapper0) Read(address uint16) byte {
	if 0x8000 <= address {
		// CPU $C000-$FFFF: Last 16 KB of ROM (NROM-256) or mirror of $8000-$BFFF (NROM-128).
		mod := uint16(len(m.prgROM))
		return m.prgROM[(address-0x8000)%mod]
	}
	// CPU $6000-$7FFF: PRG RAM, test ROMs report their results here.
	return m.prgRAM[address%prgRAMSize]
}

func (m *mapper0) Write(address uint16, data byte) {
	if 0x8000 <= address {
		glog.V(1).Infof("Ignored write to PRG ROM: address=0x%04x, data=0x%02x", address, data)
		return
	}
	m.prgRAM[address%prgRAMSize] = data
}
