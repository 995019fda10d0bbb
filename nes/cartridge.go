package nes

import "github.com/pkg/errors"

const (
	chrROMSizeUnit      int  = 0x2000 // 8KB
	prgROMSizeUnit      int  = 0x4000 // 16KB
	inesHeaderSizeBytes int  = 16     // The valid INES header has 16 bytes
	trainerSizeBytes    int  = 512
	msDOSEOF            byte = 0x1A
)

// https://www.nesdev.org/wiki/INES
type Cartridge struct {
	prgROM []byte
	chrROM []byte
	mapper byte
	flags6 byte // https://www.nesdev.org/wiki/INES#Flags_6
	flags7 byte // https://www.nesdev.org/wiki/INES#Flags_7
}

// isValid checks whether the cartridge is valid INES format.
func isValid(data []byte) bool {
	return len(data) >= inesHeaderSizeBytes &&
		data[0] == byte('N') &&
		data[1] == byte('E') &&
		data[2] == byte('S') &&
		data[3] == msDOSEOF
}

// NewCartridge creates a cartridge.
func NewCartridge(data []byte) (*Cartridge, error) {
	if !isValid(data) {
		return nil, errors.New("the buffer is not a valid NES format")
	}
	c := &Cartridge{
		flags6: data[6],
		flags7: data[7],
	}
	c.mapper = c.flags7&0xF0 | c.flags6>>4
	l := inesHeaderSizeBytes
	// Flags 6 bit 2: 512-byte trainer at $7000-$71FF, skipped.
	if c.flags6&0x04 != 0 {
		l += trainerSizeBytes
	}
	prgSize := int(data[4]) * prgROMSizeUnit
	chrSize := int(data[5]) * chrROMSizeUnit
	if prgSize == 0 {
		return nil, errors.New("the cartridge has no PRG ROM")
	}
	if len(data) < l+prgSize+chrSize {
		return nil, errors.Errorf("the cartridge is truncated: got %d bytes, want %d", len(data), l+prgSize+chrSize)
	}
	c.prgROM = data[l : l+prgSize]
	c.chrROM = data[l+prgSize : l+prgSize+chrSize]
	return c, nil
}

// Mapper returns the iNES mapper number.
func (c *Cartridge) Mapper() byte {
	return c.mapper
}
