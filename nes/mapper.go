package nes

import "github.com/pkg/errors"

// Mapper is the CPU side of a cartridge board, $6000-$FFFF.
type Mapper interface {
	Read(address uint16) byte
	Write(address uint16, data byte)
}

// NewMapper creates the mapper of the cartridge.
func NewMapper(cartridge *Cartridge) (Mapper, error) {
	switch cartridge.mapper {
	case 0:
		return newMapper0(cartridge.prgROM), nil
	case 2:
		return newMapper2(cartridge.prgROM), nil
	}
	return nil, errors.Errorf("unsupported mapper: %d", cartridge.mapper)
}
