package nes

import "github.com/golang/glog"

const (
	oamDMA uint16 = 0x4014
	joy1   uint16 = 0x4016
	joy2   uint16 = 0x4017
)

// CPUBus is the CPU address space of a NES without PPU and APU.
// Their registers read as open bus and writes to them are dropped.
type CPUBus struct {
	wram        *RAM
	mapper      Mapper
	controllers [2]*Controller
	openBus     byte // last value on the data bus
	dma         bool // OAMDMA was written
}

// NewCPUBus creates a new Bus for CPU.
// CPU memory map
// 0x0000 - 0x07FF	WRAM
// 0x0800 - 0x1FFF	WRAM Mirror
// 0x2000 - 0x2007	PPU Registers
// 0x2008 - 0x3FFF	PPU Registers Mirror
// 0x4000 - 0x401F	I/O Port
// 0x4020 - 0x5FFF	Extended RAM
// 0x6000 - 0x7FFF	Battery Backup RAM
// 0x8000 - 0xBFFF	ProgramROM Low
// 0xC000 - 0xFFFF	ProgramROM High
func NewCPUBus(wram *RAM, mapper Mapper) *CPUBus {
	return &CPUBus{wram: wram, mapper: mapper, controllers: [2]*Controller{NewController(), NewController()}}
}

// Controller returns the controller on port 0 ($4016) or 1 ($4017).
func (b *CPUBus) Controller(port int) *Controller {
	return b.controllers[port]
}

// Read reads a byte.
func (b *CPUBus) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		b.openBus = b.wram.read(address)
	case address == joy1 || address == joy2:
		// Only bit 0 is driven, the upper bits are open bus.
		b.openBus = b.openBus&0xE0 | b.controllers[address-joy1].read()
	case address < 0x4020:
		glog.V(1).Infof("Unimplemented CPU bus read: address=0x%04x", address)
	case address < 0x6000:
	default:
		b.openBus = b.mapper.Read(address)
	}
	return b.openBus
}

// Peek reads a byte without side effects.
func (b *CPUBus) Peek(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.wram.read(address)
	case address == joy1 || address == joy2:
		return b.openBus&0xE0 | b.controllers[address-joy1].peek()
	case address < 0x6000:
		return b.openBus
	default:
		return b.mapper.Read(address)
	}
}

// Write writes a byte.
func (b *CPUBus) Write(address uint16, data byte) {
	b.openBus = data
	switch {
	case address < 0x2000:
		b.wram.write(address, data)
	case address == oamDMA:
		b.dma = true
	case address == joy1:
		b.controllers[0].write(data)
		b.controllers[1].write(data)
	case address < 0x4020:
		glog.V(1).Infof("Unimplemented CPU bus write: address=0x%04x, data=0x%02x", address, data)
	case address < 0x6000:
	default:
		b.mapper.Write(address, data)
	}
}

// takeDMA returns true once after OAMDMA was written.
func (b *CPUBus) takeDMA() bool {
	dma := b.dma
	b.dma = false
	return dma
}
