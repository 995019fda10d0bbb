package nes

import "github.com/golang/glog"

// Console runs a CPU on a cartridge.
type Console struct {
	CPU *CPU
	Bus *CPUBus
}

// NewConsole creates a console from an iNES image.
func NewConsole(buf []byte, config Config) (*Console, error) {
	cartridge, err := NewCartridge(buf)
	if err != nil {
		return nil, err
	}
	mapper, err := NewMapper(cartridge)
	if err != nil {
		return nil, err
	}
	glog.Infof("Cartridge loaded: mapper=%d, PRG ROM=%d bytes", cartridge.mapper, len(cartridge.prgROM))
	return &Console{CPU: NewCPU(config), Bus: NewCPUBus(NewRAM(), mapper)}, nil
}

// Step runs an instruction, or a stall cycle, and returns the cycles.
func (c *Console) Step() (int, error) {
	cycles, err := c.CPU.Step(c.Bus)
	if err != nil {
		return cycles, err
	}
	// OAM DMA halts the CPU for 513 cycles, +1 on an odd cycle.
	if c.Bus.takeDMA() {
		stall := uint64(513)
		if c.CPU.Cycles()%2 == 1 {
			stall++
		}
		c.CPU.Stall(stall)
	}
	return cycles, nil
}

// Reset resets the CPU.
func (c *Console) Reset() {
	c.CPU.Reset(c.Bus)
}
