package nes

import (
	"fmt"

	"github.com/golang/glog"
)

// Interrupt is a kind of interrupt request.
type Interrupt byte

const (
	InterruptNone Interrupt = iota
	InterruptIRQ
	InterruptNMI
	InterruptReset
)

func (i Interrupt) String() string {
	switch i {
	case InterruptIRQ:
		return "IRQ"
	case InterruptNMI:
		return "NMI"
	case InterruptReset:
		return "Reset"
	}
	return "None"
}

const (
	nmiVector   uint16 = 0xFFFA
	resetVector uint16 = 0xFFFC
	irqVector   uint16 = 0xFFFE

	interruptCycles = 7
)

// SetNMI sets the level of the NMI input, true means asserted (the /NMI
// line is low). NMI is edge triggered, a request is latched when the line
// becomes asserted and cleared when it is serviced.
func (c *CPU) SetNMI(asserted bool) {
	if asserted && !c.nmiLine {
		c.nmiPending = true
	}
	c.nmiLine = asserted
}

// TriggerNMI latches an NMI request regardless of the line level, this will
// be called by PPU at the start of vblank.
func (c *CPU) TriggerNMI() {
	c.nmiPending = true
}

// SetIRQ sets the level of the IRQ input. IRQ is level triggered and masked
// by the I flag, the request stays while the line is asserted.
func (c *CPU) SetIRQ(asserted bool) {
	c.irqLine = asserted
}

// TriggerReset requests a reset which is performed before the next fetch.
func (c *CPU) TriggerReset() {
	c.resetPending = true
}

// Pending returns the interrupt which will be serviced before the next fetch.
func (c *CPU) Pending() Interrupt {
	switch {
	case c.resetPending:
		return InterruptReset
	case c.nmiPending:
		return InterruptNMI
	case c.irqLine && !c.p.i:
		return InterruptIRQ
	}
	return InterruptNone
}

// Reset does Reset.
// A, X and Y are kept, P becomes 0x34 (I set, B is not stored) and S 0xFD.
func (c *CPU) Reset(bus Bus) {
	c.s = 0xFD
	c.p.decodeFrom(0x34)
	c.pc = read16(bus, resetVector)
	c.resetPending = false
	c.nmiPending = false
	c.jammed = false
	c.stall = 0
	c.wait = 0
	c.cycles += interruptCycles
	glog.Infof("CPU reset: PC=0x%04x", c.pc)
}

// interrupt pushes PC and P, sets I and jumps through the vector.
func (c *CPU) interrupt(bus Bus, vector uint16) {
	c.push16(bus, c.pc)
	c.push(bus, c.p.pushed(false))
	c.p.i = true
	c.pc = read16(bus, vector)
	c.cycles += interruptCycles
}

// serviceInterrupt services the pending interrupt if any and returns the
// cycles it took.
func (c *CPU) serviceInterrupt(bus Bus) int {
	switch c.Pending() {
	case InterruptReset:
		c.Reset(bus)
	case InterruptNMI:
		c.nmiPending = false
		c.interrupt(bus, nmiVector)
		c.lastExecution = fmt.Sprintf("NMI, PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, S=0x%02x", c.pc, c.a, c.x, c.y, c.s)
	case InterruptIRQ:
		c.interrupt(bus, irqVector)
		c.lastExecution = fmt.Sprintf("IRQ, PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, S=0x%02x", c.pc, c.a, c.x, c.y, c.s)
	default:
		return 0
	}
	return interruptCycles
}
