package nes

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// stateSize is A, X, Y, SP, P, PC, cycles, pending interrupt, NMI edge latch
// and IRQ line.
const stateSize = 5 + 2 + 8 + 3

// State is a snapshot of the CPU.
type State struct {
	A, X, Y byte
	SP      byte
	P       byte
	PC      uint16
	Cycles  uint64
	Pending Interrupt
	NMIEdge bool // NMI line level seen last, an edge latches a request
	IRQLine bool
}

// MarshalBinary encodes the state in the order
// A, X, Y, SP, P, PC, cycles, pending interrupt, NMI edge latch, IRQ line.
// Multi-byte values are little endian.
func (s State) MarshalBinary() ([]byte, error) {
	b := make([]byte, stateSize)
	b[0], b[1], b[2], b[3], b[4] = s.A, s.X, s.Y, s.SP, s.P
	binary.LittleEndian.PutUint16(b[5:], s.PC)
	binary.LittleEndian.PutUint64(b[7:], s.Cycles)
	b[15] = byte(s.Pending)
	b[16] = boolByte(s.NMIEdge)
	b[17] = boolByte(s.IRQLine)
	return b, nil
}

// UnmarshalBinary decodes a state encoded by MarshalBinary.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) != stateSize {
		return errors.Wrapf(ErrInvalidState, "got %d bytes, want %d", len(b), stateSize)
	}
	if Interrupt(b[15]) > InterruptReset {
		return errors.Wrapf(ErrInvalidState, "unknown pending interrupt %d", b[15])
	}
	s.A, s.X, s.Y, s.SP, s.P = b[0], b[1], b[2], b[3], b[4]
	s.PC = binary.LittleEndian.Uint16(b[5:])
	s.Cycles = binary.LittleEndian.Uint64(b[7:])
	s.Pending = Interrupt(b[15])
	s.NMIEdge = b[16] != 0
	s.IRQLine = b[17] != 0
	return nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// Snapshot returns the current state.
// Pending is the highest priority request, a masked IRQ is kept in IRQLine.
func (c *CPU) Snapshot() State {
	pending := InterruptNone
	switch {
	case c.resetPending:
		pending = InterruptReset
	case c.nmiPending:
		pending = InterruptNMI
	case c.irqLine:
		pending = InterruptIRQ
	}
	return State{
		A:       c.a,
		X:       c.x,
		Y:       c.y,
		SP:      c.s,
		P:       c.p.encode(),
		PC:      c.pc,
		Cycles:  c.cycles,
		Pending: pending,
		NMIEdge: c.nmiLine,
		IRQLine: c.irqLine,
	}
}

// Restore restores a state taken by Snapshot.
// The instruction in progress for Tick, stall cycles and the jam are not part
// of the state.
func (c *CPU) Restore(s State) {
	c.a, c.x, c.y = s.A, s.X, s.Y
	c.s = s.SP
	c.p.decodeFrom(s.P)
	c.pc = s.PC
	c.cycles = s.Cycles
	c.resetPending = s.Pending == InterruptReset
	c.nmiPending = s.Pending == InterruptNMI
	c.irqLine = s.IRQLine || s.Pending == InterruptIRQ
	c.nmiLine = s.NMIEdge
	c.wait = 0
	c.stall = 0
	c.jammed = false
}
