package nes

import (
	"fmt"
	"strings"
)

// peek reads without side effects when the bus supports it.
func peek(bus Bus, address uint16) byte {
	if p, ok := bus.(Peeker); ok {
		return p.Peek(address)
	}
	return bus.Read(address)
}

// Disassemble disassembles the instruction at address and returns the text
// and the instruction size.
func (c *CPU) Disassemble(bus Bus, address uint16) (string, uint16) {
	opcode := peek(bus, address)
	instruction := c.instructions[opcode]
	size := instruction.mode.size()
	l := peek(bus, address+1)
	w := uint16(peek(bus, address+2))<<8 | uint16(l)
	var arg string
	switch instruction.mode {
	case accumulator:
		arg = "A"
	case immediate:
		arg = fmt.Sprintf("#$%02X", l)
	case zeropage:
		arg = fmt.Sprintf("$%02X", l)
	case zeropageX:
		arg = fmt.Sprintf("$%02X,X", l)
	case zeropageY:
		arg = fmt.Sprintf("$%02X,Y", l)
	case relative:
		arg = fmt.Sprintf("$%04X", address+2+uint16(int8(l)))
	case absolute:
		arg = fmt.Sprintf("$%04X", w)
	case absoluteX:
		arg = fmt.Sprintf("$%04X,X", w)
	case absoluteY:
		arg = fmt.Sprintf("$%04X,Y", w)
	case indirect:
		arg = fmt.Sprintf("($%04X)", w)
	case indirectX:
		arg = fmt.Sprintf("($%02X,X)", l)
	case indirectY:
		arg = fmt.Sprintf("($%02X),Y", l)
	}
	if arg == "" {
		return instruction.mnemonic, size
	}
	return instruction.mnemonic + " " + arg, size
}

// Trace returns the instruction at PC and the registers in the nestest log
// format, e.g.
//   C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
// Unofficial opcodes are marked with '*'.
func (c *CPU) Trace(bus Bus) string {
	text, size := c.Disassemble(bus, c.pc)
	raw := make([]string, size)
	for i := uint16(0); i < size; i++ {
		raw[i] = fmt.Sprintf("%02X", peek(bus, c.pc+i))
	}
	mark := " "
	if c.instructions[peek(bus, c.pc)].illegal {
		mark = "*"
	}
	return fmt.Sprintf("%04X  %-8s %s%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.pc, strings.Join(raw, " "), mark, text, c.a, c.x, c.y, c.p.encode(), c.s, c.cycles)
}
