package nes

type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immediate
	zeropage
	zeropageX
	zeropageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
)

// size returns the number of bytes of an instruction including the opcode.
func (m addressingMode) size() uint16 {
	switch m {
	case implied, accumulator:
		return 1
	case absolute, absoluteX, absoluteY, indirect:
		return 3
	default:
		return 2
	}
}

type operandKind int

const (
	impliedOperand operandKind = iota
	accumulatorOperand
	memoryOperand
)

// operand is what an addressing mode resolves to.
type operand struct {
	kind    operandKind
	address uint16 // effective address, memoryOperand only
	base    uint16 // address before indexing
	crossed bool   // indexing or a branch crossed a page
}

// decode reads the operand bytes at PC, advances PC past them and returns
// the operand of the mode.
func (c *CPU) decode(bus Bus, mode addressingMode) operand {
	switch mode {
	case implied:
		return operand{kind: impliedOperand}
	case accumulator:
		return operand{kind: accumulatorOperand}
	case immediate:
		address := c.pc
		c.pc++
		return memory(address)
	case zeropage:
		address := uint16(bus.Read(c.pc))
		c.pc++
		return memory(address)
	case zeropageX:
		// Never leaves the zero page.
		address := uint16(bus.Read(c.pc) + c.x)
		c.pc++
		return memory(address)
	case zeropageY:
		address := uint16(bus.Read(c.pc) + c.y)
		c.pc++
		return memory(address)
	case relative:
		offset := bus.Read(c.pc)
		c.pc++
		next := c.pc
		target := next + uint16(int8(offset))
		return operand{kind: memoryOperand, address: target, base: next, crossed: pagesDiffer(next, target)}
	case absolute:
		address := read16(bus, c.pc)
		c.pc += 2
		return memory(address)
	case absoluteX:
		base := read16(bus, c.pc)
		c.pc += 2
		return indexed(base, c.x)
	case absoluteY:
		base := read16(bus, c.pc)
		c.pc += 2
		return indexed(base, c.y)
	case indirect:
		p := read16(bus, c.pc)
		c.pc += 2
		// The high byte of the vector is fetched without a carry: JMP ($10FF)
		// reads $10FF and $1000.
		return memory(read16Wrap(bus, p))
	case indirectX:
		p := bus.Read(c.pc) + c.x
		c.pc++
		return memory(read16Wrap(bus, uint16(p)))
	case indirectY:
		p := bus.Read(c.pc)
		c.pc++
		base := read16Wrap(bus, uint16(p))
		return indexed(base, c.y)
	}
	return operand{kind: impliedOperand}
}

func memory(address uint16) operand {
	return operand{kind: memoryOperand, address: address, base: address}
}

func indexed(base uint16, index byte) operand {
	address := base + uint16(index)
	return operand{kind: memoryOperand, address: address, base: base, crossed: pagesDiffer(base, address)}
}
