package nes

// load reads the operand value.
func (c *CPU) load(bus Bus, op operand) byte {
	if op.kind == accumulatorOperand {
		return c.a
	}
	return bus.Read(op.address)
}

// store writes the operand value back, to A for the accumulator mode.
func (c *CPU) store(bus Bus, op operand, data byte) {
	if op.kind == accumulatorOperand {
		c.a = data
		return
	}
	bus.Write(op.address, data)
}

// setZN sets Z and N from the result.
func (c *CPU) setZN(x byte) {
	c.p.z = x == 0
	c.p.n = x&0x80 != 0
}

// add adds data and carry to A, SBC adds the complement.
// Decimal mode is not implemented on NES.
func (c *CPU) add(data byte) {
	a := uint16(c.a)
	m := uint16(data)
	res := a + m + uint16(c.p.carry())
	c.p.c = res > 0xFF
	// overflow when both inputs have a sign different from the result.
	c.p.v = (a^res)&(m^res)&0x80 != 0
	c.a = byte(res)
	c.setZN(c.a)
}

// compare computes r - m without storing it.
func (c *CPU) compare(r, m byte) {
	diff := uint16(r) - uint16(m)
	c.p.c = r >= m
	c.p.z = r == m
	c.p.n = byte(diff)&0x80 != 0
}

// branch jumps to the relative target when cond holds.
func (c *CPU) branch(cond bool, op operand) {
	if cond {
		c.pc = op.address
		c.branched = true
	}
}

func (c *CPU) shiftLeft(data byte, in byte) byte {
	c.p.c = data&0x80 != 0
	data = data<<1 | in
	c.setZN(data)
	return data
}

func (c *CPU) shiftRight(data byte, in byte) byte {
	c.p.c = data&1 == 1
	data = data>>1 | in<<7
	c.setZN(data)
	return data
}

// ADC - Add with Carry.
func (c *CPU) adc(bus Bus, op operand) {
	c.add(c.load(bus, op))
}

// AND - And.
func (c *CPU) and(bus Bus, op operand) {
	c.a &= c.load(bus, op)
	c.setZN(c.a)
}

// ASL - Arithmetic Shift Left.
func (c *CPU) asl(bus Bus, op operand) {
	c.store(bus, op, c.shiftLeft(c.load(bus, op), 0))
}

// BCC - Branch on Carry Clear.
func (c *CPU) bcc(bus Bus, op operand) {
	c.branch(!c.p.c, op)
}

// BCS - Branch on Carry Set.
func (c *CPU) bcs(bus Bus, op operand) {
	c.branch(c.p.c, op)
}

// BEQ - Branch on Equal.
func (c *CPU) beq(bus Bus, op operand) {
	c.branch(c.p.z, op)
}

// BIT - test BITS.
func (c *CPU) bit(bus Bus, op operand) {
	x := c.load(bus, op)
	c.p.z = c.a&x == 0
	c.p.v = x&0x40 != 0
	c.p.n = x&0x80 != 0
}

// BMI - Branch on Minus.
func (c *CPU) bmi(bus Bus, op operand) {
	c.branch(c.p.n, op)
}

// BNE - Branch on Not Equal.
func (c *CPU) bne(bus Bus, op operand) {
	c.branch(!c.p.z, op)
}

// BPL - Branch on Plus.
func (c *CPU) bpl(bus Bus, op operand) {
	c.branch(!c.p.n, op)
}

// BRK - Break Interrupt.
// The byte after BRK is padding, the pushed PC points past it.
func (c *CPU) brk(bus Bus, op operand) {
	c.pc++
	c.push16(bus, c.pc)
	c.push(bus, c.p.pushed(true))
	c.p.i = true
	vector := irqVector
	// An NMI arriving while BRK pushes its state takes over the vector.
	if c.nmiPending {
		c.nmiPending = false
		vector = nmiVector
	}
	c.pc = read16(bus, vector)
}

// BVC - Branch on Overflow Clear.
func (c *CPU) bvc(bus Bus, op operand) {
	c.branch(!c.p.v, op)
}

// BVS - Branch on Overflow Set.
func (c *CPU) bvs(bus Bus, op operand) {
	c.branch(c.p.v, op)
}

// CLC - Clear Carry.
func (c *CPU) clc(bus Bus, op operand) {
	c.p.c = false
}

// CLD - Clear Decimal.
func (c *CPU) cld(bus Bus, op operand) {
	c.p.d = false
}

// CLI - Clear Interrupt.
func (c *CPU) cli(bus Bus, op operand) {
	c.p.i = false
}

// CLV - Clear Overflow.
func (c *CPU) clv(bus Bus, op operand) {
	c.p.v = false
}

// CMP - Compare Accumulator.
func (c *CPU) cmp(bus Bus, op operand) {
	c.compare(c.a, c.load(bus, op))
}

// CPX - Compare X register.
func (c *CPU) cpx(bus Bus, op operand) {
	c.compare(c.x, c.load(bus, op))
}

// CPY - Compare Y register.
func (c *CPU) cpy(bus Bus, op operand) {
	c.compare(c.y, c.load(bus, op))
}

// DEC - Decrement Memory.
func (c *CPU) dec(bus Bus, op operand) {
	x := c.load(bus, op) - 1
	c.store(bus, op, x)
	c.setZN(x)
}

// DEX - Decrement X Register.
func (c *CPU) dex(bus Bus, op operand) {
	c.x--
	c.setZN(c.x)
}

// DEY - Decrement Y Register.
func (c *CPU) dey(bus Bus, op operand) {
	c.y--
	c.setZN(c.y)
}

// EOR - Bitwise Exclusive OR.
func (c *CPU) eor(bus Bus, op operand) {
	c.a ^= c.load(bus, op)
	c.setZN(c.a)
}

// INC - Increment Memory.
func (c *CPU) inc(bus Bus, op operand) {
	x := c.load(bus, op) + 1
	c.store(bus, op, x)
	c.setZN(x)
}

// INX - Increment X Register.
func (c *CPU) inx(bus Bus, op operand) {
	c.x++
	c.setZN(c.x)
}

// INY - Increment Y Register.
func (c *CPU) iny(bus Bus, op operand) {
	c.y++
	c.setZN(c.y)
}

// JMP - Jump.
func (c *CPU) jmp(bus Bus, op operand) {
	c.pc = op.address
}

// JSR - Jump to Subroutine.
// Pushes the address of the last byte of the JSR instruction.
func (c *CPU) jsr(bus Bus, op operand) {
	c.push16(bus, c.pc-1)
	c.pc = op.address
}

// LDA - Load Accumulator.
func (c *CPU) lda(bus Bus, op operand) {
	c.a = c.load(bus, op)
	c.setZN(c.a)
}

// LDX - Load X Register.
func (c *CPU) ldx(bus Bus, op operand) {
	c.x = c.load(bus, op)
	c.setZN(c.x)
}

// LDY - Load Y Register.
func (c *CPU) ldy(bus Bus, op operand) {
	c.y = c.load(bus, op)
	c.setZN(c.y)
}

// LSR - Logical Shift Right.
func (c *CPU) lsr(bus Bus, op operand) {
	c.store(bus, op, c.shiftRight(c.load(bus, op), 0))
}

// NOP - No Operation.
// The unofficial variants with an operand still read it.
func (c *CPU) nop(bus Bus, op operand) {
	if op.kind == memoryOperand {
		bus.Read(op.address)
	}
}

// ORA - Bitwise OR with Accumulator.
func (c *CPU) ora(bus Bus, op operand) {
	c.a |= c.load(bus, op)
	c.setZN(c.a)
}

// PHA - Push Accumulator.
func (c *CPU) pha(bus Bus, op operand) {
	c.push(bus, c.a)
}

// PHP - Push Processor Status.
func (c *CPU) php(bus Bus, op operand) {
	c.push(bus, c.p.pushed(true))
}

// PLA - Pull Accumulator.
func (c *CPU) pla(bus Bus, op operand) {
	c.a = c.pull(bus)
	c.setZN(c.a)
}

// PLP - Pull Processor Status.
func (c *CPU) plp(bus Bus, op operand) {
	c.p.decodeFrom(c.pull(bus))
}

// ROL - Rotate Left.
func (c *CPU) rol(bus Bus, op operand) {
	c.store(bus, op, c.shiftLeft(c.load(bus, op), c.p.carry()))
}

// ROR - Rotate Right.
func (c *CPU) ror(bus Bus, op operand) {
	c.store(bus, op, c.shiftRight(c.load(bus, op), c.p.carry()))
}

// RTI - Return from Interrupt.
// Unlike RTS the pulled PC is not incremented.
func (c *CPU) rti(bus Bus, op operand) {
	c.p.decodeFrom(c.pull(bus))
	c.pc = c.pull16(bus)
}

// RTS - Return from Subroutine.
func (c *CPU) rts(bus Bus, op operand) {
	c.pc = c.pull16(bus) + 1
}

// SBC - Subtract with carry.
func (c *CPU) sbc(bus Bus, op operand) {
	c.add(c.load(bus, op) ^ 0xFF)
}

// SEC - Set Carry.
func (c *CPU) sec(bus Bus, op operand) {
	c.p.c = true
}

// SED - Set Decimal.
func (c *CPU) sed(bus Bus, op operand) {
	c.p.d = true
}

// SEI - Set Interrupt.
func (c *CPU) sei(bus Bus, op operand) {
	c.p.i = true
}

// STA - Store A Register.
func (c *CPU) sta(bus Bus, op operand) {
	c.store(bus, op, c.a)
}

// STX - Store X Register.
func (c *CPU) stx(bus Bus, op operand) {
	c.store(bus, op, c.x)
}

// STY - Store Y Register.
func (c *CPU) sty(bus Bus, op operand) {
	c.store(bus, op, c.y)
}

// TAX - Transfer A to X.
func (c *CPU) tax(bus Bus, op operand) {
	c.x = c.a
	c.setZN(c.x)
}

// TAY - Transfer A to Y.
func (c *CPU) tay(bus Bus, op operand) {
	c.y = c.a
	c.setZN(c.y)
}

// TSX - Transfer S to X.
func (c *CPU) tsx(bus Bus, op operand) {
	c.x = c.s
	c.setZN(c.x)
}

// TXA - Transfer X to A.
func (c *CPU) txa(bus Bus, op operand) {
	c.a = c.x
	c.setZN(c.a)
}

// TXS - Transfer X to S.
func (c *CPU) txs(bus Bus, op operand) {
	c.s = c.x
}

// TYA - Transfer Y to A.
func (c *CPU) tya(bus Bus, op operand) {
	c.a = c.y
	c.setZN(c.a)
}
