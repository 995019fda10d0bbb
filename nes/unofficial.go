package nes

import "github.com/golang/glog"

// Unofficial opcodes of the NMOS 6502, the RICOH 2A03 has the same set.
// The unstable ones (XAA, LXA, SHA, SHX, SHY, TAS) follow the common behavior
// described in https://www.nesdev.org/wiki/CPU_unofficial_opcodes.

// magic constants of the unstable immediate opcodes.
const (
	xaaMagic = 0xEE
	lxaMagic = 0xFF
)

// JAM - halts the CPU until reset.
func (c *CPU) jam(bus Bus, op operand) {
	c.pc--
	c.jammed = true
	glog.Warningf("CPU jammed: PC=0x%04x", c.pc)
}

// SLO - ASL then ORA.
func (c *CPU) slo(bus Bus, op operand) {
	x := c.shiftLeft(c.load(bus, op), 0)
	c.store(bus, op, x)
	c.a |= x
	c.setZN(c.a)
}

// RLA - ROL then AND.
func (c *CPU) rla(bus Bus, op operand) {
	x := c.shiftLeft(c.load(bus, op), c.p.carry())
	c.store(bus, op, x)
	c.a &= x
	c.setZN(c.a)
}

// SRE - LSR then EOR.
func (c *CPU) sre(bus Bus, op operand) {
	x := c.shiftRight(c.load(bus, op), 0)
	c.store(bus, op, x)
	c.a ^= x
	c.setZN(c.a)
}

// RRA - ROR then ADC.
func (c *CPU) rra(bus Bus, op operand) {
	x := c.shiftRight(c.load(bus, op), c.p.carry())
	c.store(bus, op, x)
	c.add(x)
}

// SAX - Store A AND X.
func (c *CPU) sax(bus Bus, op operand) {
	c.store(bus, op, c.a&c.x)
}

// LAX - LDA then TAX.
func (c *CPU) lax(bus Bus, op operand) {
	c.a = c.load(bus, op)
	c.x = c.a
	c.setZN(c.a)
}

// DCP - DEC then CMP.
func (c *CPU) dcp(bus Bus, op operand) {
	x := c.load(bus, op) - 1
	c.store(bus, op, x)
	c.compare(c.a, x)
}

// ISB - INC then SBC.
func (c *CPU) isb(bus Bus, op operand) {
	x := c.load(bus, op) + 1
	c.store(bus, op, x)
	c.add(x ^ 0xFF)
}

// ANC - AND then copy N to C.
func (c *CPU) anc(bus Bus, op operand) {
	c.a &= c.load(bus, op)
	c.setZN(c.a)
	c.p.c = c.p.n
}

// ALR - AND then LSR A.
func (c *CPU) alr(bus Bus, op operand) {
	c.a = c.shiftRight(c.a&c.load(bus, op), 0)
}

// ARR - AND then ROR A, C is bit 6 and V is bit 6 xor bit 5 of the result.
func (c *CPU) arr(bus Bus, op operand) {
	x := c.a & c.load(bus, op)
	c.a = x>>1 | c.p.carry()<<7
	c.setZN(c.a)
	c.p.c = c.a&0x40 != 0
	c.p.v = (c.a>>6^c.a>>5)&1 == 1
}

// AXS - X = (A AND X) - M, without borrow. Also known as SBX.
func (c *CPU) axs(bus Bus, op operand) {
	m := c.load(bus, op)
	ax := c.a & c.x
	c.compare(ax, m)
	c.x = ax - m
}

// LAS - A, X and S = M AND S.
func (c *CPU) las(bus Bus, op operand) {
	x := c.load(bus, op) & c.s
	c.a = x
	c.x = x
	c.s = x
	c.setZN(x)
}

// XAA - A = (A OR magic) AND X AND M. Also known as ANE.
func (c *CPU) xaa(bus Bus, op operand) {
	c.a = (c.a | xaaMagic) & c.x & c.load(bus, op)
	c.setZN(c.a)
}

// LXA - A and X = (A OR magic) AND M.
func (c *CPU) lxa(bus Bus, op operand) {
	c.a = (c.a | lxaMagic) & c.load(bus, op)
	c.x = c.a
	c.setZN(c.a)
}

// storeHigh stores data AND (high byte of the base address + 1), the shared
// behavior of SHA, SHX, SHY and TAS. When the indexing crosses a page the
// high byte of the target address is replaced with the stored value.
func (c *CPU) storeHigh(bus Bus, op operand, data byte) {
	x := data & (byte(op.base>>8) + 1)
	address := op.address
	if op.crossed {
		address = uint16(x)<<8 | address&0xFF
	}
	bus.Write(address, x)
}

// SHA - Store A AND X AND H. Also known as AHX.
func (c *CPU) sha(bus Bus, op operand) {
	c.storeHigh(bus, op, c.a&c.x)
}

// SHX - Store X AND H.
func (c *CPU) shx(bus Bus, op operand) {
	c.storeHigh(bus, op, c.x)
}

// SHY - Store Y AND H.
func (c *CPU) shy(bus Bus, op operand) {
	c.storeHigh(bus, op, c.y)
}

// TAS - S = A AND X, then store S AND H. Also known as SHS.
func (c *CPU) tas(bus Bus, op operand) {
	c.s = c.a & c.x
	c.storeHigh(bus, op, c.s)
}
