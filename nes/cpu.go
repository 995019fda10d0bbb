package nes

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// CPU emulates NES CPU - is custom 6502 made by RICOH.
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   http://www.6502.org/tutorials/6502opcodes.html
//   https://www.nesdev.org/wiki/CPU
//   http://hp.vector.co.jp/authors/VA042397/nes/6502.html (In Japanese)

const CPUFrequency = 1789773

// Config configures a CPU, the zero value runs unofficial opcodes.
type Config struct {
	// DisableUnofficial makes unofficial opcodes undefined.
	DisableUnofficial bool
	// Strict makes Step fail on undefined opcodes instead of running them as
	// a 2 cycle NOP.
	Strict bool
}

type CPU struct {
	p             status // Processor status flag bits
	a             byte   // Accumulator register
	x             byte   // Index register
	y             byte   // Index register
	pc            uint16 // Program counter
	s             byte   // Stack pointer
	cycles        uint64 // Executed cycles
	stall         uint64 // Stall cycles
	wait          int    // Remaining cycles of the current instruction, for Tick
	branched      bool   // The current instruction took a branch
	jammed        bool
	resetPending  bool
	nmiPending    bool // Latched NMI edge
	nmiLine       bool // Last NMI level, to detect the edge
	irqLine       bool
	lastExecution string // For debug
	config        Config
	instructions  [256]instruction
}

// NewCPU creates a new NES CPU, the reset sequence runs on the first step.
func NewCPU(config Config) *CPU {
	c := &CPU{
		config:       config,
		resetPending: true,
	}
	c.instructions = c.createInstructions()
	return c
}

func (c *CPU) A() byte        { return c.a }
func (c *CPU) X() byte        { return c.x }
func (c *CPU) Y() byte        { return c.y }
func (c *CPU) PC() uint16     { return c.pc }
func (c *CPU) SP() byte       { return c.s }
func (c *CPU) P() byte        { return c.p.encode() }
func (c *CPU) Cycles() uint64 { return c.cycles }

func (c *CPU) SetA(x byte)        { c.a = x }
func (c *CPU) SetX(x byte)        { c.x = x }
func (c *CPU) SetY(x byte)        { c.y = x }
func (c *CPU) SetPC(x uint16)     { c.pc = x }
func (c *CPU) SetSP(x byte)       { c.s = x }
func (c *CPU) SetP(x byte)        { c.p.decodeFrom(x) }
func (c *CPU) SetCycles(x uint64) { c.cycles = x }

// Flag returns a flag of the status register, B always reads 0 and U 1.
func (c *CPU) Flag(f Flag) bool {
	return c.p.get(f)
}

// SetFlag sets a flag of the status register, B and U can't be changed.
func (c *CPU) SetFlag(f Flag, v bool) {
	c.p.set(f, v)
}

// Jammed returns true after a JAM opcode until reset.
func (c *CPU) Jammed() bool {
	return c.jammed
}

// LastExecution describes the last step, for debugging.
func (c *CPU) LastExecution() string {
	return c.lastExecution
}

// Stall stalls the CPU, e.g. OAM DMA takes 513 or 514 cycles.
func (c *CPU) Stall(cycles uint64) {
	c.stall += cycles
}

// push pushes data to stack.
// "With the 6502, the stack is always on page one ($100-$1FF) and works top down."
// S wraps around silently like the hardware.
func (c *CPU) push(bus Bus, x byte) {
	bus.Write(0x100|uint16(c.s), x)
	c.s--
}

// pull pulls data from stack.
func (c *CPU) pull(bus Bus) byte {
	c.s++
	return bus.Read(0x100 | uint16(c.s))
}

// push16 pushes the high byte then the low byte.
func (c *CPU) push16(bus Bus, x uint16) {
	c.push(bus, byte(x>>8))
	c.push(bus, byte(x))
}

func (c *CPU) pull16(bus Bus) uint16 {
	l := c.pull(bus)
	h := c.pull(bus)
	return uint16(h)<<8 | uint16(l)
}

// Step performs the instruction cycle - fetch, decode, execute and returns
// the number of cycles it took. A pending interrupt is serviced instead of
// fetching.
func (c *CPU) Step(bus Bus) (int, error) {
	// Running stall cycles.
	if 0 < c.stall {
		c.stall--
		c.cycles++
		c.lastExecution = fmt.Sprintf("CPU stall, PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, S=0x%02x", c.pc, c.a, c.x, c.y, c.s)
		return 1, nil
	}
	if c.jammed && !c.resetPending {
		c.cycles++
		return 1, nil
	}
	if cycles := c.serviceInterrupt(bus); cycles > 0 {
		return cycles, nil
	}
	if glog.V(3) {
		glog.Info(c.Trace(bus))
	}
	at := c.pc
	opcode := bus.Read(c.pc)
	c.pc++
	instruction := c.instructions[opcode]
	if instruction.illegal && c.config.DisableUnofficial {
		if c.config.Strict {
			c.pc = at
			return 0, errors.Wrapf(ErrIllegalOpcode, "opcode=0x%02x, PC=0x%04x", opcode, at)
		}
		glog.Warningf("Executing undefined opcode as NOP: opcode=0x%02x, PC=0x%04x", opcode, at)
		c.cycles += 2
		c.lastExecution = fmt.Sprintf("PC=0x%04x, opcode=0x%02x, undefined", at, opcode)
		return 2, nil
	}
	op := c.decode(bus, instruction.mode)
	// Save debug string.
	c.lastExecution = fmt.Sprintf("PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, S=0x%02x, opcode=0x%02x, mnemonic=%s, operand: 0x%04x",
		at, c.a, c.x, c.y, c.s, opcode, instruction.mnemonic, op.address)
	c.branched = false
	instruction.execute(bus, op)
	cycles := instruction.cycles
	switch instruction.penalty {
	case pagePenalty:
		if op.crossed {
			cycles++
		}
	case branchPenalty:
		if c.branched {
			cycles++
			if op.crossed {
				cycles++
			}
		}
	}
	c.cycles += uint64(cycles)
	return cycles, nil
}

// Tick advances the CPU by one cycle. The instruction runs on the first
// cycle and the following ticks wait for its remaining cycles.
func (c *CPU) Tick(bus Bus) error {
	if c.wait == 0 {
		cycles, err := c.Step(bus)
		if err != nil {
			return err
		}
		c.wait = cycles
	}
	c.wait--
	return nil
}
