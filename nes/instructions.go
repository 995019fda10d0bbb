package nes

type penalty int

const (
	noPenalty     penalty = iota
	pagePenalty           // +1 when indexing crosses a page
	branchPenalty         // +1 when taken, +1 more when the target is on another page
)

type instruction struct {
	mnemonic string
	mode     addressingMode
	execute  func(Bus, operand)
	cycles   int
	penalty  penalty
	illegal  bool // unofficial opcode
}

// createInstructions creates the opcode table.
// References:
//   http://www.6502.org/tutorials/6502opcodes.html
//   https://www.nesdev.org/wiki/CPU_unofficial_opcodes
//   https://www.nesdev.org/undocumented_opcodes.txt
func (c *CPU) createInstructions() [256]instruction {
	return [256]instruction{
		{"BRK", implied, c.brk, 7, noPenalty, false},      // 0x00
		{"ORA", indirectX, c.ora, 6, noPenalty, false},    // 0x01
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x02
		{"SLO", indirectX, c.slo, 8, noPenalty, true},     // 0x03
		{"NOP", zeropage, c.nop, 3, noPenalty, true},      // 0x04
		{"ORA", zeropage, c.ora, 3, noPenalty, false},     // 0x05
		{"ASL", zeropage, c.asl, 5, noPenalty, false},     // 0x06
		{"SLO", zeropage, c.slo, 5, noPenalty, true},      // 0x07
		{"PHP", implied, c.php, 3, noPenalty, false},      // 0x08
		{"ORA", immediate, c.ora, 2, noPenalty, false},    // 0x09
		{"ASL", accumulator, c.asl, 2, noPenalty, false},  // 0x0A
		{"ANC", immediate, c.anc, 2, noPenalty, true},     // 0x0B
		{"NOP", absolute, c.nop, 4, noPenalty, true},      // 0x0C
		{"ORA", absolute, c.ora, 4, noPenalty, false},     // 0x0D
		{"ASL", absolute, c.asl, 6, noPenalty, false},     // 0x0E
		{"SLO", absolute, c.slo, 6, noPenalty, true},      // 0x0F
		{"BPL", relative, c.bpl, 2, branchPenalty, false}, // 0x10
		{"ORA", indirectY, c.ora, 5, pagePenalty, false},  // 0x11
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x12
		{"SLO", indirectY, c.slo, 8, noPenalty, true},     // 0x13
		{"NOP", zeropageX, c.nop, 4, noPenalty, true},     // 0x14
		{"ORA", zeropageX, c.ora, 4, noPenalty, false},    // 0x15
		{"ASL", zeropageX, c.asl, 6, noPenalty, false},    // 0x16
		{"SLO", zeropageX, c.slo, 6, noPenalty, true},     // 0x17
		{"CLC", implied, c.clc, 2, noPenalty, false},      // 0x18
		{"ORA", absoluteY, c.ora, 4, pagePenalty, false},  // 0x19
		{"NOP", implied, c.nop, 2, noPenalty, true},       // 0x1A
		{"SLO", absoluteY, c.slo, 7, noPenalty, true},     // 0x1B
		{"NOP", absoluteX, c.nop, 4, pagePenalty, true},   // 0x1C
		{"ORA", absoluteX, c.ora, 4, pagePenalty, false},  // 0x1D
		{"ASL", absoluteX, c.asl, 7, noPenalty, false},    // 0x1E
		{"SLO", absoluteX, c.slo, 7, noPenalty, true},     // 0x1F
		{"JSR", absolute, c.jsr, 6, noPenalty, false},     // 0x20
		{"AND", indirectX, c.and, 6, noPenalty, false},    // 0x21
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x22
		{"RLA", indirectX, c.rla, 8, noPenalty, true},     // 0x23
		{"BIT", zeropage, c.bit, 3, noPenalty, false},     // 0x24
		{"AND", zeropage, c.and, 3, noPenalty, false},     // 0x25
		{"ROL", zeropage, c.rol, 5, noPenalty, false},     // 0x26
		{"RLA", zeropage, c.rla, 5, noPenalty, true},      // 0x27
		{"PLP", implied, c.plp, 4, noPenalty, false},      // 0x28
		{"AND", immediate, c.and, 2, noPenalty, false},    // 0x29
		{"ROL", accumulator, c.rol, 2, noPenalty, false},  // 0x2A
		{"ANC", immediate, c.anc, 2, noPenalty, true},     // 0x2B
		{"BIT", absolute, c.bit, 4, noPenalty, false},     // 0x2C
		{"AND", absolute, c.and, 4, noPenalty, false},     // 0x2D
		{"ROL", absolute, c.rol, 6, noPenalty, false},     // 0x2E
		{"RLA", absolute, c.rla, 6, noPenalty, true},      // 0x2F
		{"BMI", relative, c.bmi, 2, branchPenalty, false}, // 0x30
		{"AND", indirectY, c.and, 5, pagePenalty, false},  // 0x31
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x32
		{"RLA", indirectY, c.rla, 8, noPenalty, true},     // 0x33
		{"NOP", zeropageX, c.nop, 4, noPenalty, true},     // 0x34
		{"AND", zeropageX, c.and, 4, noPenalty, false},    // 0x35
		{"ROL", zeropageX, c.rol, 6, noPenalty, false},    // 0x36
		{"RLA", zeropageX, c.rla, 6, noPenalty, true},     // 0x37
		{"SEC", implied, c.sec, 2, noPenalty, false},      // 0x38
		{"AND", absoluteY, c.and, 4, pagePenalty, false},  // 0x39
		{"NOP", implied, c.nop, 2, noPenalty, true},       // 0x3A
		{"RLA", absoluteY, c.rla, 7, noPenalty, true},     // 0x3B
		{"NOP", absoluteX, c.nop, 4, pagePenalty, true},   // 0x3C
		{"AND", absoluteX, c.and, 4, pagePenalty, false},  // 0x3D
		{"ROL", absoluteX, c.rol, 7, noPenalty, false},    // 0x3E
		{"RLA", absoluteX, c.rla, 7, noPenalty, true},     // 0x3F
		{"RTI", implied, c.rti, 6, noPenalty, false},      // 0x40
		{"EOR", indirectX, c.eor, 6, noPenalty, false},    // 0x41
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x42
		{"SRE", indirectX, c.sre, 8, noPenalty, true},     // 0x43
		{"NOP", zeropage, c.nop, 3, noPenalty, true},      // 0x44
		{"EOR", zeropage, c.eor, 3, noPenalty, false},     // 0x45
		{"LSR", zeropage, c.lsr, 5, noPenalty, false},     // 0x46
		{"SRE", zeropage, c.sre, 5, noPenalty, true},      // 0x47
		{"PHA", implied, c.pha, 3, noPenalty, false},      // 0x48
		{"EOR", immediate, c.eor, 2, noPenalty, false},    // 0x49
		{"LSR", accumulator, c.lsr, 2, noPenalty, false},  // 0x4A
		{"ALR", immediate, c.alr, 2, noPenalty, true},     // 0x4B
		{"JMP", absolute, c.jmp, 3, noPenalty, false},     // 0x4C
		{"EOR", absolute, c.eor, 4, noPenalty, false},     // 0x4D
		{"LSR", absolute, c.lsr, 6, noPenalty, false},     // 0x4E
		{"SRE", absolute, c.sre, 6, noPenalty, true},      // 0x4F
		{"BVC", relative, c.bvc, 2, branchPenalty, false}, // 0x50
		{"EOR", indirectY, c.eor, 5, pagePenalty, false},  // 0x51
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x52
		{"SRE", indirectY, c.sre, 8, noPenalty, true},     // 0x53
		{"NOP", zeropageX, c.nop, 4, noPenalty, true},     // 0x54
		{"EOR", zeropageX, c.eor, 4, noPenalty, false},    // 0x55
		{"LSR", zeropageX, c.lsr, 6, noPenalty, false},    // 0x56
		{"SRE", zeropageX, c.sre, 6, noPenalty, true},     // 0x57
		{"CLI", implied, c.cli, 2, noPenalty, false},      // 0x58
		{"EOR", absoluteY, c.eor, 4, pagePenalty, false},  // 0x59
		{"NOP", implied, c.nop, 2, noPenalty, true},       // 0x5A
		{"SRE", absoluteY, c.sre, 7, noPenalty, true},     // 0x5B
		{"NOP", absoluteX, c.nop, 4, pagePenalty, true},   // 0x5C
		{"EOR", absoluteX, c.eor, 4, pagePenalty, false},  // 0x5D
		{"LSR", absoluteX, c.lsr, 7, noPenalty, false},    // 0x5E
		{"SRE", absoluteX, c.sre, 7, noPenalty, true},     // 0x5F
		{"RTS", implied, c.rts, 6, noPenalty, false},      // 0x60
		{"ADC", indirectX, c.adc, 6, noPenalty, false},    // 0x61
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x62
		{"RRA", indirectX, c.rra, 8, noPenalty, true},     // 0x63
		{"NOP", zeropage, c.nop, 3, noPenalty, true},      // 0x64
		{"ADC", zeropage, c.adc, 3, noPenalty, false},     // 0x65
		{"ROR", zeropage, c.ror, 5, noPenalty, false},     // 0x66
		{"RRA", zeropage, c.rra, 5, noPenalty, true},      // 0x67
		{"PLA", implied, c.pla, 4, noPenalty, false},      // 0x68
		{"ADC", immediate, c.adc, 2, noPenalty, false},    // 0x69
		{"ROR", accumulator, c.ror, 2, noPenalty, false},  // 0x6A
		{"ARR", immediate, c.arr, 2, noPenalty, true},     // 0x6B
		{"JMP", indirect, c.jmp, 5, noPenalty, false},     // 0x6C
		{"ADC", absolute, c.adc, 4, noPenalty, false},     // 0x6D
		{"ROR", absolute, c.ror, 6, noPenalty, false},     // 0x6E
		{"RRA", absolute, c.rra, 6, noPenalty, true},      // 0x6F
		{"BVS", relative, c.bvs, 2, branchPenalty, false}, // 0x70
		{"ADC", indirectY, c.adc, 5, pagePenalty, false},  // 0x71
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x72
		{"RRA", indirectY, c.rra, 8, noPenalty, true},     // 0x73
		{"NOP", zeropageX, c.nop, 4, noPenalty, true},     // 0x74
		{"ADC", zeropageX, c.adc, 4, noPenalty, false},    // 0x75
		{"ROR", zeropageX, c.ror, 6, noPenalty, false},    // 0x76
		{"RRA", zeropageX, c.rra, 6, noPenalty, true},     // 0x77
		{"SEI", implied, c.sei, 2, noPenalty, false},      // 0x78
		{"ADC", absoluteY, c.adc, 4, pagePenalty, false},  // 0x79
		{"NOP", implied, c.nop, 2, noPenalty, true},       // 0x7A
		{"RRA", absoluteY, c.rra, 7, noPenalty, true},     // 0x7B
		{"NOP", absoluteX, c.nop, 4, pagePenalty, true},   // 0x7C
		{"ADC", absoluteX, c.adc, 4, pagePenalty, false},  // 0x7D
		{"ROR", absoluteX, c.ror, 7, noPenalty, false},    // 0x7E
		{"RRA", absoluteX, c.rra, 7, noPenalty, true},     // 0x7F
		{"NOP", immediate, c.nop, 2, noPenalty, true},     // 0x80
		{"STA", indirectX, c.sta, 6, noPenalty, false},    // 0x81
		{"NOP", immediate, c.nop, 2, noPenalty, true},     // 0x82
		{"SAX", indirectX, c.sax, 6, noPenalty, true},     // 0x83
		{"STY", zeropage, c.sty, 3, noPenalty, false},     // 0x84
		{"STA", zeropage, c.sta, 3, noPenalty, false},     // 0x85
		{"STX", zeropage, c.stx, 3, noPenalty, false},     // 0x86
		{"SAX", zeropage, c.sax, 3, noPenalty, true},      // 0x87
		{"DEY", implied, c.dey, 2, noPenalty, false},      // 0x88
		{"NOP", immediate, c.nop, 2, noPenalty, true},     // 0x89
		{"TXA", implied, c.txa, 2, noPenalty, false},      // 0x8A
		{"XAA", immediate, c.xaa, 2, noPenalty, true},     // 0x8B
		{"STY", absolute, c.sty, 4, noPenalty, false},     // 0x8C
		{"STA", absolute, c.sta, 4, noPenalty, false},     // 0x8D
		{"STX", absolute, c.stx, 4, noPenalty, false},     // 0x8E
		{"SAX", absolute, c.sax, 4, noPenalty, true},      // 0x8F
		{"BCC", relative, c.bcc, 2, branchPenalty, false}, // 0x90
		{"STA", indirectY, c.sta, 6, noPenalty, false},    // 0x91
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0x92
		{"SHA", indirectY, c.sha, 6, noPenalty, true},     // 0x93
		{"STY", zeropageX, c.sty, 4, noPenalty, false},    // 0x94
		{"STA", zeropageX, c.sta, 4, noPenalty, false},    // 0x95
		{"STX", zeropageY, c.stx, 4, noPenalty, false},    // 0x96
		{"SAX", zeropageY, c.sax, 4, noPenalty, true},     // 0x97
		{"TYA", implied, c.tya, 2, noPenalty, false},      // 0x98
		{"STA", absoluteY, c.sta, 5, noPenalty, false},    // 0x99
		{"TXS", implied, c.txs, 2, noPenalty, false},      // 0x9A
		{"TAS", absoluteY, c.tas, 5, noPenalty, true},     // 0x9B
		{"SHY", absoluteX, c.shy, 5, noPenalty, true},     // 0x9C
		{"STA", absoluteX, c.sta, 5, noPenalty, false},    // 0x9D
		{"SHX", absoluteY, c.shx, 5, noPenalty, true},     // 0x9E
		{"SHA", absoluteY, c.sha, 5, noPenalty, true},     // 0x9F
		{"LDY", immediate, c.ldy, 2, noPenalty, false},    // 0xA0
		{"LDA", indirectX, c.lda, 6, noPenalty, false},    // 0xA1
		{"LDX", immediate, c.ldx, 2, noPenalty, false},    // 0xA2
		{"LAX", indirectX, c.lax, 6, noPenalty, true},     // 0xA3
		{"LDY", zeropage, c.ldy, 3, noPenalty, false},     // 0xA4
		{"LDA", zeropage, c.lda, 3, noPenalty, false},     // 0xA5
		{"LDX", zeropage, c.ldx, 3, noPenalty, false},     // 0xA6
		{"LAX", zeropage, c.lax, 3, noPenalty, true},      // 0xA7
		{"TAY", implied, c.tay, 2, noPenalty, false},      // 0xA8
		{"LDA", immediate, c.lda, 2, noPenalty, false},    // 0xA9
		{"TAX", implied, c.tax, 2, noPenalty, false},      // 0xAA
		{"LXA", immediate, c.lxa, 2, noPenalty, true},     // 0xAB
		{"LDY", absolute, c.ldy, 4, noPenalty, false},     // 0xAC
		{"LDA", absolute, c.lda, 4, noPenalty, false},     // 0xAD
		{"LDX", absolute, c.ldx, 4, noPenalty, false},     // 0xAE
		{"LAX", absolute, c.lax, 4, noPenalty, true},      // 0xAF
		{"BCS", relative, c.bcs, 2, branchPenalty, false}, // 0xB0
		{"LDA", indirectY, c.lda, 5, pagePenalty, false},  // 0xB1
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0xB2
		{"LAX", indirectY, c.lax, 5, pagePenalty, true},   // 0xB3
		{"LDY", zeropageX, c.ldy, 4, noPenalty, false},    // 0xB4
		{"LDA", zeropageX, c.lda, 4, noPenalty, false},    // 0xB5
		{"LDX", zeropageY, c.ldx, 4, noPenalty, false},    // 0xB6
		{"LAX", zeropageY, c.lax, 4, noPenalty, true},     // 0xB7
		{"CLV", implied, c.clv, 2, noPenalty, false},      // 0xB8
		{"LDA", absoluteY, c.lda, 4, pagePenalty, false},  // 0xB9
		{"TSX", implied, c.tsx, 2, noPenalty, false},      // 0xBA
		{"LAS", absoluteY, c.las, 4, pagePenalty, true},   // 0xBB
		{"LDY", absoluteX, c.ldy, 4, pagePenalty, false},  // 0xBC
		{"LDA", absoluteX, c.lda, 4, pagePenalty, false},  // 0xBD
		{"LDX", absoluteY, c.ldx, 4, pagePenalty, false},  // 0xBE
		{"LAX", absoluteY, c.lax, 4, pagePenalty, true},   // 0xBF
		{"CPY", immediate, c.cpy, 2, noPenalty, false},    // 0xC0
		{"CMP", indirectX, c.cmp, 6, noPenalty, false},    // 0xC1
		{"NOP", immediate, c.nop, 2, noPenalty, true},     // 0xC2
		{"DCP", indirectX, c.dcp, 8, noPenalty, true},     // 0xC3
		{"CPY", zeropage, c.cpy, 3, noPenalty, false},     // 0xC4
		{"CMP", zeropage, c.cmp, 3, noPenalty, false},     // 0xC5
		{"DEC", zeropage, c.dec, 5, noPenalty, false},     // 0xC6
		{"DCP", zeropage, c.dcp, 5, noPenalty, true},      // 0xC7
		{"INY", implied, c.iny, 2, noPenalty, false},      // 0xC8
		{"CMP", immediate, c.cmp, 2, noPenalty, false},    // 0xC9
		{"DEX", implied, c.dex, 2, noPenalty, false},      // 0xCA
		{"AXS", immediate, c.axs, 2, noPenalty, true},     // 0xCB
		{"CPY", absolute, c.cpy, 4, noPenalty, false},     // 0xCC
		{"CMP", absolute, c.cmp, 4, noPenalty, false},     // 0xCD
		{"DEC", absolute, c.dec, 6, noPenalty, false},     // 0xCE
		{"DCP", absolute, c.dcp, 6, noPenalty, true},      // 0xCF
		{"BNE", relative, c.bne, 2, branchPenalty, false}, // 0xD0
		{"CMP", indirectY, c.cmp, 5, pagePenalty, false},  // 0xD1
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0xD2
		{"DCP", indirectY, c.dcp, 8, noPenalty, true},     // 0xD3
		{"NOP", zeropageX, c.nop, 4, noPenalty, true},     // 0xD4
		{"CMP", zeropageX, c.cmp, 4, noPenalty, false},    // 0xD5
		{"DEC", zeropageX, c.dec, 6, noPenalty, false},    // 0xD6
		{"DCP", zeropageX, c.dcp, 6, noPenalty, true},     // 0xD7
		{"CLD", implied, c.cld, 2, noPenalty, false},      // 0xD8
		{"CMP", absoluteY, c.cmp, 4, pagePenalty, false},  // 0xD9
		{"NOP", implied, c.nop, 2, noPenalty, true},       // 0xDA
		{"DCP", absoluteY, c.dcp, 7, noPenalty, true},     // 0xDB
		{"NOP", absoluteX, c.nop, 4, pagePenalty, true},   // 0xDC
		{"CMP", absoluteX, c.cmp, 4, pagePenalty, false},  // 0xDD
		{"DEC", absoluteX, c.dec, 7, noPenalty, false},    // 0xDE
		{"DCP", absoluteX, c.dcp, 7, noPenalty, true},     // 0xDF
		{"CPX", immediate, c.cpx, 2, noPenalty, false},    // 0xE0
		{"SBC", indirectX, c.sbc, 6, noPenalty, false},    // 0xE1
		{"NOP", immediate, c.nop, 2, noPenalty, true},     // 0xE2
		{"ISB", indirectX, c.isb, 8, noPenalty, true},     // 0xE3
		{"CPX", zeropage, c.cpx, 3, noPenalty, false},     // 0xE4
		{"SBC", zeropage, c.sbc, 3, noPenalty, false},     // 0xE5
		{"INC", zeropage, c.inc, 5, noPenalty, false},     // 0xE6
		{"ISB", zeropage, c.isb, 5, noPenalty, true},      // 0xE7
		{"INX", implied, c.inx, 2, noPenalty, false},      // 0xE8
		{"SBC", immediate, c.sbc, 2, noPenalty, false},    // 0xE9
		{"NOP", implied, c.nop, 2, noPenalty, false},      // 0xEA
		{"SBC", immediate, c.sbc, 2, noPenalty, true},     // 0xEB
		{"CPX", absolute, c.cpx, 4, noPenalty, false},     // 0xEC
		{"SBC", absolute, c.sbc, 4, noPenalty, false},     // 0xED
		{"INC", absolute, c.inc, 6, noPenalty, false},     // 0xEE
		{"ISB", absolute, c.isb, 6, noPenalty, true},      // 0xEF
		{"BEQ", relative, c.beq, 2, branchPenalty, false}, // 0xF0
		{"SBC", indirectY, c.sbc, 5, pagePenalty, false},  // 0xF1
		{"JAM", implied, c.jam, 2, noPenalty, true},       // 0xF2
		{"ISB", indirectY, c.isb, 8, noPenalty, true},     // 0xF3
		{"NOP", zeropageX, c.nop, 4, noPenalty, true},     // 0xF4
		{"SBC", zeropageX, c.sbc, 4, noPenalty, false},    // 0xF5
		{"INC", zeropageX, c.inc, 6, noPenalty, false},    // 0xF6
		{"ISB", zeropageX, c.isb, 6, noPenalty, true},     // 0xF7
		{"SED", implied, c.sed, 2, noPenalty, false},      // 0xF8
		{"SBC", absoluteY, c.sbc, 4, pagePenalty, false},  // 0xF9
		{"NOP", implied, c.nop, 2, noPenalty, true},       // 0xFA
		{"ISB", absoluteY, c.isb, 7, noPenalty, true},     // 0xFB
		{"NOP", absoluteX, c.nop, 4, pagePenalty, true},   // 0xFC
		{"SBC", absoluteX, c.sbc, 4, pagePenalty, false},  // 0xFD
		{"INC", absoluteX, c.inc, 7, noPenalty, false},    // 0xFE
		{"ISB", absoluteX, c.isb, 7, noPenalty, true},     // 0xFF
	}
}
