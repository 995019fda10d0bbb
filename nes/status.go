package nes

// Flag is a bit of the processor status register.
type Flag byte

const (
	FlagC Flag = 1 << iota // carry
	FlagZ                  // zero
	FlagI                  // IRQ disable
	FlagD                  // decimal - settable, ignored on NES
	FlagB                  // break - only exists in pushed copies
	FlagU                  // unused - always 1
	FlagV                  // overflow
	FlagN                  // negative
)

type status struct {
	c bool // carry
	z bool // zero
	i bool // IRQ
	d bool // decimal - unused on NES
	v bool // overflow
	n bool // negative
}

// encode encodes the status to a byte, as the register reads.
// B is never set and U is always set.
func (s *status) encode() byte {
	res := byte(FlagU)
	if s.c {
		res |= byte(FlagC)
	}
	if s.z {
		res |= byte(FlagZ)
	}
	if s.i {
		res |= byte(FlagI)
	}
	if s.d {
		res |= byte(FlagD)
	}
	if s.v {
		res |= byte(FlagV)
	}
	if s.n {
		res |= byte(FlagN)
	}
	return res
}

// pushed encodes the status as it is written to the stack.
// PHP and BRK push B=1, IRQ and NMI push B=0.
func (s *status) pushed(brk bool) byte {
	if brk {
		return s.encode() | byte(FlagB)
	}
	return s.encode()
}

// decodeFrom decodes a byte to the status, bits 4 and 5 are ignored.
func (s *status) decodeFrom(data byte) {
	s.c = data&byte(FlagC) != 0
	s.z = data&byte(FlagZ) != 0
	s.i = data&byte(FlagI) != 0
	s.d = data&byte(FlagD) != 0
	s.v = data&byte(FlagV) != 0
	s.n = data&byte(FlagN) != 0
}

func (s *status) get(f Flag) bool {
	return s.encode()&byte(f) != 0
}

func (s *status) set(f Flag, v bool) {
	b := s.encode()
	if v {
		b |= byte(f)
	} else {
		b &^= byte(f)
	}
	s.decodeFrom(b)
}

// carry returns the carry flag as 0 or 1.
func (s *status) carry() byte {
	if s.c {
		return 1
	}
	return 0
}
