package nes

// Bus is the CPU side of the NES address space.
// Reads may have side effects on the bus side (e.g. reading PPUSTATUS), the
// CPU doesn't distinguish them.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, data byte)
}

// Peeker is implemented by buses which can read without side effects.
// Tracing uses it when available.
type Peeker interface {
	Peek(address uint16) byte
}

// read16 reads 2 bytes, little endian.
func read16(bus Bus, address uint16) uint16 {
	l := bus.Read(address)
	h := bus.Read(address + 1)
	return uint16(h)<<8 | uint16(l)
}

// read16Wrap reads 2 bytes without carrying into the high byte of the
// address, e.g. 0x10FF reads 0x10FF and 0x1000.
func read16Wrap(bus Bus, address uint16) uint16 {
	l := bus.Read(address)
	h := bus.Read(address&0xFF00 | uint16(byte(address)+1))
	return uint16(h)<<8 | uint16(l)
}

// pagesDiffer returns true if the two addresses reference different pages.
func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
