package nes

const wramSize = 0x0800

// RAM is the 2KB work RAM of the CPU.
type RAM struct {
	data [wramSize]byte
}

// NewRAM creates a work RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// read reads data, the address is mirrored every 2KB.
func (r *RAM) read(address uint16) byte {
	return r.data[address%wramSize]
}

// write writes data
func (r *RAM) write(address uint16, x byte) {
	r.data[address%wramSize] = x
}
