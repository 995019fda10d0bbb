package nes

import "github.com/pkg/errors"

var (
	// ErrIllegalOpcode is returned by Step in strict mode for an undefined
	// opcode. The error is wrapped with the opcode and its address.
	ErrIllegalOpcode = errors.New("illegal opcode")
	// ErrInvalidState is returned when a snapshot can't be decoded.
	ErrInvalidState = errors.New("invalid CPU state")
)
