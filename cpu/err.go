package cpu

import (
	"errors"

	"github.com/ezrec/fdesim/translate"
)

var f = translate.From

var (
	ErrOpcodeInvalid = errors.New(f("unknown instruction"))
	ErrAddressRange  = errors.New(f("address out of range"))
	ErrPcEmpty       = errors.New(f("pc empty"))
)

// ErrAddress is a memory access outside of the memory cells.
type ErrAddress struct {
	Address int
	Size    int
}

func (err *ErrAddress) Error() string {
	return f("address %d not in memory of %d cells", err.Address, err.Size)
}

func (err *ErrAddress) Unwrap() error {
	return ErrAddressRange
}

// ErrInstruction locates the instruction that failed to execute.
type ErrInstruction struct {
	Pc          int
	Instruction Instruction
}

func (ei ErrInstruction) Error() string {
	return f("pc %d: %v", ei.Pc, ei.Instruction)
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
