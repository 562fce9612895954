package cpu

import (
	"fmt"
	"strings"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_LOAD  = Op(0) // LOAD
	OP_STORE = Op(1) // STORE
	OP_ADD   = Op(2) // ADD
	OP_SUB   = Op(3) // SUB
	OP_JUMP  = Op(4) // JUMP
	OP_NOP   = Op(5) // NOP
	OP_HALT  = Op(6) // HALT
)

// opMap maps mnemonics to operations.
var opMap = map[string]Op{
	"LOAD":  OP_LOAD,
	"STORE": OP_STORE,
	"ADD":   OP_ADD,
	"SUB":   OP_SUB,
	"JUMP":  OP_JUMP,
	"NOP":   OP_NOP,
	"HALT":  OP_HALT,
}

// ParseOp returns the operation for a mnemonic, ignoring case.
func ParseOp(name string) (op Op, ok bool) {
	op, ok = opMap[strings.ToUpper(name)]
	return
}

// Valid returns true if the operation is one the processor can execute.
func (op Op) Valid() bool {
	return op >= OP_LOAD && op <= OP_HALT
}

// Addressed returns true if the operand of the operation is a memory address.
func (op Op) Addressed() bool {
	switch op {
	case OP_LOAD, OP_STORE, OP_ADD, OP_SUB:
		return true
	}
	return false
}

// Instruction is a single operation and its operand.
//
// For LOAD, STORE, ADD and SUB the operand is a memory address. For JUMP it
// is the jump target. NOP and HALT ignore it.
type Instruction struct {
	Op      Op
	Operand int
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	return fmt.Sprintf("%v %d", inst.Op, inst.Operand)
}

// Program is an ordered, read-only list of instructions.
type Program []Instruction
