package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		regs   Registers
		inst   Instruction
		next   Registers
		detail Detail
		memory []int
	}){
		{"load", Registers{Accumulator: 9, Pc: 2}, Instruction{OP_LOAD, 1},
			Registers{Accumulator: 20, Pc: 3},
			Detail{Address: 1, Value: 20, Accumulator: 20},
			[]int{10, 20, 30, 0}},
		{"store", Registers{Accumulator: 9, Pc: 2}, Instruction{OP_STORE, 3},
			Registers{Accumulator: 9, Pc: 3},
			Detail{Address: 3, Value: 9, Accumulator: 9},
			[]int{10, 20, 30, 9}},
		{"add", Registers{Accumulator: 9, Pc: 0}, Instruction{OP_ADD, 2},
			Registers{Accumulator: 39, Pc: 1},
			Detail{Address: 2, Value: 30, Accumulator: 39},
			[]int{10, 20, 30, 0}},
		{"sub", Registers{Accumulator: 9, Pc: 0}, Instruction{OP_SUB, 0},
			Registers{Accumulator: -1, Pc: 1},
			Detail{Address: 0, Value: 10, Accumulator: -1},
			[]int{10, 20, 30, 0}},
		{"jump_taken", Registers{Accumulator: 0, Pc: 4}, Instruction{OP_JUMP, 2},
			Registers{Accumulator: 0, Pc: 2},
			Detail{Taken: true, Target: 2},
			[]int{10, 20, 30, 0}},
		{"jump_not_taken", Registers{Accumulator: 1, Pc: 4}, Instruction{OP_JUMP, 2},
			Registers{Accumulator: 1, Pc: 5},
			Detail{Target: 2, Accumulator: 1},
			[]int{10, 20, 30, 0}},
		{"nop", Registers{Accumulator: 5, Pc: 1}, Instruction{OP_NOP, 3},
			Registers{Accumulator: 5, Pc: 2},
			Detail{Accumulator: 5},
			[]int{10, 20, 30, 0}},
		{"halt", Registers{Accumulator: 5, Pc: 6}, Instruction{OP_HALT, 0},
			Registers{Accumulator: 5, Pc: 7, Halted: true},
			Detail{Accumulator: 5},
			[]int{10, 20, 30, 0}},
	}

	for _, entry := range table {
		mem := NewMemory(4)
		mem.Store(0, 10)
		mem.Store(1, 20)
		mem.Store(2, 30)

		next, detail, err := Step(entry.regs, mem, entry.inst)
		assert.NoError(err, entry.name)
		assert.Equal(entry.next, next, entry.name)

		entry.detail.Instruction = entry.inst
		assert.Equal(entry.detail, detail, entry.name)
		assert.Equal(entry.memory, mem.Cells(), entry.name)
	}
}

func TestStep_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		inst Instruction
		err  error
	}){
		{"unknown", Instruction{Op(7), 0}, ErrOpcodeInvalid},
		{"negative", Instruction{Op(-1), 0}, ErrOpcodeInvalid},
		{"load_range", Instruction{OP_LOAD, 2}, ErrAddressRange},
		{"store_range", Instruction{OP_STORE, -1}, ErrAddressRange},
		{"add_range", Instruction{OP_ADD, 16}, ErrAddressRange},
		{"sub_range", Instruction{OP_SUB, 2}, ErrAddressRange},
	}

	for _, entry := range table {
		mem := NewMemory(2)
		mem.Store(1, 4)
		regs := Registers{Accumulator: 3, Pc: 1}

		next, detail, err := Step(regs, mem, entry.inst)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Equal(regs, next, entry.name)
		assert.Equal(Detail{Instruction: entry.inst, Accumulator: 3}, detail, entry.name)
		assert.Equal([]int{0, 4}, mem.Cells(), entry.name)
	}
}

func TestStep_AddSubInverse(t *testing.T) {
	assert := assert.New(t)

	values := []int{0, 1, -1, 17, -300, 1 << 20}

	for _, a := range values {
		for _, b := range values {
			mem := NewMemory(2)
			mem.Store(0, a)
			mem.Store(1, b)

			var regs Registers
			var err error
			for _, inst := range []Instruction{{OP_LOAD, 0}, {OP_ADD, 1}, {OP_SUB, 1}} {
				regs, _, err = Step(regs, mem, inst)
				assert.NoError(err)
			}

			assert.Equal(a, regs.Accumulator)
			assert.Equal(3, regs.Pc)
		}
	}
}
