package cpu

import (
	"iter"
	"slices"
)

const (
	DEFAULT_MEMORY_SIZE = 16 // Memory cells when no size is given.
)

// Memory is a fixed size array of integer cells.
type Memory struct {
	cell []int
}

// NewMemory creates a zeroed memory of count cells.
func NewMemory(count uint) (mem *Memory) {
	mem = &Memory{
		cell: make([]int, count),
	}

	return
}

// Len returns the number of cells.
func (mem *Memory) Len() int {
	return len(mem.cell)
}

// check validates an address.
func (mem *Memory) check(addr int) (err error) {
	if addr < 0 || addr >= len(mem.cell) {
		err = &ErrAddress{Address: addr, Size: len(mem.cell)}
	}
	return
}

// Load reads the cell at addr.
func (mem *Memory) Load(addr int) (value int, err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	value = mem.cell[addr]
	return
}

// Store writes value to the cell at addr.
func (mem *Memory) Store(addr int, value int) (err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	mem.cell[addr] = value
	return
}

// Reset zeroes every cell.
func (mem *Memory) Reset() {
	clear(mem.cell)
}

// Cells returns a copy of every cell, in address order.
func (mem *Memory) Cells() []int {
	return slices.Clone(mem.cell)
}

// All returns an iterator over the address and value of every cell.
func (mem *Memory) All() iter.Seq2[int, int] {
	return slices.All(mem.cell)
}
