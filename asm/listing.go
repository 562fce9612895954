package asm

import (
	"strings"

	"github.com/ezrec/fdesim/cpu"
)

// Line is a single assembled instruction and its source location.
type Line struct {
	LineNo      int
	Words       []string
	Instruction cpu.Instruction
	LinkLabel   string
}

// String returns the source words of the line.
func (line *Line) String() string {
	return strings.Join(line.Words, " ")
}

// Listing is an assembled program.
type Listing struct {
	Lines []Line      // One line per instruction, in program order.
	Data  map[int]int // Initial memory contents, by address.
}

// Program returns the instructions of the listing.
func (lst *Listing) Program() (prog cpu.Program) {
	prog = make(cpu.Program, 0, len(lst.Lines))
	for _, line := range lst.Lines {
		prog = append(prog, line.Instruction)
	}

	return
}

// Debug returns the line of the instruction at pc, or nil.
func (lst *Listing) Debug(pc int) *Line {
	if pc < 0 || pc >= len(lst.Lines) {
		return nil
	}

	return &lst.Lines[pc]
}

// LineNo returns the source line number of the instruction at pc, or 0.
func (lst *Listing) LineNo(pc int) int {
	line := lst.Debug(pc)
	if line == nil {
		return 0
	}

	return line.LineNo
}

// Load stores the initial memory contents into mem.
func (lst *Listing) Load(mem *cpu.Memory) (err error) {
	for addr, value := range lst.Data {
		err = mem.Store(addr, value)
		if err != nil {
			return
		}
	}

	return
}
