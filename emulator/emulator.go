// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives an accumulator CPU through a simulation session.
package emulator

import (
	_ "embed"
	"errors"
	"log"
	"strings"

	"github.com/ezrec/fdesim/asm"
	"github.com/ezrec/fdesim/cpu"
)

//go:embed sample.fde
var sampleSource string

// Sample returns the listing of the built-in demonstration program.
func Sample() *asm.Listing {
	assembler := &asm.Assembler{}
	lst, err := assembler.Parse(strings.NewReader(sampleSource))
	if err != nil {
		panic(err)
	}

	return lst
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Listing  *asm.Listing // Reference to the loaded program listing.
}

// NewEmulator creates a new emulator for a listing, with count memory cells.
func NewEmulator(lst *asm.Listing, count uint) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(lst.Program(), count),
		Listing: lst,
	}

	return
}

// Load puts the CPU in its power-on state, with the initial memory contents
// of the listing.
func (emu *Emulator) Load() (err error) {
	emu.Cpu.State.Reset()
	emu.Cpu.Memory.Reset()

	err = emu.Listing.Load(emu.Cpu.Memory)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d instructions, %d data cells", len(emu.Listing.Lines), len(emu.Listing.Data))
	}

	return
}

// Reset the CPU for a new execution, and reload the initial memory
// contents of the listing.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	err = emu.Listing.Load(emu.Cpu.Memory)
	return
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Listing.LineNo(emu.Cpu.Pc)
}

// Run executes the program until it terminates.
func (emu *Emulator) Run() (err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Run()
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(), Pc: emu.Cpu.Pc, Err: err}
	}

	return
}

// Pipeline walks the program on an independent machine.
func (emu *Emulator) Pipeline() (sum cpu.PipelineSummary, err error) {
	sum, err = emu.Cpu.Pipeline()
	if err != nil {
		var ei cpu.ErrInstruction
		pc := -1
		if errors.As(err, &ei) {
			pc = ei.Pc
		}
		err = &ErrRuntime{LineNo: emu.Listing.LineNo(pc), Pc: pc, Err: err}
	}

	return
}
