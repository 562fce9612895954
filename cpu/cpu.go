// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"time"
)

// Cpu is the simulation context for the accumulator processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Tracer Tracer // Receiver of execution events.

	State          // Registers and statistics.
	Memory *Memory // Data memory.

	program Program
}

// NewCpu creates a new CPU for a program, with count memory cells.
// A count of 0 selects DEFAULT_MEMORY_SIZE.
func NewCpu(prog Program, count uint) (cpu *Cpu) {
	if count == 0 {
		count = DEFAULT_MEMORY_SIZE
	}

	cpu = &Cpu{
		Tracer:  NopTracer{},
		Memory:  NewMemory(count),
		program: slices.Clone(prog),
	}

	return
}

// Program returns a copy of the loaded program.
func (cpu *Cpu) Program() Program {
	return slices.Clone(cpu.program)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = cpu.State.String()
	for addr, value := range cpu.Memory.All() {
		text += fmt.Sprintf("% 6s: %d\n", fmt.Sprintf("m%d", addr), value)
	}

	return
}

// Reset the CPU state.
// - Clears the accumulator, program counter and halt flag.
// - Zeros statistics counters.
// - Zeros every memory cell.
// The program is left as loaded.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.State.Reset()
	cpu.Memory.Reset()

	cpu.tracer().Reset()
}

// tracer returns the event receiver, never nil.
func (cpu *Cpu) tracer() Tracer {
	if cpu.Tracer == nil {
		return NopTracer{}
	}
	return cpu.Tracer
}

// Running returns true if there is an instruction left to execute.
func (cpu *Cpu) Running() bool {
	return cpu.Registers.Running(len(cpu.program))
}

// Tick executes a single fetch-decode-execute cycle.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running() {
		err = ErrPcEmpty
		return
	}

	cpu.Cycles++

	pc := cpu.Pc
	inst := cpu.program[pc]

	if cpu.Verbose {
		log.Printf("%03d: %v", pc, inst)
	}

	next, detail, err := Step(cpu.Registers, cpu.Memory, inst)
	if err != nil {
		err = errors.Join(ErrInstruction{Pc: pc, Instruction: inst}, err)
		return
	}

	cpu.tracer().Executed(Event{Cycle: cpu.Cycles, Pc: pc, Detail: detail})

	cpu.Registers = next

	return
}

// Run executes the program from the current program counter until a HALT,
// or until the program counter leaves the program.
// Elapsed accumulates across runs until the next Reset.
func (cpu *Cpu) Run() (err error) {
	start := time.Now()
	for cpu.Running() {
		err = cpu.Tick()
		if err != nil {
			break
		}
	}
	cpu.Elapsed += time.Since(start)

	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: finished after %d cycles", cpu.Cycles)
	}

	cpu.tracer().Finished(cpu.Summary())

	return
}

// Summary returns the statistics and final state of the machine.
func (cpu *Cpu) Summary() Summary {
	return Summary{
		Cycles:      cpu.Cycles,
		Elapsed:     cpu.Elapsed,
		Accumulator: cpu.Accumulator,
		Pc:          cpu.Pc,
		Memory:      cpu.Memory.Cells(),
	}
}

// Pipeline walks the loaded program on an independent machine. See RunPipeline.
func (cpu *Cpu) Pipeline() (sum PipelineSummary, err error) {
	return RunPipeline(cpu.program, uint(cpu.Memory.Len()), cpu.tracer())
}
