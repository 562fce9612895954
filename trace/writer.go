// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package trace

import (
	"io"

	"github.com/ezrec/fdesim/cpu"
	"github.com/ezrec/fdesim/translate"
	"golang.org/x/text/message"
)

// Writer prints execution events as console text.
type Writer struct {
	Output io.Writer // Destination of the text.
	Err    error     // First write error, if any.
}

var _ cpu.Tracer = (*Writer)(nil)

// NewWriter creates a Writer printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Output: w}
}

// line writes a single translated line.
func (tw *Writer) line(key message.Reference, args ...any) {
	if tw.Err != nil {
		return
	}
	_, tw.Err = translate.Fprintln(tw.Output, key, args...)
}

// Executed prints the instruction and its effect.
func (tw *Writer) Executed(ev cpu.Event) {
	detail := ev.Detail
	inst := detail.Instruction

	tw.line("")
	tw.line("Executing instruction: %v with operand %d", inst.Op, inst.Operand)

	switch inst.Op {
	case cpu.OP_LOAD:
		tw.line("Loaded %d from memory address %d", detail.Value, detail.Address)
	case cpu.OP_STORE:
		tw.line("Stored %d to memory address %d", detail.Value, detail.Address)
	case cpu.OP_ADD:
		tw.line("Added %d to accumulator. New AC = %d", detail.Value, detail.Accumulator)
	case cpu.OP_SUB:
		tw.line("Subtracted %d from accumulator. New AC = %d", detail.Value, detail.Accumulator)
	case cpu.OP_JUMP:
		if detail.Taken {
			tw.line("Jumping to instruction %d", detail.Target)
		} else {
			tw.line("Jump not taken, AC not zero.")
		}
	case cpu.OP_NOP:
		tw.line("NOP: No operation.")
	case cpu.OP_HALT:
		tw.line("HALT: Stopping execution.")
	}
}

// Finished prints the statistics and the final machine state.
func (tw *Writer) Finished(sum cpu.Summary) {
	tw.line("")
	tw.line("Execution finished!")
	tw.line("Total cycles: %d", sum.Cycles)
	tw.line("Execution time: %d ms", sum.Elapsed.Milliseconds())
	tw.line("Final accumulator (AC) value: %d", sum.Accumulator)
	tw.line("Final program counter (PC): %d", sum.Pc)
	tw.line("Final memory state:")
	for addr, value := range sum.Memory {
		tw.line("Memory[%d] = %d", addr, value)
	}
}

// Reset prints the reset banner.
func (tw *Writer) Reset() {
	tw.line("")
	tw.line("--- Resetting CPU for new execution ---")
	tw.line("")
}

// PipelineStarted prints the pipeline banner.
func (tw *Writer) PipelineStarted() {
	tw.line("")
	tw.line("--- Starting Pipeline Simulation ---")
}

// PipelineCycle prints the cycle about to execute.
func (tw *Writer) PipelineCycle(ev cpu.Event) {
	inst := ev.Detail.Instruction
	tw.line("Cycle %d: FDE - Instruction: %v Operand: %d", ev.Cycle, inst.Op, inst.Operand)
}

// PipelineHalted prints the HALT notice.
func (tw *Writer) PipelineHalted(ev cpu.Event) {
	tw.line("Pipeline: HALT encountered. Stopping.")
}

// PipelineFinished prints the pipeline statistics.
func (tw *Writer) PipelineFinished(sum cpu.PipelineSummary) {
	tw.line("Total pipeline cycles: %d", sum.Cycles)
	tw.line("Final accumulator value: %d", sum.Accumulator)
}
