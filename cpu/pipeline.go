package cpu

import (
	"errors"
)

// RunPipeline walks a program from the start on a fresh machine with count
// memory cells, narrating each cycle to tracer before it executes.
//
// The walk shares Step and the loop condition with Cpu.Run, so both produce
// the same accumulator and cycle count for a program without a HALT. A HALT
// stops the walk with sum.Halted set, and PipelineFinished is not called.
func RunPipeline(prog Program, count uint, tracer Tracer) (sum PipelineSummary, err error) {
	if tracer == nil {
		tracer = NopTracer{}
	}

	mem := NewMemory(count)
	var regs Registers

	tracer.PipelineStarted()

	for regs.Running(len(prog)) {
		sum.Cycles++
		inst := prog[regs.Pc]
		ev := Event{Cycle: sum.Cycles, Pc: regs.Pc, Detail: Detail{Instruction: inst}}

		tracer.PipelineCycle(ev)

		var next Registers
		next, _, err = Step(regs, mem, inst)
		if err != nil {
			err = errors.Join(ErrInstruction{Pc: regs.Pc, Instruction: inst}, err)
			return
		}
		regs = next

		if regs.Halted {
			sum.Halted = true
			sum.Accumulator = regs.Accumulator
			tracer.PipelineHalted(ev)
			return
		}
	}

	sum.Accumulator = regs.Accumulator
	tracer.PipelineFinished(sum)

	return
}
