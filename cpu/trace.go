package cpu

import (
	"time"
)

// Event is a single fetched instruction.
type Event struct {
	Cycle  uint   // Cycle number, starting at 1.
	Pc     int    // Program counter the instruction was fetched from.
	Detail Detail // Effect of the instruction. Pipeline events only set the Instruction.
}

// Summary is the machine state when Run terminates.
type Summary struct {
	Cycles      uint
	Elapsed     time.Duration
	Accumulator int
	Pc          int
	Memory      []int
}

// PipelineSummary is reported when a pipeline walk runs off the end of the program.
type PipelineSummary struct {
	Cycles      uint
	Accumulator int
	Halted      bool // Set if the walk stopped at a HALT.
}

// Tracer receives the execution events of a Cpu.
type Tracer interface {
	// Executed is called after each instruction executed by Run.
	Executed(ev Event)
	// Finished is called when Run terminates normally.
	Finished(sum Summary)
	// Reset is called when the Cpu is reset.
	Reset()
	// PipelineStarted is called before a pipeline walk.
	PipelineStarted()
	// PipelineCycle is called before each instruction of a pipeline walk.
	PipelineCycle(ev Event)
	// PipelineHalted is called when a pipeline walk reaches a HALT.
	PipelineHalted(ev Event)
	// PipelineFinished is called when a pipeline walk runs off the end of the program.
	PipelineFinished(sum PipelineSummary)
}

// NopTracer discards all events.
type NopTracer struct{}

var _ Tracer = NopTracer{}

// Executed discards the event.
func (NopTracer) Executed(Event) {}

// Finished discards the summary.
func (NopTracer) Finished(Summary) {}

// Reset discards the event.
func (NopTracer) Reset() {}

// PipelineStarted discards the event.
func (NopTracer) PipelineStarted() {}

// PipelineCycle discards the event.
func (NopTracer) PipelineCycle(Event) {}

// PipelineHalted discards the event.
func (NopTracer) PipelineHalted(Event) {}

// PipelineFinished discards the summary.
func (NopTracer) PipelineFinished(PipelineSummary) {}
