package trace

import (
	"github.com/ezrec/fdesim/cpu"
)

// Multi sends every event to each tracer in order.
type Multi []cpu.Tracer

var _ cpu.Tracer = Multi(nil)

// Executed forwards an executed instruction to each tracer.
func (m Multi) Executed(ev cpu.Event) {
	for _, t := range m {
		t.Executed(ev)
	}
}

// Finished forwards the end of a run to each tracer.
func (m Multi) Finished(sum cpu.Summary) {
	for _, t := range m {
		t.Finished(sum)
	}
}

// Reset forwards a reset to each tracer.
func (m Multi) Reset() {
	for _, t := range m {
		t.Reset()
	}
}

// PipelineStarted forwards the start of a pipeline walk to each tracer.
func (m Multi) PipelineStarted() {
	for _, t := range m {
		t.PipelineStarted()
	}
}

// PipelineCycle forwards a pipeline cycle to each tracer.
func (m Multi) PipelineCycle(ev cpu.Event) {
	for _, t := range m {
		t.PipelineCycle(ev)
	}
}

// PipelineHalted forwards a pipeline HALT to each tracer.
func (m Multi) PipelineHalted(ev cpu.Event) {
	for _, t := range m {
		t.PipelineHalted(ev)
	}
}

// PipelineFinished forwards the end of a pipeline walk to each tracer.
func (m Multi) PipelineFinished(sum cpu.PipelineSummary) {
	for _, t := range m {
		t.PipelineFinished(sum)
	}
}
