package trace

import (
	"log"

	"github.com/ezrec/fdesim/cpu"
)

// Log sends one line per event to a logger.
type Log struct {
	Logger *log.Logger // Destination logger. If nil, the standard logger is used.
}

var _ cpu.Tracer = (*Log)(nil)

func (tl *Log) printf(format string, args ...any) {
	if tl.Logger == nil {
		log.Printf(format, args...)
		return
	}
	tl.Logger.Printf(format, args...)
}

// Executed logs the instruction and its effect.
func (tl *Log) Executed(ev cpu.Event) {
	d := ev.Detail
	tl.printf("exec %d: %03d %v ac=%d addr=%d value=%d taken=%v", ev.Cycle, ev.Pc, d.Instruction, d.Accumulator, d.Address, d.Value, d.Taken)
}

// Finished logs the final state of a run.
func (tl *Log) Finished(sum cpu.Summary) {
	tl.printf("finished: cycles=%d elapsed=%v ac=%d pc=%d memory=%v", sum.Cycles, sum.Elapsed, sum.Accumulator, sum.Pc, sum.Memory)
}

// Reset logs a reset.
func (tl *Log) Reset() {
	tl.printf("reset")
}

// PipelineStarted logs the start of a pipeline walk.
func (tl *Log) PipelineStarted() {
	tl.printf("pipeline: start")
}

// PipelineCycle logs a pipeline fetch.
func (tl *Log) PipelineCycle(ev cpu.Event) {
	tl.printf("pipeline %d: %03d %v", ev.Cycle, ev.Pc, ev.Detail.Instruction)
}

// PipelineHalted logs the cycle of a pipeline HALT.
func (tl *Log) PipelineHalted(ev cpu.Event) {
	tl.printf("pipeline: halt at cycle %d", ev.Cycle)
}

// PipelineFinished logs the final state of a pipeline walk.
func (tl *Log) PipelineFinished(sum cpu.PipelineSummary) {
	tl.printf("pipeline: finished cycles=%d ac=%d", sum.Cycles, sum.Accumulator)
}
