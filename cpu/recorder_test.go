package cpu

// recorder is a Tracer that keeps every event.
type recorder struct {
	Events   []Event
	Summary  []Summary
	Resets   int
	Started  int
	Cycles   []Event
	Halts    []Event
	Finishes []PipelineSummary
}

var _ Tracer = (*recorder)(nil)

func (r *recorder) Executed(ev Event) { r.Events = append(r.Events, ev) }
func (r *recorder) Finished(sum Summary) { r.Summary = append(r.Summary, sum) }
func (r *recorder) Reset() { r.Resets++ }
func (r *recorder) PipelineStarted() { r.Started++ }
func (r *recorder) PipelineCycle(ev Event) { r.Cycles = append(r.Cycles, ev) }
func (r *recorder) PipelineHalted(ev Event) { r.Halts = append(r.Halts, ev) }
func (r *recorder) PipelineFinished(sum PipelineSummary) { r.Finishes = append(r.Finishes, sum) }

// pcs returns the program counter of every executed event.
func (r *recorder) pcs() (pcs []int) {
	for _, ev := range r.Events {
		pcs = append(pcs, ev.Pc)
	}
	return
}

// sampleProgram is the demonstration program of the simulator.
var sampleProgram = Program{
	{OP_LOAD, 0},
	{OP_ADD, 1},
	{OP_STORE, 2},
	{OP_SUB, 3},
	{OP_JUMP, 5},
	{OP_NOP, 0},
	{OP_HALT, 0},
}
