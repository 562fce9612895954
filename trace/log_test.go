package trace

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fdesim/cpu"
)

func TestLog(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	tl := &Log{Logger: log.New(buf, "", 0)}

	proc := cpu.NewCpu(cpu.Program{{Op: cpu.OP_NOP, Operand: 0}, {Op: cpu.OP_HALT, Operand: 0}}, 2)
	proc.Tracer = tl
	proc.Reset()
	assert.NoError(proc.Run())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(lines, 4)
	assert.Equal("reset", lines[0])
	assert.Equal("exec 1: 000 NOP 0 ac=0 addr=0 value=0 taken=false", lines[1])
	assert.Equal("exec 2: 001 HALT 0 ac=0 addr=0 value=0 taken=false", lines[2])
	assert.True(strings.HasPrefix(lines[3], "finished: cycles=2 elapsed="), lines[3])
	assert.True(strings.HasSuffix(lines[3], " ac=0 pc=2 memory=[0 0]"), lines[3])
}

func TestMulti(t *testing.T) {
	assert := assert.New(t)

	a := &bytes.Buffer{}
	b := &bytes.Buffer{}
	m := Multi{NewWriter(a), &Log{Logger: log.New(b, "", 0)}}

	_, err := cpu.RunPipeline(cpu.Program{{Op: cpu.OP_NOP, Operand: 1}}, 1, m)
	assert.NoError(err)

	assert.Equal("\n--- Starting Pipeline Simulation ---\n"+
		"Cycle 1: FDE - Instruction: NOP Operand: 1\n"+
		"Total pipeline cycles: 1\n"+
		"Final accumulator value: 0\n", a.String())
	assert.Equal("pipeline: start\n"+
		"pipeline 1: 000 NOP 1\n"+
		"pipeline: finished cycles=1 ac=0\n", b.String())
}
