package cpu

import (
	"fmt"
	"time"
)

// Registers is the architectural register set of the processor.
type Registers struct {
	Accumulator int  // Accumulator.
	Pc          int  // Index of the next instruction to fetch.
	Halted      bool // Set by HALT.
}

// Running returns true if the program counter may be fetched from a program
// of length count.
func (regs Registers) Running(count int) bool {
	return !regs.Halted && regs.Pc >= 0 && regs.Pc < count
}

// State is the register set plus execution statistics.
type State struct {
	Registers

	Cycles  uint          // Instructions fetched since reset.
	Elapsed time.Duration // Wall time spent in Run since reset.
}

// Reset the state to power-on values.
func (st *State) Reset() {
	*st = State{}
}

// String returns the registers and statistics as text, one per line.
func (st *State) String() (text string) {
	text = fmt.Sprintf("% 6s: %d\n", "ac", st.Accumulator)
	text += fmt.Sprintf("% 6s: %d\n", "pc", st.Pc)
	text += fmt.Sprintf("% 6s: %v\n", "halted", st.Halted)
	text += fmt.Sprintf("% 6s: %d\n", "cycles", st.Cycles)

	return
}
