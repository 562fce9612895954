// Package cpu implements a single accumulator processor for the simulator.
//
// The processor has one accumulator, a program counter into a read-only
// program of instructions, and a small array of integer memory cells. Each
// cycle fetches the instruction at the program counter, applies its effect
// through Step, and advances the program counter. Execution ends when a HALT
// is executed or the program counter leaves the program.
//
// Progress is reported to a caller supplied Tracer, so the package itself
// never writes to the console.
package cpu
