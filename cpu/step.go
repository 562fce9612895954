package cpu

// Detail describes the effect of a single executed instruction.
type Detail struct {
	Instruction Instruction

	Address     int  // LOAD, STORE, ADD, SUB: memory address accessed.
	Value       int  // LOAD, STORE: value moved. ADD, SUB: memory operand.
	Accumulator int  // Accumulator after the instruction.
	Taken       bool // JUMP: set if the jump was taken.
	Target      int  // JUMP: the jump target operand.
}

// Step applies a single instruction to the registers and memory, and returns
// the next register set with the program counter advanced.
//
// A taken JUMP sets the program counter to target - 1, which the common
// increment then moves to target. On error, regs and mem are left unchanged.
func Step(regs Registers, mem *Memory, inst Instruction) (next Registers, detail Detail, err error) {
	next = regs
	detail = Detail{Instruction: inst, Accumulator: regs.Accumulator}

	if !inst.Op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	if inst.Op.Addressed() {
		detail.Address = inst.Operand
	}

	switch inst.Op {
	case OP_LOAD:
		next.Accumulator, err = mem.Load(inst.Operand)
		detail.Value = next.Accumulator
	case OP_STORE:
		err = mem.Store(inst.Operand, next.Accumulator)
		detail.Value = next.Accumulator
	case OP_ADD:
		detail.Value, err = mem.Load(inst.Operand)
		next.Accumulator += detail.Value
	case OP_SUB:
		detail.Value, err = mem.Load(inst.Operand)
		next.Accumulator -= detail.Value
	case OP_JUMP:
		detail.Target = inst.Operand
		if next.Accumulator == 0 {
			next.Pc = inst.Operand - 1
			detail.Taken = true
		}
	case OP_NOP:
		// pass
	case OP_HALT:
		next.Halted = true
	}

	if err != nil {
		next = regs
		detail = Detail{Instruction: inst, Accumulator: regs.Accumulator}
		return
	}

	next.Pc++
	detail.Accumulator = next.Accumulator

	return
}
