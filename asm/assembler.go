// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm assembles the text form of accumulator programs.
//
// Each line holds an optional set of labels, a mnemonic and its operand:
//
//	; comment
//	.equ ONE 1
//	.data ONE 5          ; memory[1] = 5 before the first run
//	loop:  LOAD ONE
//	       SUB $(ONE + 1)
//	       JUMP loop
//	       HALT
//
// Operands are numbers, equates, labels, or $(...) expressions evaluated at
// assembly time.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/fdesim/cpu"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"MEMORY_SIZE": fmt.Sprintf("%d", cpu.DEFAULT_MEMORY_SIZE),
}

var (
	reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reParen = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Assembler is a single pass assembler for accumulator programs.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Line    []Line // List of generated instructions.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to instruction indexes.
	Equate    map[string]string // Map of equates.
	Data      map[int]int       // Map of memory addresses to initial values.
}

// Predefine defines an equate that is present before the first line.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, strconv.IntSize)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine expands a single line into words, and handles directives and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .data ADDR VALUE
	if words[0] == ".data" {
		if len(words) != 3 {
			err = ErrDataSyntax
			return
		}
		var addr, value int
		addr, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		value, err = asm.valueOf(words[2])
		if err != nil {
			return
		}
		asm.Data[addr] = value
		words = words[:0]
		return
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = len(asm.Line)
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// Parse parses an input stream into a Listing of instructions.
func (asm *Assembler) Parse(input io.Reader) (lst *Listing, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Line = asm.Line[:0]
	asm.Label = make(map[string]int, 16)
	asm.Data = make(map[int]int)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Line {
		op := &asm.Line[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		index, ok := asm.Label[op.LinkLabel]
		if !ok {
			lineno = op.LineNo
			line = op.String()
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		op.Instruction.Operand = index
	}

	lst = &Listing{
		Lines: slices.Clone(asm.Line),
		Data:  maps.Clone(asm.Data),
	}

	return
}

// parseWords evaluates the words of a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := cpu.ParseOp(words[0])
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	if len(args) > 1 {
		err = ErrOperandExtra
		return
	}

	line := Line{
		LineNo:      lineno,
		Words:       slices.Clone(words),
		Instruction: cpu.Instruction{Op: op},
	}

	switch {
	case len(args) == 0 && !op.Addressed() && op != cpu.OP_JUMP:
		// Operand is unused.
	case len(args) == 0:
		err = ErrOperandMissing
		return
	default:
		var value int
		value, err = asm.valueOf(args[0])
		if err != nil {
			if !reLabel.MatchString(args[0]) {
				return
			}
			err = nil
			line.LinkLabel = args[0]
		}
		line.Instruction.Operand = value
	}

	asm.Line = append(asm.Line, line)

	return
}
