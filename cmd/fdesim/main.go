// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/ezrec/fdesim/asm"
	"github.com/ezrec/fdesim/cpu"
	"github.com/ezrec/fdesim/emulator"
	"github.com/ezrec/fdesim/trace"
)

func main() {
	var compile string
	var memory uint
	var verbose bool
	var batch bool
	var pipeline bool
	var graph string

	flag.StringVar(&compile, "c", "", "program file to assemble (default: built-in sample)")
	flag.UintVar(&memory, "m", cpu.DEFAULT_MEMORY_SIZE, "Memory cells")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&batch, "b", false, "Batch mode: run once, do not prompt")
	flag.BoolVar(&pipeline, "p", false, "In batch mode, also walk the pipeline")
	flag.StringVar(&graph, "g", "", "Write a graphviz dump of the final CPU to this file")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if memory == 0 {
		log.Fatalf("%v: -m must be at least 1", os.Args[0])
	}

	source := "sample"
	lst := emulator.Sample()

	// Assemble a program file.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		assembler := &asm.Assembler{Verbose: verbose}
		assembler.Predefine("MEMORY_SIZE", fmt.Sprintf("%d", memory))
		lst, err = assembler.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		source = compile
	}

	emu := emulator.NewEmulator(lst, memory)
	emu.Verbose = verbose

	var tracer cpu.Tracer = trace.NewWriter(os.Stdout)
	if verbose {
		tracer = trace.Multi{tracer, &trace.Log{}}
	}
	emu.Tracer = tracer

	err := emu.Load()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if batch {
		err = emu.Run()
		if err == nil && pipeline {
			_, err = emu.Pipeline()
		}
	} else {
		session := &emulator.Session{
			Emulator: emu,
			Input:    os.Stdin,
			Output:   os.Stdout,
		}
		err = session.Run()
	}
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if len(graph) != 0 {
		ouf, err := os.Create(graph)
		if err != nil {
			log.Fatalf("%v: %v", graph, err)
		}
		defer ouf.Close()

		memviz.Map(ouf, &emu.Cpu.State, emu.Cpu.Memory)
	}
}
