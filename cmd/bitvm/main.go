// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/bitvm/cpu"
	"github.com/ezrec/bitvm/emulator"
)

func main() {
	var input string
	var output string
	var verbose bool
	var prescan bool
	var limit int
	var listing bool

	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&prescan, "p", false, "Record all labels before execution")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.BoolVar(&listing, "l", false, "List the program, do not execute")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one program file, got %v", os.Args[0], flag.Args())
	}

	program := flag.Arg(0)
	inf, err := os.Open(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
	defer inf.Close()

	prog, err := cpu.LoadProgram(inf)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if listing {
		fmt.Print(prog.Listing())
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Prescan = prescan
	emu.Limit = limit

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
}
