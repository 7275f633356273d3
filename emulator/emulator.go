// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/bitvm/cpu"
	"github.com/ezrec/bitvm/io"
)

// Emulator state. CPU + program + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Prescan  bool         // If set, labels are recorded before execution.
	Limit    int          // Maximum instructions per run; 0 is unlimited.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program.

	Tape io.Tape // Console channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Tape)

	return
}

// Reset the emulator state, and load the program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		emu.Program = &cpu.Program{}
	}

	emu.Tape.Rewind()

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Prescan = emu.Prescan
	emu.Cpu.Load(emu.Program)
	emu.Cpu.Reset()

	return
}

// Code returns the current instruction code.
func (emu *Emulator) Code() (code cpu.Code) {
	code, _ = emu.Cpu.FetchCode()
	return
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	_, err = emu.Cpu.FetchCode()
	if errors.Is(err, cpu.ErrPcEmpty) {
		err = nil
		done = true
		if emu.Verbose {
			log.Printf("emulator: halted after %d steps", emu.Cpu.Steps)
		}
		return
	}

	if emu.Limit > 0 && emu.Cpu.Steps >= emu.Limit {
		err = ErrStepLimit
		return
	}

	err = emu.Cpu.Tick()

	return
}

// Run ticks the emulator until the program ends, or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
