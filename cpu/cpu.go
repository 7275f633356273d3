package cpu

import (
	"errors"
	"fmt"
	"log"
	"math/big"
	"strconv"
	"strings"

	"github.com/ezrec/bitvm/io"
)

// Cpu is the machine state and execution engine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Prescan bool // Set to record all labels on reset.

	Host io.Host // Console for read and print.

	Codes []Code // Instruction words being executed.

	Pc       int                // Program counter.
	Register [REG_COUNT]uint8   // Register bank.
	Memory   [MEMORY_SIZE]uint8 // Memory.
	Labels   Labels             // Label table.

	Steps int // Instructions executed since reset.
}

// NewCpu creates a new CPU attached to a console.
func NewCpu(host io.Host) (cpu *Cpu) {
	cpu = &Cpu{
		Host: host,
	}

	return
}

// Load sets the program to execute. The CPU must be reset afterwards.
func (cpu *Cpu) Load(prog *Program) {
	cpu.Codes = prog.Codes
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 6s: %d\n", "pc", cpu.Pc)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 6s: 0x%02X (%d)\n", fmt.Sprintf("r%d", n), val, val)
	}
	text += fmt.Sprintf("% 6s: %d\n", "labels", cpu.Labels.Len())

	return
}

// Reset the CPU state.
// - Clears the registers, memory and labels.
// - Zeros the program counter and step counter.
// - Records all program labels, if Prescan is set.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Labels.Reset()
	cpu.Pc = 0
	cpu.Steps = 0

	if cpu.Prescan {
		cpu.Labels.Prescan(cpu.Codes)
		if cpu.Verbose {
			log.Printf("cpu: prescan found %d labels", cpu.Labels.Len())
		}
	}
}

// FetchCode fetches the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Pc < 0 || cpu.Pc >= len(cpu.Codes) {
		err = ErrPcEmpty
		return
	}

	code = cpu.Codes[cpu.Pc]
	return
}

// Tick executes a single CPU instruction cycle.
// ErrPcEmpty is returned once the program counter leaves the program.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Pc, code)
	}

	next_pc := cpu.Pc + 1

	reg := &cpu.Register
	mem := &cpu.Memory
	r1 := code.R1()
	r2 := code.R2()

	switch op := code.Op(); op {
	case OP_NOP:
		// pass
	case OP_MOV:
		reg[r1] = reg[r2]
	case OP_LDRI:
		reg[r1] = mem[reg[REG_POINTER]]
	case OP_LD:
		reg[r1] = mem[code.Address()]
	case OP_LDI:
		reg[r1] = code.Imm8()
	case OP_ST:
		mem[code.Address()] = reg[r1]
	case OP_STI:
		mem[code.Address()] = code.Imm8()
	case OP_ADD:
		reg[r1] += reg[r2]
	case OP_AND:
		reg[r1] &= reg[r2]
	case OP_OR:
		reg[r1] |= reg[r2]
	case OP_INC:
		reg[r1]++
	case OP_DEC:
		reg[r1]--
	case OP_PRINT:
		if r2 == PRINT_DECIMAL {
			err = cpu.Host.Emit(strconv.Itoa(int(reg[r1])), true)
		} else {
			err = cpu.Host.Emit(string(rune(reg[r1])), false)
		}
		if err != nil {
			return
		}
	case OP_LABEL:
		cpu.Labels.Record(code.Imm8(), cpu.Pc)
	case OP_LOOP:
		if cpu.taken(code.Cond(), reg[r2]) {
			// An unknown label jumps to itself.
			next_pc = cpu.Labels.Lookup(code.Imm8(), cpu.Pc)
		}
	case OP_READ:
		err = cpu.read()
		if err != nil {
			err = errors.Join(ErrOpcodeRead, err)
			return
		}
	default:
		log.Printf("%03d: %v %v (0x%06x)", cpu.Pc, ErrOpcodeUnknown, op, uint32(code))
	}

	cpu.Pc = next_pc
	cpu.Steps++

	return
}

// taken returns true if the loop condition holds for the value.
func (cpu *Cpu) taken(cond CodeCond, value uint8) (ok bool) {
	switch cond {
	case COND_ZERO:
		ok = value == 0
	case COND_NEGATIVE:
		// Registers are unsigned; never taken.
		ok = false
	case COND_POSITIVE:
		ok = value > 0
	}

	return
}

// read reads a line from the host into memory at the pointer register.
//   - "val N" stores N (base 10, 0 if invalid) modulo 256.
//   - A line of only binary digits stores its value modulo 256.
//   - Any other line stores each character, and sets the length register
//     to the number of characters stored.
func (cpu *Cpu) read() (err error) {
	line, err := cpu.Host.ReadLine()
	if err != nil {
		return
	}

	line = strings.TrimSpace(line)
	fields := strings.Fields(line)

	switch {
	case len(fields) > 1 && strings.EqualFold(fields[0], "val"):
		rest := strings.TrimSpace(line[len(fields[0]):])
		cpu.push(parseByte(rest, 10))
	case isBinary(strings.Join(fields, "")):
		cpu.push(parseByte(strings.Join(fields, ""), 2))
	default:
		var length uint8
		for _, ch := range line {
			cpu.push(uint8(ch))
			length++
		}
		cpu.Register[REG_LENGTH] = length
	}

	return
}

// push stores a byte at the pointer register, and advances the pointer.
func (cpu *Cpu) push(value uint8) {
	cpu.Memory[cpu.Register[REG_POINTER]] = value
	cpu.Register[REG_POINTER]++
}

// isBinary returns true for a non-empty string of only '0' and '1'.
func isBinary(text string) bool {
	if len(text) == 0 {
		return false
	}

	for _, ch := range text {
		if ch != '0' && ch != '1' {
			return false
		}
	}

	return true
}

// parseByte parses an integer of any size, and returns it modulo 256.
// Unparseable text is zero.
func parseByte(text string, base int) uint8 {
	value, ok := new(big.Int).SetString(text, base)
	if !ok {
		return 0
	}

	return uint8(value.Mod(value, big.NewInt(256)).Uint64())
}
