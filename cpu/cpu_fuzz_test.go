package cpu

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bitvm/io"
)

func FuzzCpu(f *testing.F) {
	for op := range 16 {
		f.Add(uint32(op<<20)|0x0_12_0_34, "val 42\n", true)
		f.Add(uint32(op<<20)|0x0_f1_0_ff, "1010\n", false)
		f.Add(uint32(op<<20)|0x0_20_0_00, "hi\n", true)
		f.Add(uint32(op<<20)|0x0_02_0_07, "", false)
	}

	f.Fuzz(func(t *testing.T, word uint32, input string, labeled bool) {
		assert := assert.New(t)

		code := Code(word & 0xffffff)

		tape_output := &bytes.Buffer{}
		tape := &io.Tape{
			Input:  strings.NewReader(input),
			Output: tape_output,
		}

		cpu := NewCpu(tape)
		cpu.Pc = 0x21
		for n := range cpu.Register {
			cpu.Register[n] = uint8(0x10*n + 3)
		}
		cpu.Register[1] = 0
		cpu.Register[REG_POINTER] = 0xfe
		for n := range cpu.Memory {
			cpu.Memory[n] = uint8(0xff - n)
		}
		if labeled {
			cpu.Labels.Record(code.Imm8(), 0x05)
		}

		pre_reg := cpu.Register
		pre_mem := cpu.Memory

		err := cpu.Execute(code)

		code_str := fmt.Sprintf("0x%06x (%v) input:%q labeled:%v\ncpu:%v",
			uint32(code), code, input, labeled, cpu.String())

		if err != nil {
			if code.Op() == OP_READ && len(input) == 0 && errors.Is(err, io.ErrInputEmpty) {
				// expected error
				assert.True(errors.Is(err, ErrOpcodeRead), code_str)
				assert.True(errors.Is(err, ErrOpcode(0)), code_str)
				assert.Equal(0x21, cpu.Pc, code_str)
				assert.Equal(pre_reg, cpu.Register, code_str)
			} else {
				assert.NoError(err, code_str)
			}
			return
		}

		r1 := code.R1()
		r2 := code.R2()
		expect_reg := pre_reg
		expect_mem := pre_mem
		next_pc := 0x22

		switch code.Op() {
		case OP_NOP:
		case OP_MOV:
			expect_reg[r1] = pre_reg[r2]
		case OP_LDRI:
			expect_reg[r1] = pre_mem[pre_reg[REG_POINTER]]
		case OP_LD:
			expect_reg[r1] = pre_mem[code.Address()]
		case OP_LDI:
			expect_reg[r1] = code.Imm8()
		case OP_ST:
			expect_mem[code.Address()] = pre_reg[r1]
		case OP_STI:
			expect_mem[code.Address()] = code.Imm8()
		case OP_ADD:
			expect_reg[r1] = uint8((int(pre_reg[r1]) + int(pre_reg[r2])) % 256)
		case OP_AND:
			expect_reg[r1] = pre_reg[r1] & pre_reg[r2]
		case OP_OR:
			expect_reg[r1] = pre_reg[r1] | pre_reg[r2]
		case OP_INC:
			expect_reg[r1] = uint8((int(pre_reg[r1]) + 1) % 256)
		case OP_DEC:
			expect_reg[r1] = uint8((int(pre_reg[r1]) + 255) % 256)
		case OP_PRINT:
			if r2 == PRINT_DECIMAL {
				assert.Equal(strconv.Itoa(int(pre_reg[r1]))+"\n", tape_output.String(), code_str)
			} else {
				assert.Equal(string(rune(pre_reg[r1])), tape_output.String(), code_str)
			}
		case OP_LABEL:
			assert.Equal(0x21, cpu.Labels.Lookup(code.Imm8(), -1), code_str)
		case OP_LOOP:
			value := pre_reg[r2]
			take := (code.Cond() == COND_ZERO && value == 0) ||
				(code.Cond() == COND_POSITIVE && value > 0)
			if take {
				if labeled {
					next_pc = 0x05
				} else {
					next_pc = 0x21
				}
			}
		case OP_READ:
			line := strings.TrimSpace(strings.SplitN(input, "\n", 2)[0])
			line = strings.TrimSuffix(line, "\r")
			ptr := pre_reg[REG_POINTER]
			fields := strings.Fields(line)
			switch {
			case len(fields) > 1 && strings.EqualFold(fields[0], "val"):
				expect_mem[ptr] = parseByte(strings.TrimSpace(line[len(fields[0]):]), 10)
				expect_reg[REG_POINTER] = ptr + 1
			case isBinary(strings.Join(fields, "")):
				expect_mem[ptr] = parseByte(strings.Join(fields, ""), 2)
				expect_reg[REG_POINTER] = ptr + 1
			default:
				var length uint8
				for _, ch := range strings.TrimSpace(line) {
					expect_mem[ptr] = uint8(ch)
					ptr++
					length++
				}
				expect_reg[REG_POINTER] = ptr
				expect_reg[REG_LENGTH] = length
			}
		default:
			panic(ErrOpcode(code))
		}

		if code.Op() != OP_PRINT {
			assert.Equal(0, tape_output.Len(), code_str)
		}

		assert.Equal(expect_reg, cpu.Register, code_str)
		assert.Equal(expect_mem, cpu.Memory, code_str)
		assert.Equal(next_pc, cpu.Pc, code_str)
	})
}
