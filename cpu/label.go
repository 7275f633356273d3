package cpu

// Labels maps label identifiers to program counter values.
//
// Entries are recorded as label instructions execute, so a label is only
// known after control flow has passed through it at least once.
type Labels struct {
	Data map[uint8]int
}

// Record sets the program counter for a label, replacing any prior entry.
func (l *Labels) Record(id uint8, pc int) {
	if l.Data == nil {
		l.Data = map[uint8]int{}
	}
	l.Data[id] = pc
}

// Lookup returns the program counter for a label, or def if the label
// has not been recorded.
func (l *Labels) Lookup(id uint8, def int) (pc int) {
	pc, ok := l.Data[id]
	if !ok {
		pc = def
	}
	return
}

// Len returns the number of recorded labels.
func (l *Labels) Len() int {
	return len(l.Data)
}

// Prescan records every label instruction in the program, in program order.
func (l *Labels) Prescan(codes []Code) {
	for pc, code := range codes {
		if code.Op() == OP_LABEL {
			l.Record(code.Imm8(), pc)
		}
	}
}

// Reset forgets all labels.
func (l *Labels) Reset() {
	clear(l.Data)
}
