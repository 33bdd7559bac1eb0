package puzzle

import "encoding/json"

// FunctionLengths holds the per-function instruction-slot budgets F1..F5.
type FunctionLengths struct {
	F1 int `json:"f1"`
	F2 int `json:"f2"`
	F3 int `json:"f3"`
	F4 int `json:"f4"`
	F5 int `json:"f5"`
}

// Get returns the slot budget for function index 0..4.
func (l FunctionLengths) Get(index int) int {
	switch index {
	case 0:
		return l.F1
	case 1:
		return l.F2
	case 2:
		return l.F3
	case 3:
		return l.F4
	case 4:
		return l.F5
	default:
		return 0
	}
}

// TotalSlots sums every function's slot budget.
func (l FunctionLengths) TotalSlots() int {
	return l.F1 + l.F2 + l.F3 + l.F4 + l.F5
}

// NumFunctions is the fixed function arity of the machine.
const NumFunctions = 5

// Slot is an addressable (function, instruction) position in a Program.
// A Program whose find-empty-slot walk is exhausted returns Slot{-1, -1}.
type Slot struct {
	Func, Inst int
}

// Empty is the sentinel "no slot" value.
var Empty = Slot{-1, -1}

// Program is a fixed-arity record of five function bodies. Each body is
// a slice of *Instruction sized to the puzzle's slot budget for that
// function; a nil entry means the slot is empty.
type Program struct {
	Functions [NumFunctions][]*Instruction
}

// NewProgram allocates a program with every slot empty, sized to the
// given per-function budgets.
func NewProgram(lengths FunctionLengths) Program {
	var p Program
	for i := 0; i < NumFunctions; i++ {
		p.Functions[i] = make([]*Instruction, lengths.Get(i))
	}
	return p
}

// Function returns the instruction slots for function index 0..4.
func (p Program) Function(index int) []*Instruction {
	if index < 0 || index >= NumFunctions {
		return nil
	}
	return p.Functions[index]
}

// Get returns the instruction at (funcIndex, instIndex), or nil if the
// slot is out of range or empty.
func (p Program) Get(funcIndex, instIndex int) *Instruction {
	fn := p.Function(funcIndex)
	if instIndex < 0 || instIndex >= len(fn) {
		return nil
	}
	return fn[instIndex]
}

// Set writes an instruction (or nil to clear) at (funcIndex, instIndex).
// Out-of-range writes are silently ignored.
func (p *Program) Set(funcIndex, instIndex int, instruction *Instruction) {
	fn := p.Function(funcIndex)
	if instIndex < 0 || instIndex >= len(fn) {
		return
	}
	fn[instIndex] = instruction
}

// Clone deep-copies the program so search branches can expand
// independently.
func (p Program) Clone() Program {
	var out Program
	for i := 0; i < NumFunctions; i++ {
		src := p.Functions[i]
		dst := make([]*Instruction, len(src))
		for j, inst := range src {
			if inst == nil {
				continue
			}
			ic := *inst
			dst[j] = &ic
		}
		out.Functions[i] = dst
	}
	return out
}

// WithInstruction returns a clone of p with one slot set.
func (p Program) WithInstruction(funcIndex, instIndex int, instruction *Instruction) Program {
	out := p.Clone()
	out.Set(funcIndex, instIndex, instruction)
	return out
}

// CountInstructions counts only non-empty slots across every function.
func (p Program) CountInstructions() int {
	count := 0
	for i := 0; i < NumFunctions; i++ {
		for _, inst := range p.Functions[i] {
			if inst != nil {
				count++
			}
		}
	}
	return count
}

// FindEmptySlot returns the lexicographically first (function, slot)
// pair whose entry is empty, or Empty if the program is full.
func (p Program) FindEmptySlot() Slot {
	for i := 0; i < NumFunctions; i++ {
		for j, inst := range p.Functions[i] {
			if inst == nil {
				return Slot{Func: i, Inst: j}
			}
		}
	}
	return Empty
}

// NextEmptySlotAfter returns the lexicographically first empty slot
// strictly after (funcIndex, instIndex), or Empty if none remains.
func (p Program) NextEmptySlotAfter(funcIndex, instIndex int) Slot {
	for fi := funcIndex; fi < NumFunctions; fi++ {
		start := 0
		if fi == funcIndex {
			start = instIndex + 1
		}
		fn := p.Functions[fi]
		for ii := start; ii < len(fn); ii++ {
			if fn[ii] == nil {
				return Slot{Func: fi, Inst: ii}
			}
		}
	}
	return Empty
}

// HasEmptySlots reports whether any slot in the program is unfilled.
func (p Program) HasEmptySlots() bool {
	return p.FindEmptySlot() != Empty
}

// programJSON mirrors the f1..f5 object shape the puzzle generator's
// programs serialise as, each an array of nullable instruction objects.
type programJSON struct {
	F1 []*Instruction `json:"f1"`
	F2 []*Instruction `json:"f2"`
	F3 []*Instruction `json:"f3"`
	F4 []*Instruction `json:"f4"`
	F5 []*Instruction `json:"f5"`
}

// MarshalJSON renders the program as {f1..f5: [instruction|null, ...]}.
func (p Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(programJSON{
		F1: p.Functions[0],
		F2: p.Functions[1],
		F3: p.Functions[2],
		F4: p.Functions[3],
		F5: p.Functions[4],
	})
}

// UnmarshalJSON parses the f1..f5 object shape.
func (p *Program) UnmarshalJSON(data []byte) error {
	var pj programJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	p.Functions = [NumFunctions][]*Instruction{pj.F1, pj.F2, pj.F3, pj.F4, pj.F5}
	return nil
}
