package puzzle

import (
	"encoding/json"
	"fmt"
)

// InstructionType tags the 12 kinds of instruction the machine can run.
type InstructionType uint8

const (
	Forward InstructionType = iota
	TurnLeftInst
	TurnRightInst
	CallF1
	CallF2
	CallF3
	CallF4
	CallF5
	PaintRed
	PaintGreen
	PaintBlue
	Noop
)

// IsTurn reports whether the instruction rotates the robot in place.
func (t InstructionType) IsTurn() bool {
	return t == TurnLeftInst || t == TurnRightInst
}

// IsPaint reports whether the instruction paints the current tile.
func (t InstructionType) IsPaint() bool {
	return t == PaintRed || t == PaintGreen || t == PaintBlue
}

// IsFunctionCall reports whether the instruction invokes F1..F5.
func (t InstructionType) IsFunctionCall() bool {
	return t >= CallF1 && t <= CallF5
}

// FunctionIndex maps F1..F5 to 0..4. ok is false for non-call types.
func (t InstructionType) FunctionIndex() (index int, ok bool) {
	if !t.IsFunctionCall() {
		return 0, false
	}
	return int(t - CallF1), true
}

// PaintColor maps a paint instruction to the colour it applies. ok is
// false for non-paint types.
func (t InstructionType) PaintColor() (c Color, ok bool) {
	switch t {
	case PaintRed:
		return Red, true
	case PaintGreen:
		return Green, true
	case PaintBlue:
		return Blue, true
	default:
		return 0, false
	}
}

func (t InstructionType) String() string {
	switch t {
	case Forward:
		return "forward"
	case TurnLeftInst:
		return "left"
	case TurnRightInst:
		return "right"
	case CallF1:
		return "f1"
	case CallF2:
		return "f2"
	case CallF3:
		return "f3"
	case CallF4:
		return "f4"
	case CallF5:
		return "f5"
	case PaintRed:
		return "paint_red"
	case PaintGreen:
		return "paint_green"
	case PaintBlue:
		return "paint_blue"
	case Noop:
		return "noop"
	default:
		return "unknown"
	}
}

// InstructionTypeFromString parses the snake_case JSON representation
// of an instruction type.
func InstructionTypeFromString(s string) (InstructionType, bool) {
	switch s {
	case "forward":
		return Forward, true
	case "left":
		return TurnLeftInst, true
	case "right":
		return TurnRightInst, true
	case "f1":
		return CallF1, true
	case "f2":
		return CallF2, true
	case "f3":
		return CallF3, true
	case "f4":
		return CallF4, true
	case "f5":
		return CallF5, true
	case "paint_red":
		return PaintRed, true
	case "paint_green":
		return PaintGreen, true
	case "paint_blue":
		return PaintBlue, true
	case "noop":
		return Noop, true
	default:
		return 0, false
	}
}

// MarshalJSON renders the snake_case string form.
func (t InstructionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses the snake_case string form.
func (t *InstructionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := InstructionTypeFromString(s)
	if !ok {
		return fmt.Errorf("puzzle: unknown instruction type %q", s)
	}
	*t = parsed
	return nil
}

// Instruction pairs an instruction type with an optional colour
// condition. A nil Condition always executes.
type Instruction struct {
	Type      InstructionType `json:"type"`
	Condition *Color          `json:"condition"`
}

// NewInstruction builds an unconditional instruction.
func NewInstruction(t InstructionType) Instruction {
	return Instruction{Type: t}
}

// NewConditional builds an instruction guarded by a colour condition.
func NewConditional(t InstructionType, c Color) Instruction {
	cc := c
	return Instruction{Type: t, Condition: &cc}
}

// ShouldExecute reports whether this instruction fires given the robot's
// current tile colour. An absent condition always fires; a present one
// must match the tile colour, and a colourless tile never satisfies a
// condition.
func (i Instruction) ShouldExecute(tileColor *Color) bool {
	if i.Condition == nil {
		return true
	}
	if tileColor == nil {
		return false
	}
	return *i.Condition == *tileColor
}

// SameCondition reports whether two instructions share the same
// condition (including both being unconditional).
func SameCondition(a, b Instruction) bool {
	if a.Condition == nil && b.Condition == nil {
		return true
	}
	if a.Condition == nil || b.Condition == nil {
		return false
	}
	return *a.Condition == *b.Condition
}
