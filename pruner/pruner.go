// Package pruner detects instruction sequences and whole programs that
// can never contribute a useful solution, so the solver can skip them
// without ever handing them to the executor.
package pruner

import (
	"github.com/aureliusnoble/robozzle/puzzle"
)

// IsBannedPair reports whether placing b immediately after a in the same
// function can never be useful, regardless of what comes before or after.
func IsBannedPair(a, b puzzle.Instruction) bool {
	if a.Type == puzzle.Noop || b.Type == puzzle.Noop {
		return false
	}

	sameCond := puzzle.SameCondition(a, b)

	// left-right or right-left with the same condition cancels out.
	if sameCond && a.Type.IsTurn() && b.Type.IsTurn() {
		if (a.Type == puzzle.TurnLeftInst && b.Type == puzzle.TurnRightInst) ||
			(a.Type == puzzle.TurnRightInst && b.Type == puzzle.TurnLeftInst) {
			return true
		}
	}

	// Two paints in a row under the same condition: the second always
	// overwrites the first's effect before anything can observe it.
	if sameCond && a.Type.IsPaint() && b.Type.IsPaint() {
		return true
	}

	// Unconditional paint to color X followed by a paint conditional on X:
	// the condition is now guaranteed true, so it is really unconditional.
	if a.Condition == nil && a.Type.IsPaint() {
		if paintColor, ok := a.Type.PaintColor(); ok {
			if b.Condition != nil && *b.Condition == paintColor && b.Type.IsPaint() {
				return true
			}
			// Same paint instruction again: a no-op repaint.
			if b.Condition != nil && *b.Condition == paintColor && b.Type == a.Type {
				return true
			}
		}
	}

	return false
}

// IsBannedTrio reports whether the three-instruction run a, b, c can
// never be useful. It subsumes IsBannedPair over the overlapping pairs.
func IsBannedTrio(a, b, c puzzle.Instruction) bool {
	if IsBannedPair(a, b) || IsBannedPair(b, c) {
		return true
	}

	if puzzle.SameCondition(a, b) && puzzle.SameCondition(b, c) &&
		a.Type.IsTurn() && b.Type.IsTurn() && c.Type.IsTurn() &&
		a.Type == b.Type && b.Type == c.Type {
		// Three identical turns collapse to a single turn the other way.
		return true
	}

	// Unconditional paint, then an order-invariant instruction (turn or
	// noop), then a conditional that can never match the paint just laid.
	if a.Type.IsPaint() && a.Condition == nil {
		if paintColor, ok := a.Type.PaintColor(); ok {
			if b.Type.IsTurn() || b.Type == puzzle.Noop {
				if c.Condition != nil && *c.Condition != paintColor {
					return true
				}
			}
		}
	}

	return false
}

// ShouldRejectProgram applies the structural rules to a whole program:
// banned pairs/trios within each function, unreachable non-empty
// functions, conditionals on colors absent from the puzzle, and calls
// to empty functions. It is safe to call on a partially filled program;
// empty slots are simply skipped.
func ShouldRejectProgram(program puzzle.Program, cfg *puzzle.Config) bool {
	for fi := 0; fi < puzzle.NumFunctions; fi++ {
		insts := nonEmpty(program.Function(fi))

		for i := 0; i+1 < len(insts); i++ {
			if IsBannedPair(*insts[i], *insts[i+1]) {
				return true
			}
		}
		for i := 0; i+2 < len(insts); i++ {
			if IsBannedTrio(*insts[i], *insts[i+1], *insts[i+2]) {
				return true
			}
		}
	}

	reachable := [puzzle.NumFunctions]bool{0: true} // F1 is always reachable
	for changed := true; changed; {
		changed = false
		for fi := 0; fi < puzzle.NumFunctions; fi++ {
			if !reachable[fi] {
				continue
			}
			for _, inst := range nonEmpty(program.Function(fi)) {
				if target, ok := inst.Type.FunctionIndex(); ok && !reachable[target] {
					reachable[target] = true
					changed = true
				}
			}
		}
	}
	for fi := 0; fi < puzzle.NumFunctions; fi++ {
		if len(nonEmpty(program.Function(fi))) > 0 && !reachable[fi] {
			return true
		}
	}

	for fi := 0; fi < puzzle.NumFunctions; fi++ {
		for _, inst := range nonEmpty(program.Function(fi)) {
			if inst.Condition != nil && !cfg.HasColor(*inst.Condition) {
				return true
			}
		}
	}

	for fi := 0; fi < puzzle.NumFunctions; fi++ {
		for _, inst := range nonEmpty(program.Function(fi)) {
			if target, ok := inst.Type.FunctionIndex(); ok {
				if len(nonEmpty(program.Function(target))) == 0 {
					return true
				}
			}
		}
	}

	return false
}

// ValidInstructionsForSlot enumerates every instruction (unconditional
// and conditional, across every allowed type and available color) that
// is not immediately banned by whatever already sits in the previous
// slot of the same function.
func ValidInstructionsForSlot(program puzzle.Program, funcIndex, instIndex int, cfg *puzzle.Config) []puzzle.Instruction {
	var valid []puzzle.Instruction

	var prev *puzzle.Instruction
	if instIndex > 0 {
		prev = program.Get(funcIndex, instIndex-1)
	}

	for _, instType := range cfg.AllowedInstructions {
		unconditional := puzzle.NewInstruction(instType)
		if prev == nil || !IsBannedPair(*prev, unconditional) {
			valid = append(valid, unconditional)
		}

		for _, col := range cfg.AvailableColors() {
			if paintColor, ok := instType.PaintColor(); ok && paintColor == col {
				continue
			}
			conditional := puzzle.NewConditional(instType, col)
			if prev == nil || !IsBannedPair(*prev, conditional) {
				valid = append(valid, conditional)
			}
		}
	}

	return valid
}

func nonEmpty(insts []*puzzle.Instruction) []*puzzle.Instruction {
	out := make([]*puzzle.Instruction, 0, len(insts))
	for _, inst := range insts {
		if inst != nil {
			out = append(out, inst)
		}
	}
	return out
}
