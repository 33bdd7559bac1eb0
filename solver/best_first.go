package solver

import (
	"time"

	"github.com/aureliusnoble/robozzle/executor"
	"github.com/aureliusnoble/robozzle/pruner"
	"github.com/aureliusnoble/robozzle/puzzle"
)

// remainingSlots counts the empty slots left in a program, used as the
// best-first heuristic: programs closer to complete are explored first.
func remainingSlots(program puzzle.Program) int {
	count := 0
	for i := 0; i < puzzle.NumFunctions; i++ {
		for _, inst := range program.Function(i) {
			if inst == nil {
				count++
			}
		}
	}
	return count
}

// FindAnySolutionBestFirst is an alternative to FindAnySolution that
// explores nearly-complete programs before sparser ones, using a
// heap-ordered worklist instead of a LIFO stack. It trades the plain
// DFS's simplicity for often finding a solved program with fewer
// executions on puzzles with large per-function slot budgets, at the
// cost of holding more frames in memory at once.
func FindAnySolutionBestFirst(puzzleCfg *puzzle.Config, timeout time.Duration, maxSteps int) (puzzle.Program, executor.Metrics, bool) {
	deadline := time.Now().Add(timeout)

	queue := newPriorityQueue()
	start := newSearchFrame(puzzleCfg)
	queue.push(start, remainingSlots(start.program))

	for {
		frame, ok := queue.pop()
		if !ok {
			return puzzle.Program{}, executor.Metrics{}, false
		}

		if time.Now().After(deadline) {
			return puzzle.Program{}, executor.Metrics{}, false
		}

		if frame.nextSlot == puzzle.Empty {
			if pruner.ShouldRejectProgram(frame.program, puzzleCfg) {
				continue
			}
			result := executor.Execute(puzzleCfg, frame.program, maxSteps)
			if result.Solved {
				return frame.program, result.Metrics, true
			}
			continue
		}

		funcIdx, instIdx := frame.nextSlot.Func, frame.nextSlot.Inst

		if skip := frame.program.NextEmptySlotAfter(funcIdx, instIdx); skip != puzzle.Empty {
			skipped := searchFrame{program: frame.program, nextSlot: skip}
			queue.push(skipped, remainingSlots(skipped.program))
		}

		for _, inst := range pruner.ValidInstructionsForSlot(frame.program, funcIdx, instIdx, puzzleCfg) {
			inst := inst
			candidate := frame.program.WithInstruction(funcIdx, instIdx, &inst)
			if pruner.ShouldRejectProgram(candidate, puzzleCfg) {
				continue
			}
			next := frameWithProgram(candidate)
			queue.push(next, remainingSlots(next.program))
		}
	}
}
