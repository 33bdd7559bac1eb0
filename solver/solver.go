// Package solver runs a bounded depth-first backtracking search over the
// space of programs a puzzle's function lengths and allowed instructions
// permit, looking for a solution that is too simple to count.
package solver

import (
	"time"

	"github.com/google/uuid"

	"github.com/aureliusnoble/robozzle/executor"
	"github.com/aureliusnoble/robozzle/pruner"
	"github.com/aureliusnoble/robozzle/puzzle"
)

// Config bounds a search.
type Config struct {
	Timeout         time.Duration
	MaxSteps        int
	MaxInstructions int
	MinConstraints  puzzle.MinConstraints
}

// DefaultConfig mirrors the defaults a verify run uses: a generous
// timeout, a modest step budget, and the default minimums.
func DefaultConfig() Config {
	return Config{
		Timeout:         15 * time.Second,
		MaxSteps:        200,
		MaxInstructions: 16,
		MinConstraints:  puzzle.DefaultMinConstraints(),
	}
}

// Result reports what the search found.
type Result struct {
	RunID            string
	Valid            bool
	SearchExhausted  bool
	ProgramsTested   int
	TimeElapsed      time.Duration
	TrivialSolution  *puzzle.Program
	TrivialMetrics   *executor.Metrics
	Reason           string
}

// searchFrame is one entry on the DFS worklist: a partially (or fully)
// filled program plus the next empty slot to fill, if any.
type searchFrame struct {
	program  puzzle.Program
	nextSlot puzzle.Slot
}

func newSearchFrame(cfg *puzzle.Config) searchFrame {
	program := puzzle.NewProgram(cfg.FunctionLengths)
	return searchFrame{program: program, nextSlot: program.FindEmptySlot()}
}

func frameWithProgram(program puzzle.Program) searchFrame {
	return searchFrame{program: program, nextSlot: program.FindEmptySlot()}
}

// isBelowMinimums reports whether metrics fall short of any one of min's
// five thresholds, marking a solved program as trivial.
func isBelowMinimums(m executor.Metrics, min puzzle.MinConstraints) bool {
	return m.Instructions < min.Instructions ||
		m.Steps < min.Steps ||
		m.MaxStackDepth < min.RecursionDepth ||
		m.ConditionalsExecuted < min.Conditionals ||
		m.StepRatio() < min.StepRatio
}

// FindTrivialSolution searches for a solved program below cfg's minimum
// constraints, exiting the instant one is found. A timeout or exhausted
// search with nothing found is a pass (Valid == true): the puzzle has no
// trivial solution within the bounds searched.
func FindTrivialSolution(puzzleCfg *puzzle.Config, searchCfg Config) Result {
	start := time.Now()
	deadline := start.Add(searchCfg.Timeout)

	programsTested := 0
	stack := []searchFrame{newSearchFrame(puzzleCfg)}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if time.Now().After(deadline) {
			return Result{
				RunID:           uuid.NewString(),
				Valid:           true,
				SearchExhausted: false,
				ProgramsTested:  programsTested,
				TimeElapsed:     time.Since(start),
			}
		}

		if frame.nextSlot == puzzle.Empty {
			programsTested++

			if pruner.ShouldRejectProgram(frame.program, puzzleCfg) {
				continue
			}

			result := executor.Execute(puzzleCfg, frame.program, searchCfg.MaxSteps)
			if result.Solved && isBelowMinimums(result.Metrics, searchCfg.MinConstraints) {
				program := frame.program
				metrics := result.Metrics
				return Result{
					RunID:           uuid.NewString(),
					Valid:           false,
					SearchExhausted: false,
					ProgramsTested:  programsTested,
					TimeElapsed:     time.Since(start),
					TrivialSolution: &program,
					TrivialMetrics:  &metrics,
					Reason:          formatTrivialReason(result.Metrics, searchCfg.MinConstraints),
				}
			}
			continue
		}

		if frame.program.CountInstructions() >= searchCfg.MaxInstructions {
			continue
		}

		funcIdx, instIdx := frame.nextSlot.Func, frame.nextSlot.Inst

		if skip := frame.program.NextEmptySlotAfter(funcIdx, instIdx); skip != puzzle.Empty {
			stack = append(stack, searchFrame{program: frame.program, nextSlot: skip})
		}

		for _, inst := range pruner.ValidInstructionsForSlot(frame.program, funcIdx, instIdx, puzzleCfg) {
			inst := inst
			candidate := frame.program.WithInstruction(funcIdx, instIdx, &inst)
			if pruner.ShouldRejectProgram(candidate, puzzleCfg) {
				continue
			}
			stack = append(stack, frameWithProgram(candidate))
		}
	}

	return Result{
		RunID:           uuid.NewString(),
		Valid:           true,
		SearchExhausted: true,
		ProgramsTested:  programsTested,
		TimeElapsed:     time.Since(start),
	}
}

// FindAnySolution searches for the first solved program regardless of
// triviality. It is not part of verification proper; cmd/puzzleverifier
// exposes it via the `find` subcommand as a convenience for puzzle
// authors who want to confirm a puzzle is solvable before tightening
// its non-trivial constraints.
func FindAnySolution(puzzleCfg *puzzle.Config, timeout time.Duration, maxSteps int) (puzzle.Program, executor.Metrics, bool) {
	deadline := time.Now().Add(timeout)
	stack := []searchFrame{newSearchFrame(puzzleCfg)}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

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
			stack = append(stack, searchFrame{program: frame.program, nextSlot: skip})
		}

		for _, inst := range pruner.ValidInstructionsForSlot(frame.program, funcIdx, instIdx, puzzleCfg) {
			inst := inst
			candidate := frame.program.WithInstruction(funcIdx, instIdx, &inst)
			if pruner.ShouldRejectProgram(candidate, puzzleCfg) {
				continue
			}
			stack = append(stack, frameWithProgram(candidate))
		}
	}

	return puzzle.Program{}, executor.Metrics{}, false
}

// formatTrivialReason renders the human-readable explanation attached to
// a rejected puzzle: every threshold the trivial solution fell short of.
func formatTrivialReason(m executor.Metrics, min puzzle.MinConstraints) string {
	var reasons []string

	if m.Instructions < min.Instructions {
		reasons = append(reasons, fmtReason("instructions", m.Instructions, min.Instructions))
	}
	if m.Steps < min.Steps {
		reasons = append(reasons, fmtReason("steps", m.Steps, min.Steps))
	}
	if m.MaxStackDepth < min.RecursionDepth {
		reasons = append(reasons, fmtReason("recursion_depth", m.MaxStackDepth, min.RecursionDepth))
	}
	if m.ConditionalsExecuted < min.Conditionals {
		reasons = append(reasons, fmtReason("conditionals", m.ConditionalsExecuted, min.Conditionals))
	}
	if m.StepRatio() < min.StepRatio {
		reasons = append(reasons, fmtStepRatioReason(m.StepRatio(), min.StepRatio))
	}

	if len(reasons) == 0 {
		return "unknown"
	}
	return joinReasons(reasons)
}
