// Package executor runs a Program against a Config under a bounded step
// budget and reports the terminal status plus execution metrics.
//
// Function calls are implemented by inlining: each call pushes its
// callee's slots onto a single LIFO stack of (function, slot) frames,
// in reverse slot order so slot 0 ends up on top. There is no explicit
// return; when the stack drains right after a charged instruction, F1 is
// re-pushed, giving the program an implicit outer loop. If the stack
// drains on an empty slot or a skipped conditional, F1 is not re-pushed
// and execution ends with Timeout. Execution halts only via one of the
// five terminal statuses.
package executor

import (
	"github.com/aureliusnoble/robozzle/puzzle"
)

// maxStackDepth is the hard cap on the interpreter's call stack. A
// program that grows the stack past this depth is considered runaway
// recursion rather than a long-running loop.
const maxStackDepth = 256

// cycleSamplePeriod is how often (in charged steps) the interpreter
// takes a state-hash sample for cycle detection. Sampling less than
// every step keeps execution O(maxSteps) instead of O(maxSteps*gridSize).
const cycleSamplePeriod = 16

// defaultVerifySteps is the step budget VerifySolution uses.
const defaultVerifySteps = 500

// Status is the terminal label an execution halts with.
type Status uint8

const (
	Solved Status = iota
	Fell
	Timeout
	Cycle
	StackOverflow
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Fell:
		return "fell"
	case Timeout:
		return "timeout"
	case Cycle:
		return "cycle"
	case StackOverflow:
		return "stack_overflow"
	default:
		return "unknown"
	}
}

// Metrics counts everything a caller needs to judge whether a solving
// program was trivial.
type Metrics struct {
	Steps               int
	Instructions        int
	MaxStackDepth       int
	ConditionalsExecuted int
	FunctionsCalled     int
	TilesVisited        int
	StarsCollected      int
	TotalStars          int
	PaintsExecuted      int
}

// StepRatio is steps per instruction, or 0 when the program is empty.
func (m Metrics) StepRatio() float32 {
	if m.Instructions == 0 {
		return 0
	}
	return float32(m.Steps) / float32(m.Instructions)
}

// Result is everything execute() returns.
type Result struct {
	Status  Status
	Metrics Metrics
	Solved  bool
}

// frame is one entry on the interpreter's call stack.
type frame struct {
	funcIndex, instIndex uint8
}

// gridState is the mutable per-execution view of the puzzle: tiles
// (cloned so paint/star mutation never touches the puzzle), the robot's
// pose, and remaining star count.
type gridState struct {
	tiles         puzzle.Grid
	position      puzzle.Position
	direction     puzzle.Direction
	starsRemaining int
}

func newGridState(cfg *puzzle.Config) *gridState {
	return &gridState{
		tiles:          cfg.Grid.Clone(),
		position:       cfg.RobotStart.Position,
		direction:      cfg.RobotStart.Direction,
		starsRemaining: cfg.CountStars(),
	}
}

func (s *gridState) tile(x, y int) *puzzle.Tile {
	return s.tiles.Get(x, y)
}

func (s *gridState) currentTile() *puzzle.Tile {
	return s.tile(s.position.X, s.position.Y)
}

func (s *gridState) currentColor() *puzzle.Color {
	t := s.currentTile()
	if t == nil {
		return nil
	}
	return t.Color
}

// Execute runs program against cfg for up to maxSteps charged steps. It
// never panics and always returns within bounded work: O(maxSteps) time,
// O(maxSteps/cycleSamplePeriod) additional memory for cycle detection.
// cfg and program are never mutated.
func Execute(cfg *puzzle.Config, program puzzle.Program, maxSteps int) Result {
	state := newGridState(cfg)
	totalStars := state.starsRemaining

	metrics := Metrics{
		Instructions: program.CountInstructions(),
		TotalStars:   totalStars,
	}

	visited := map[puzzle.Position]struct{}{state.position: {}}
	metrics.TilesVisited = 1

	stack := make([]frame, 0, 64)
	stack = pushFunction(stack, program, 0)
	if len(stack) == 0 {
		// F1 is empty: the outer loop never starts.
		return Result{Status: Timeout, Metrics: metrics}
	}

	seen := make(map[uint64]struct{})

	for len(stack) > 0 {
		if metrics.Steps >= maxSteps {
			return Result{Status: Timeout, Metrics: metrics}
		}
		if len(stack) > maxStackDepth {
			return Result{Status: StackOverflow, Metrics: metrics}
		}
		if len(stack) > metrics.MaxStackDepth {
			metrics.MaxStackDepth = len(stack)
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		inst := program.Get(int(top.funcIndex), int(top.instIndex))
		if inst == nil {
			continue
		}

		currentColor := state.currentColor()
		if !inst.ShouldExecute(currentColor) {
			continue
		}
		if inst.Condition != nil {
			metrics.ConditionalsExecuted++
		}

		if metrics.Steps%cycleSamplePeriod == 0 {
			h := stateHash(state, stack)
			if _, ok := seen[h]; ok {
				return Result{Status: Cycle, Metrics: metrics}
			}
			seen[h] = struct{}{}
		}

		metrics.Steps++

		switch inst.Type {
		case puzzle.Forward:
			dx, dy := state.direction.Delta()
			newX, newY := state.position.X+dx, state.position.Y+dy
			if state.tile(newX, newY) == nil {
				return Result{Status: Fell, Metrics: metrics}
			}
			state.position = puzzle.Position{X: newX, Y: newY}
			if _, ok := visited[state.position]; !ok {
				visited[state.position] = struct{}{}
				metrics.TilesVisited++
			}
			if t := state.currentTile(); t != nil && t.HasStar {
				t.HasStar = false
				state.starsRemaining--
				metrics.StarsCollected++
				if state.starsRemaining == 0 {
					return Result{Status: Solved, Metrics: metrics, Solved: true}
				}
			}

		case puzzle.TurnLeftInst:
			state.direction = state.direction.TurnLeft()

		case puzzle.TurnRightInst:
			state.direction = state.direction.TurnRight()

		case puzzle.CallF1, puzzle.CallF2, puzzle.CallF3, puzzle.CallF4, puzzle.CallF5:
			target, _ := inst.Type.FunctionIndex()
			if len(program.Function(target)) > 0 {
				metrics.FunctionsCalled++
				stack = pushFunction(stack, program, target)
			}

		case puzzle.PaintRed, puzzle.PaintGreen, puzzle.PaintBlue:
			if t := state.currentTile(); t != nil {
				col, _ := inst.Type.PaintColor()
				t.Color = &col
				metrics.PaintsExecuted++
			}

		case puzzle.Noop:
			// no-op

		}

		if len(stack) == 0 {
			stack = pushFunction(stack, program, 0)
		}
	}

	return Result{Status: Timeout, Metrics: metrics}
}

// VerifySolution is a convenience wrapper that executes program with the
// default step budget of 500 and reports only whether it solved the
// puzzle.
func VerifySolution(cfg *puzzle.Config, program puzzle.Program) bool {
	return Execute(cfg, program, defaultVerifySteps).Solved
}

// pushFunction pushes every slot of function fi onto stack in reverse
// order, so slot 0 ends up on top. If the function is empty, stack is
// returned unchanged.
func pushFunction(stack []frame, program puzzle.Program, fi int) []frame {
	body := program.Function(fi)
	for i := len(body) - 1; i >= 0; i-- {
		stack = append(stack, frame{funcIndex: uint8(fi), instIndex: uint8(i)})
	}
	return stack
}
