package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureliusnoble/robozzle/puzzle"
)

func simplePuzzle() *puzzle.Config {
	red := puzzle.Red
	return &puzzle.Config{
		ID:    "test",
		Title: "Test",
		Grid: puzzle.Grid{
			{
				{Color: &red, HasStar: false},
				{Color: &red, HasStar: true},
			},
		},
		RobotStart: puzzle.RobotStart{
			Position:  puzzle.Position{X: 0, Y: 0},
			Direction: puzzle.Right,
		},
		FunctionLengths:     puzzle.FunctionLengths{F1: 5},
		AllowedInstructions: []puzzle.InstructionType{puzzle.Forward},
	}
}

func TestSimpleExecution(t *testing.T) {
	cfg := simplePuzzle()
	p := puzzle.NewProgram(cfg.FunctionLengths)
	fwd := puzzle.NewInstruction(puzzle.Forward)
	p.Set(0, 0, &fwd)

	result := Execute(cfg, p, 100)
	require.True(t, result.Solved)
	assert.Equal(t, Solved, result.Status)
	assert.Equal(t, 1, result.Metrics.StarsCollected)
	assert.Equal(t, 1, result.Metrics.Steps)
	assert.Equal(t, 2, result.Metrics.TilesVisited)
}

func TestConditionalExecutionSkipsUnmatched(t *testing.T) {
	cfg := simplePuzzle()
	cfg.AllowedInstructions = []puzzle.InstructionType{puzzle.Forward, puzzle.TurnLeftInst}
	p := puzzle.NewProgram(cfg.FunctionLengths)
	blueLeft := puzzle.NewConditional(puzzle.TurnLeftInst, puzzle.Blue)
	redForward := puzzle.NewConditional(puzzle.Forward, puzzle.Red)
	p.Set(0, 0, &blueLeft)
	p.Set(0, 1, &redForward)

	result := Execute(cfg, p, 100)
	require.True(t, result.Solved)
	assert.Equal(t, 1, result.Metrics.ConditionalsExecuted)
	assert.Equal(t, 1, result.Metrics.Steps)
}

func TestRightForeverCyclesOrTimesOut(t *testing.T) {
	cfg := simplePuzzle()
	cfg.AllowedInstructions = []puzzle.InstructionType{puzzle.TurnRightInst}
	p := puzzle.NewProgram(cfg.FunctionLengths)
	right := puzzle.NewInstruction(puzzle.TurnRightInst)
	p.Set(0, 0, &right)

	result := Execute(cfg, p, 100)
	assert.False(t, result.Solved)
	assert.Contains(t, []Status{Timeout, Cycle}, result.Status)
}

func TestEmptyF1IsImmediateTimeout(t *testing.T) {
	cfg := simplePuzzle()
	p := puzzle.NewProgram(cfg.FunctionLengths)

	result := Execute(cfg, p, 100)
	assert.Equal(t, Timeout, result.Status)
	assert.Equal(t, 0, result.Metrics.Steps)
}

func TestFallOffGrid(t *testing.T) {
	cfg := simplePuzzle()
	cfg.RobotStart.Direction = puzzle.Left
	p := puzzle.NewProgram(cfg.FunctionLengths)
	fwd := puzzle.NewInstruction(puzzle.Forward)
	p.Set(0, 0, &fwd)

	result := Execute(cfg, p, 100)
	assert.Equal(t, Fell, result.Status)
	assert.False(t, result.Solved)
}

func TestExecuteDoesNotMutateInputs(t *testing.T) {
	cfg := simplePuzzle()
	originalStars := cfg.CountStars()
	p := puzzle.NewProgram(cfg.FunctionLengths)
	fwd := puzzle.NewInstruction(puzzle.Forward)
	p.Set(0, 0, &fwd)
	pBefore := p.Clone()

	Execute(cfg, p, 100)

	assert.Equal(t, originalStars, cfg.CountStars())
	assert.Equal(t, pBefore, p)
}

func TestVerifySolution(t *testing.T) {
	cfg := simplePuzzle()
	p := puzzle.NewProgram(cfg.FunctionLengths)
	fwd := puzzle.NewInstruction(puzzle.Forward)
	p.Set(0, 0, &fwd)

	assert.True(t, VerifySolution(cfg, p))
}

func TestDeterminism(t *testing.T) {
	cfg := simplePuzzle()
	p := puzzle.NewProgram(cfg.FunctionLengths)
	fwd := puzzle.NewInstruction(puzzle.Forward)
	p.Set(0, 0, &fwd)

	a := Execute(cfg, p, 100)
	b := Execute(cfg, p, 100)
	assert.Equal(t, a, b)
}

func TestMonotonicBounds(t *testing.T) {
	cfg := simplePuzzle()
	cfg.AllowedInstructions = []puzzle.InstructionType{puzzle.TurnRightInst}
	p := puzzle.NewProgram(cfg.FunctionLengths)
	right := puzzle.NewInstruction(puzzle.TurnRightInst)
	p.Set(0, 0, &right)

	result := Execute(cfg, p, 50)
	assert.LessOrEqual(t, result.Metrics.Steps, 50)
	assert.LessOrEqual(t, result.Metrics.MaxStackDepth, 256)
	assert.LessOrEqual(t, result.Metrics.StarsCollected, result.Metrics.TotalStars)
	assert.GreaterOrEqual(t, result.Metrics.TilesVisited, 1)
}
