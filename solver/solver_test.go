package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureliusnoble/robozzle/executor"
	"github.com/aureliusnoble/robozzle/puzzle"
)

func trivialPuzzle() *puzzle.Config {
	red := puzzle.Red
	return &puzzle.Config{
		ID:    "trivial",
		Title: "Trivial",
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

func TestFindTrivialSolution(t *testing.T) {
	cfg := Config{
		Timeout:         5 * time.Second,
		MaxSteps:        100,
		MaxInstructions: 10,
		MinConstraints: puzzle.MinConstraints{
			Instructions:   4,
			Steps:          16,
			RecursionDepth: 3,
			Conditionals:   2,
			StepRatio:      3.0,
		},
	}

	result := FindTrivialSolution(trivialPuzzle(), cfg)

	require.False(t, result.Valid)
	require.NotNil(t, result.TrivialSolution)
	assert.NotEmpty(t, result.Reason)
	assert.NotEmpty(t, result.RunID)
}

func TestIsBelowMinimums(t *testing.T) {
	metrics := executor.Metrics{
		Steps:                10,
		Instructions:         3,
		MaxStackDepth:        2,
		ConditionalsExecuted: 1,
	}
	min := puzzle.MinConstraints{
		Instructions:   4,
		Steps:          16,
		RecursionDepth: 3,
		Conditionals:   2,
		StepRatio:      3.0,
	}

	assert.True(t, isBelowMinimums(metrics, min))
}

func TestIsBelowMinimumsPassesGenerousMetrics(t *testing.T) {
	metrics := executor.Metrics{
		Steps:                50,
		Instructions:         10,
		MaxStackDepth:        5,
		ConditionalsExecuted: 4,
	}
	min := puzzle.DefaultMinConstraints()

	assert.False(t, isBelowMinimums(metrics, min))
}

func TestFindAnySolution(t *testing.T) {
	program, metrics, found := FindAnySolution(trivialPuzzle(), 5*time.Second, 100)

	require.True(t, found)
	assert.True(t, metrics.StarsCollected > 0)
	assert.NotEqual(t, puzzle.Program{}, program)
}

func TestFindAnySolutionUnsolvableReturnsFalse(t *testing.T) {
	cfg := trivialPuzzle()
	cfg.RobotStart.Direction = puzzle.Left // walks straight off the grid

	_, _, found := FindAnySolution(cfg, 2*time.Second, 20)

	assert.False(t, found)
}
