package verifyio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureliusnoble/robozzle/executor"
	"github.com/aureliusnoble/robozzle/puzzle"
	"github.com/aureliusnoble/robozzle/solver"
)

const samplePuzzleJSON = `{
  "id": "p1",
  "title": "Sample",
  "grid": [[{"color": "red", "hasStar": false}, {"color": "red", "hasStar": true}]],
  "robotStart": {"position": {"x": 0, "y": 0}, "direction": "right"},
  "functionLengths": {"f1": 5, "f2": 0, "f3": 0, "f4": 0, "f5": 0},
  "allowedInstructions": ["forward"]
}`

func TestDecodePuzzle(t *testing.T) {
	cfg, err := DecodePuzzle(strings.NewReader(samplePuzzleJSON))
	require.NoError(t, err)

	assert.Equal(t, "p1", cfg.ID)
	assert.Equal(t, puzzle.Right, cfg.RobotStart.Direction)
	assert.Equal(t, 5, cfg.FunctionLengths.F1)
	assert.Equal(t, 1, cfg.CountStars())
	require.Len(t, cfg.AllowedInstructions, 1)
	assert.Equal(t, puzzle.Forward, cfg.AllowedInstructions[0])
}

func TestDecodePuzzleRejectsMalformedJSON(t *testing.T) {
	_, err := DecodePuzzle(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestFormatResultValid(t *testing.T) {
	out := FormatResult(solver.Result{
		Valid:           true,
		SearchExhausted: true,
		ProgramsTested:  42,
		TimeElapsed:     250 * time.Millisecond,
	})

	assert.True(t, out.Valid)
	assert.Empty(t, out.Reason)
	assert.Nil(t, out.AlternativeSolution)
	assert.Equal(t, int64(250), out.TimeElapsedMs)
}

func TestFormatResultTrivial(t *testing.T) {
	fwd := puzzle.NewInstruction(puzzle.Forward)
	program := puzzle.NewProgram(puzzle.FunctionLengths{F1: 1})
	program.Set(0, 0, &fwd)

	metrics := executor.Metrics{Steps: 1, Instructions: 1, MaxStackDepth: 1}

	out := FormatResult(solver.Result{
		Valid:           false,
		ProgramsTested:  3,
		TrivialSolution: &program,
		TrivialMetrics:  &metrics,
		Reason:          "steps 1 < 16",
	})

	assert.False(t, out.Valid)
	assert.Equal(t, "steps 1 < 16", out.Reason)
	require.NotNil(t, out.AlternativeSolution)
	require.NotNil(t, out.AlternativeMetrics)
	assert.Equal(t, 1, out.AlternativeMetrics.Steps)
}

func TestEncodeResultProducesJSON(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeResult(&buf, solver.Result{Valid: true, SearchExhausted: true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"valid": true`)
}
