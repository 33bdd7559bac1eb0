// Package verifyio is the JSON boundary adapter between the verifier
// core (puzzle, executor, pruner, solver — all I/O-free) and the
// outside world: decoding a puzzle definition and encoding a solver
// result into the shape the collaborating tooling expects.
package verifyio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aureliusnoble/robozzle/executor"
	"github.com/aureliusnoble/robozzle/puzzle"
	"github.com/aureliusnoble/robozzle/solver"
)

// DecodePuzzle parses a puzzle definition from r. The puzzle package's
// own (Un)MarshalJSON methods on Color, Direction, InstructionType, and
// Program already match the field conventions; this is a thin wrapper
// that turns a decode failure into an error with file-boundary context.
func DecodePuzzle(r io.Reader) (*puzzle.Config, error) {
	var cfg puzzle.Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("verifyio: decode puzzle: %w", err)
	}
	return &cfg, nil
}

// MetricsOutput is the JSON shape of a trivial solution's metrics.
type MetricsOutput struct {
	Steps          int     `json:"steps"`
	Instructions   int     `json:"instructions"`
	RecursionDepth int     `json:"recursionDepth"`
	Conditionals   int     `json:"conditionals"`
	StepRatio      float32 `json:"stepRatio"`
}

// VerificationOutput is the JSON shape of a verify run's verdict.
type VerificationOutput struct {
	Valid                bool            `json:"valid"`
	Reason               string          `json:"reason,omitempty"`
	SearchExhausted      bool            `json:"searchExhausted"`
	ProgramsTested       int             `json:"programsTested"`
	TimeElapsedMs        int64           `json:"timeElapsedMs"`
	AlternativeSolution  *puzzle.Program `json:"alternativeSolution,omitempty"`
	AlternativeMetrics   *MetricsOutput  `json:"alternativeMetrics,omitempty"`
}

// FormatResult converts a solver.Result into its JSON-boundary shape.
// When a trivial solution was found but carries no reason string, it
// falls back to "trivial_solution_found" rather than emitting an empty
// field.
func FormatResult(result solver.Result) VerificationOutput {
	out := VerificationOutput{
		Valid:           result.Valid,
		SearchExhausted: result.SearchExhausted,
		ProgramsTested:  result.ProgramsTested,
		TimeElapsedMs:   result.TimeElapsed.Milliseconds(),
	}

	if !result.Valid {
		reason := result.Reason
		if reason == "" {
			reason = "trivial_solution_found"
		}
		out.Reason = reason
	}

	if result.TrivialSolution != nil {
		out.AlternativeSolution = result.TrivialSolution
	}
	if result.TrivialMetrics != nil {
		out.AlternativeMetrics = metricsOutput(*result.TrivialMetrics)
	}

	return out
}

func metricsOutput(m executor.Metrics) *MetricsOutput {
	return &MetricsOutput{
		Steps:          m.Steps,
		Instructions:   m.Instructions,
		RecursionDepth: m.MaxStackDepth,
		Conditionals:   m.ConditionalsExecuted,
		StepRatio:      m.StepRatio(),
	}
}

// EncodeResult writes a solver.Result to w as indented JSON.
func EncodeResult(w io.Writer, result solver.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FormatResult(result))
}
