package main

import (
	"fmt"
	"os"

	"github.com/aureliusnoble/robozzle/internal/verifyio"
	"github.com/aureliusnoble/robozzle/puzzle"
)

// loadPuzzle reads a puzzle definition from stdin when stdin is true
// (file is then ignored), otherwise from file. Giving neither is an error.
func loadPuzzle(file string, stdin bool) (*puzzle.Config, error) {
	switch {
	case stdin:
		return verifyio.DecodePuzzle(os.Stdin)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open puzzle file: %w", err)
		}
		defer f.Close()
		return verifyio.DecodePuzzle(f)
	default:
		return nil, fmt.Errorf("must provide either a file path or --stdin")
	}
}
