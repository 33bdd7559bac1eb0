package main

import (
	"github.com/spf13/cobra"
)

// Exit codes: 0 when the puzzle passes, 1 when a trivial solution was
// found, and a distinct code for CLI usage or parse/IO errors.
const (
	exitValid      = 0
	exitTrivial    = 1
	exitParseError = 2
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "puzzleverifier",
		Short:         "Bounded solver for Robozzle puzzle verification",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newFindCmd())

	return cmd
}
