package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aureliusnoble/robozzle/internal/verifyio"
	"github.com/aureliusnoble/robozzle/puzzle"
	"github.com/aureliusnoble/robozzle/solver"
)

func newVerifyCmd() *cobra.Command {
	var (
		stdin           bool
		timeoutSeconds  uint64
		maxSteps        int
		maxInstructions int
		minInstructions int
		minSteps        int
		minRecursion    int
		minConditionals int
		minStepRatio    float32
	)

	cmd := &cobra.Command{
		Use:   "verify [FILE]",
		Short: "Verify a puzzle has no trivial alternative solutions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}

			cfg, err := loadPuzzle(file, stdin)
			if err != nil {
				logrus.WithError(err).Error("failed to load puzzle")
				os.Exit(exitParseError)
			}

			searchCfg := solver.Config{
				Timeout:         time.Duration(timeoutSeconds) * time.Second,
				MaxSteps:        maxSteps,
				MaxInstructions: maxInstructions,
				MinConstraints: puzzle.MinConstraints{
					Instructions:   minInstructions,
					Steps:          minSteps,
					RecursionDepth: minRecursion,
					Conditionals:   minConditionals,
					StepRatio:      minStepRatio,
				},
			}

			logrus.WithFields(logrus.Fields{
				"puzzle_id": cfg.ID,
				"timeout":   searchCfg.Timeout,
			}).Info("starting verification search")

			result := solver.FindTrivialSolution(cfg, searchCfg)

			logrus.WithFields(logrus.Fields{
				"run_id":          result.RunID,
				"valid":           result.Valid,
				"programs_tested": result.ProgramsTested,
				"elapsed":         result.TimeElapsed,
			}).Info("verification search finished")

			if err := verifyio.EncodeResult(os.Stdout, result); err != nil {
				return err
			}

			if !result.Valid {
				os.Exit(exitTrivial)
			}
			os.Exit(exitValid)
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdin, "stdin", false, "read puzzle JSON from stdin instead of a file")
	cmd.Flags().Uint64Var(&timeoutSeconds, "timeout", 15, "maximum search time in seconds")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 200, "maximum execution steps per program")
	cmd.Flags().IntVar(&maxInstructions, "max-instructions", 16, "maximum instructions in a candidate solution")
	cmd.Flags().IntVar(&minInstructions, "min-instructions", 4, "minimum instructions for a non-trivial solution")
	cmd.Flags().IntVar(&minSteps, "min-steps", 16, "minimum steps for a non-trivial solution")
	cmd.Flags().IntVar(&minRecursion, "min-recursion", 3, "minimum stack depth for a non-trivial solution")
	cmd.Flags().IntVar(&minConditionals, "min-conditionals", 2, "minimum conditionals executed for a non-trivial solution")
	cmd.Flags().Float32Var(&minStepRatio, "min-step-ratio", 3.0, "minimum steps:instruction ratio for a non-trivial solution")

	return cmd
}
