package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aureliusnoble/robozzle/internal/verifyio"
	"github.com/aureliusnoble/robozzle/solver"
)

// findOutput is the JSON shape printed by `find`: whether a solving
// program was found at all, and if so, the program plus its metrics.
// This is a debugging aid, distinct from the verify verdict contract.
type findOutput struct {
	Found   bool                    `json:"found"`
	Program interface{}             `json:"program,omitempty"`
	Metrics *verifyio.MetricsOutput `json:"metrics,omitempty"`
}

func newFindCmd() *cobra.Command {
	var (
		stdin          bool
		timeoutSeconds uint64
		maxSteps       int
		bestFirst      bool
	)

	cmd := &cobra.Command{
		Use:   "find [FILE]",
		Short: "Find any solution to a puzzle, ignoring triviality (debugging aid)",
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

			timeout := time.Duration(timeoutSeconds) * time.Second

			logrus.WithFields(logrus.Fields{
				"puzzle_id":  cfg.ID,
				"best_first": bestFirst,
			}).Info("searching for any solution")

			var (
				program interface{}
				found   bool
				metrics verifyio.MetricsOutput
			)

			if bestFirst {
				p, m, ok := solver.FindAnySolutionBestFirst(cfg, timeout, maxSteps)
				program, found = p, ok
				metrics = verifyio.MetricsOutput{
					Steps: m.Steps, Instructions: m.Instructions,
					RecursionDepth: m.MaxStackDepth, Conditionals: m.ConditionalsExecuted,
					StepRatio: m.StepRatio(),
				}
			} else {
				p, m, ok := solver.FindAnySolution(cfg, timeout, maxSteps)
				program, found = p, ok
				metrics = verifyio.MetricsOutput{
					Steps: m.Steps, Instructions: m.Instructions,
					RecursionDepth: m.MaxStackDepth, Conditionals: m.ConditionalsExecuted,
					StepRatio: m.StepRatio(),
				}
			}

			out := findOutput{Found: found}
			if found {
				out.Program = program
				out.Metrics = &metrics
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return err
			}

			if !found {
				os.Exit(exitTrivial)
			}
			os.Exit(exitValid)
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdin, "stdin", false, "read puzzle JSON from stdin instead of a file")
	cmd.Flags().Uint64Var(&timeoutSeconds, "timeout", 15, "maximum search time in seconds")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 200, "maximum execution steps per program")
	cmd.Flags().BoolVar(&bestFirst, "best-first", false, "use the heap-ordered best-first search instead of plain DFS")

	return cmd
}
