// Command puzzleverifier is a fast bounded solver that checks a Robozzle
// puzzle for trivial alternative solutions before it ships.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("puzzleverifier: command failed")
		os.Exit(exitParseError)
	}
}
