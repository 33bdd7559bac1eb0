package solver

import (
	"fmt"
	"strings"
)

func fmtReason(label string, got, min int) string {
	return fmt.Sprintf("%s %d < %d", label, got, min)
}

func fmtStepRatioReason(got, min float32) string {
	return fmt.Sprintf("step_ratio %.1f < %.1f", got, min)
}

func joinReasons(reasons []string) string {
	return strings.Join(reasons, ", ")
}
