// Package puzzle holds the value types shared by the executor, pruner,
// and solver: colours, directions, instructions, programs, and the
// puzzle configuration they all operate on.
package puzzle

import (
	"encoding/json"
	"fmt"
)

// Color is a tile (or condition) colour. The zero value is Red; an
// absent colour is represented by a nil *Color, not by a Color value.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

// Mask returns the 3-bit bitmask used internally for fast condition
// testing (Red=0b001, Green=0b010, Blue=0b100).
func (c Color) Mask() uint8 {
	switch c {
	case Red:
		return 0b001
	case Green:
		return 0b010
	case Blue:
		return 0b100
	default:
		return 0
	}
}

// String renders the lowercase name used at the JSON boundary.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// ColorFromString parses the lowercase JSON representation of a colour.
func ColorFromString(s string) (Color, bool) {
	switch s {
	case "red":
		return Red, true
	case "green":
		return Green, true
	case "blue":
		return Blue, true
	default:
		return 0, false
	}
}

// MarshalJSON renders the lowercase string form used by the puzzle
// generator this verifier's input comes from.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses the lowercase string form.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ColorFromString(s)
	if !ok {
		return fmt.Errorf("puzzle: unknown color %q", s)
	}
	*c = parsed
	return nil
}
