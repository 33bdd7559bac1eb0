package puzzle

// Config is the complete, immutable description of one puzzle: its
// grid, the robot's starting pose, per-function slot budgets, the
// instruction set the generator allowed, and an optional reference
// solution (passthrough only — never consulted by the solver).
type Config struct {
	ID                  string           `json:"id"`
	Title               string           `json:"title"`
	Grid                Grid             `json:"grid"`
	RobotStart          RobotStart       `json:"robotStart"`
	FunctionLengths     FunctionLengths  `json:"functionLengths"`
	AllowedInstructions []InstructionType `json:"allowedInstructions"`
	Solution            *Program         `json:"solution,omitempty"`
}

// GetTile is a bounds-checked accessor identical to Grid.Get, kept on
// Config so callers don't need to reach through to the grid field.
func (c *Config) GetTile(x, y int) *Tile {
	return c.Grid.Get(x, y)
}

// CountStars counts every tile on the grid that currently carries a star.
func (c *Config) CountStars() int {
	count := 0
	for _, row := range c.Grid {
		for _, t := range row {
			if t != nil && t.HasStar {
				count++
			}
		}
	}
	return count
}

// AvailableColors returns the set of colours that appear on any tile,
// in a stable Red/Green/Blue order.
func (c *Config) AvailableColors() []Color {
	var mask uint8
	for _, row := range c.Grid {
		for _, t := range row {
			if t != nil && t.Color != nil {
				mask |= t.Color.Mask()
			}
		}
	}
	var out []Color
	for _, col := range [...]Color{Red, Green, Blue} {
		if mask&col.Mask() != 0 {
			out = append(out, col)
		}
	}
	return out
}

// HasColor reports whether a colour appears anywhere on the grid.
func (c *Config) HasColor(col Color) bool {
	for _, row := range c.Grid {
		for _, t := range row {
			if t != nil && t.Color != nil && *t.Color == col {
				return true
			}
		}
	}
	return false
}

// AllowsInstruction reports whether the puzzle's allowed-instruction
// set contains a given instruction type.
func (c *Config) AllowsInstruction(t InstructionType) bool {
	for _, allowed := range c.AllowedInstructions {
		if allowed == t {
			return true
		}
	}
	return false
}

// AllowsPaint reports whether painting a given colour is one of the
// puzzle's allowed instructions.
func (c *Config) AllowsPaint(col Color) bool {
	switch col {
	case Red:
		return c.AllowsInstruction(PaintRed)
	case Green:
		return c.AllowsInstruction(PaintGreen)
	case Blue:
		return c.AllowsInstruction(PaintBlue)
	default:
		return false
	}
}
