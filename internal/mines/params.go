package mines

import (
	"fmt"
	"math"
	"strings"
)

// Params describe the shape of a board and the number of mines hidden in it.
type Params struct {
	Rows, Cols, Mines int
}

func (p Params) Unpack() (rows int, cols int, mines int) {
	return p.Rows, p.Cols, p.Mines
}

// Validate checks that all values are non-negative and that at least one cell
// stays free of mines.
func (p Params) Validate() error {
	var bad []string
	if p.Rows < 0 {
		bad = append(bad, "rows")
	}
	if p.Cols < 0 {
		bad = append(bad, "cols")
	}
	if p.Mines < 0 {
		bad = append(bad, "mines")
	}
	if len(bad) > 0 {
		return fmt.Errorf(
			"%w: %s must be non-negative (have %v)",
			ErrInvalidArgument, strings.Join(bad, ", "), p,
		)
	}
	if p.Cols != 0 && p.Rows > math.MaxInt/p.Cols {
		return fmt.Errorf("%w: %dx%d grid is too large", ErrInvalidArgument, p.Rows, p.Cols)
	}
	if limit := p.Rows*p.Cols - 1; p.Mines > limit {
		return fmt.Errorf(
			"%w: too many mines for %dx%d (have %d, limit %d)",
			ErrInvalidArgument, p.Rows, p.Cols, p.Mines, limit,
		)
	}
	return nil
}

func (p Params) Cells() int {
	return p.Rows * p.Cols
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.Mines)
}
