package mines

import (
	"fmt"
	"strings"
)

// Board is a single-use game of minesweeper. Mines are placed lazily on the
// first reveal of each round, so the first revealed cell is always safe.
//
// A Board is not safe for concurrent use.
type Board struct {
	params   Params
	revealed posSet
	flagged  posSet
	mines    posSet
	planted  bool
	rnd      Source
}

// New validates the board parameters and returns an empty board. A nil rnd
// selects a generator seeded from runtime entropy.
func New(rows, cols, mineCount int, rnd Source) (*Board, error) {
	params := Params{Rows: rows, Cols: cols, Mines: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = NewRand(0)
	}
	b := &Board{
		params:   params,
		revealed: make(posSet),
		flagged:  make(posSet),
		mines:    make(posSet),
		rnd:      rnd,
	}
	return b, nil
}

func (b *Board) Rows() int      { return b.params.Rows }
func (b *Board) Cols() int      { return b.params.Cols }
func (b *Board) MineCount() int { return b.params.Mines }
func (b *Board) Params() Params { return b.params }

// FlagCount is the number of flags currently placed.
func (b *Board) FlagCount() int {
	return len(b.flagged)
}

func (b *Board) Contains(p Pos) bool {
	return 0 <= p.R && p.R < b.params.Rows && 0 <= p.C && p.C < b.params.Cols
}

func (b *Board) check(p Pos) error {
	if !b.Contains(p) {
		return &PositionError{Pos: p, Rows: b.params.Rows, Cols: b.params.Cols}
	}
	return nil
}

// Adjacent returns the in-grid neighbours of p in row-major order.
func (b *Board) Adjacent(p Pos) []Pos {
	adj := make([]Pos, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			q := Pos{p.R + dr, p.C + dc}
			if (dr != 0 || dc != 0) && b.Contains(q) {
				adj = append(adj, q)
			}
		}
	}
	return adj
}

func (b *Board) adjacentMines(p Pos) (n int) {
	for _, q := range b.Adjacent(p) {
		if b.mines.has(q) {
			n++
		}
	}
	return
}

// CellAt projects the state of p into a [Symbol].
func (b *Board) CellAt(p Pos) (Symbol, error) {
	if err := b.check(p); err != nil {
		return Symbol{}, err
	}
	return b.cellAt(p), nil
}

func (b *Board) cellAt(p Pos) Symbol {
	revealed, flagged, mine := b.revealed.has(p), b.flagged.has(p), b.mines.has(p)
	switch {
	case revealed && mine:
		return Symbol{Kind: DetonatedMine}
	case flagged && mine:
		return Symbol{Kind: FlaggedMineHidden}
	case flagged:
		return Symbol{Kind: FlaggedHidden}
	case mine:
		return Symbol{Kind: UnflaggedMineHidden}
	case revealed:
		return RevealedCount(b.adjacentMines(p))
	default:
		return Symbol{Kind: Hidden}
	}
}

// Reveal uncovers p. Flagged cells are left alone and report false. With auto
// set, cells with no neighbouring mines open their neighbours in turn.
func (b *Board) Reveal(p Pos, auto bool) (bool, error) {
	if err := b.check(p); err != nil {
		return false, err
	}
	if !b.planted {
		b.generate(p)
	}
	if b.flagged.has(p) {
		return false, nil
	}
	b.revealed.add(p)
	if auto {
		b.autoReveal([]Pos{p})
	}
	return true, nil
}

// autoReveal flood-fills from seeds. Every popped cell is revealed; only safe
// cells without neighbouring mines push their unopened, unflagged neighbours.
func (b *Board) autoReveal(seeds []Pos) {
	queued := make(posSet, len(seeds))
	todo := make([]Pos, 0, len(seeds))
	for _, p := range seeds {
		if !queued.has(p) {
			queued.add(p)
			todo = append(todo, p)
		}
	}

	for len(todo) > 0 {
		x := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		if !b.mines.has(x) && b.adjacentMines(x) == 0 {
			for _, q := range b.Adjacent(x) {
				if b.revealed.has(q) || b.flagged.has(q) || queued.has(q) {
					continue
				}
				queued.add(q)
				todo = append(todo, q)
			}
		}
		b.revealed.add(x)
	}
}

// Flag toggles the flag on p. Revealed cells cannot be flagged.
func (b *Board) Flag(p Pos) (bool, error) {
	if err := b.check(p); err != nil {
		return false, err
	}
	if b.revealed.has(p) {
		return false, nil
	}
	b.flagged.toggle(p)
	return true, nil
}

// Chord opens every unflagged neighbour of a revealed safe cell once all of
// its neighbouring mines are accounted for, either flagged or already
// detonated. Wrong flags make the count match by accident, in which case the
// chord opens a mine.
func (b *Board) Chord(p Pos, auto bool) (bool, error) {
	if err := b.check(p); err != nil {
		return false, err
	}
	if !b.revealed.has(p) || b.mines.has(p) {
		return false, nil
	}

	adj := b.Adjacent(p)
	var flags, detonated, mines int
	open := make([]Pos, 0, len(adj))
	for _, q := range adj {
		mine := b.mines.has(q)
		if mine {
			mines++
		}
		switch {
		case b.flagged.has(q):
			flags++
		case b.revealed.has(q) && mine:
			detonated++
			open = append(open, q)
		default:
			open = append(open, q)
		}
	}
	if flags+detonated != mines {
		return false, nil
	}

	for _, q := range open {
		b.revealed.add(q)
	}
	if auto {
		b.autoReveal(open)
	}
	return true, nil
}

// Reset clears the board back to its state right after [New].
func (b *Board) Reset() {
	clear(b.revealed)
	clear(b.flagged)
	clear(b.mines)
	b.planted = false

	Log.WithField("params", b.params.String()).Debug("board reset")
}

// String dumps every cell, mines included.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.params.Rows {
		for c := range b.params.Cols {
			if c > 0 {
				fmt.Fprint(&sb, " ")
			}
			fmt.Fprint(&sb, b.cellAt(Pos{r, c}).String())
		}
		if r < b.params.Rows-1 {
			fmt.Fprint(&sb, "\n")
		}
	}
	return sb.String()
}
