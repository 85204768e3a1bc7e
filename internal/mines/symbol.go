package mines

import "strconv"

// Kind tells which of the visual states a cell is in.
type Kind int8

const (
	Hidden Kind = iota
	FlaggedHidden
	FlaggedMineHidden
	DetonatedMine
	UnflaggedMineHidden
	Revealed // safe and open, see [Symbol.Count]
)

var kindNames = [...]string{
	Hidden:              "Hidden",
	FlaggedHidden:       "FlaggedHidden",
	FlaggedMineHidden:   "FlaggedMineHidden",
	DetonatedMine:       "DetonatedMine",
	UnflaggedMineHidden: "UnflaggedMineHidden",
	Revealed:            "Revealed",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Symbol is the read-only projection of one cell. Count holds the number of
// neighbouring mines and is meaningful only for [Revealed].
type Symbol struct {
	Kind  Kind
	Count int
}

func RevealedCount(n int) Symbol {
	return Symbol{Kind: Revealed, Count: n}
}

// String returns the single-character glyph of the symbol.
func (s Symbol) String() string {
	switch s.Kind {
	case DetonatedMine:
		return "@"
	case FlaggedMineHidden:
		return "#"
	case FlaggedHidden:
		return "X"
	case UnflaggedMineHidden:
		return "*"
	case Revealed:
		return strconv.Itoa(s.Count)
	default:
		return "-"
	}
}
