package mines

import "fmt"

// Pos is a zero-based (row, column) coordinate.
type Pos struct {
	R, C int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.R, p.C)
}

type posSet map[Pos]struct{}

func (s posSet) has(p Pos) bool {
	_, ok := s[p]
	return ok
}

func (s posSet) add(p Pos) {
	s[p] = struct{}{}
}

// toggle flips membership of p and reports whether p is now in the set.
func (s posSet) toggle(p Pos) bool {
	if s.has(p) {
		delete(s, p)
		return false
	}
	s[p] = struct{}{}
	return true
}
