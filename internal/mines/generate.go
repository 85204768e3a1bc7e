package mines

import "github.com/sirupsen/logrus"

// generate places the mines of the round, keeping first clear.
func (b *Board) generate(first Pos) {
	rows, cols, mineCount := b.params.Unpack()

	/*
	 * Write down every position except the first one, then pick mineCount
	 * of them off the list. Each pick swaps the tail into the hole so the
	 * remaining candidates stay contiguous.
	 */
	candidates := make([]Pos, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			if p := (Pos{r, c}); p != first {
				candidates = append(candidates, p)
			}
		}
	}

	b.mines = make(posSet, mineCount)
	k := len(candidates)
	for range mineCount {
		i := b.rnd.IntN(k)
		b.mines.add(candidates[i])
		k--
		candidates[i] = candidates[k]
	}
	b.planted = true

	Log.WithFields(logrus.Fields{
		"params": b.params.String(),
		"first":  first.String(),
	}).Debug("mines placed")
}
