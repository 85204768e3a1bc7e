package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/mines/internal/mines"
)

// firstPick always takes the first remaining candidate, so mines fill the
// board in row-major order after skipping the first revealed cell, except
// that each pick moves the last candidate into the freed slot.
type firstPick struct{}

func (firstPick) IntN(int) int { return 0 }

func newBoard(t *testing.T, rows, cols, mineCount int) *mines.Board {
	t.Helper()
	b, err := mines.New(rows, cols, mineCount, firstPick{})
	require.NoError(t, err)
	return b
}

func reveal(t *testing.T, b *mines.Board, r, c int) {
	t.Helper()
	_, err := b.Reveal(mines.Pos{R: r, C: c}, true)
	require.NoError(t, err)
}

func flag(t *testing.T, b *mines.Board, r, c int) {
	t.Helper()
	_, err := b.Flag(mines.Pos{R: r, C: c})
	require.NoError(t, err)
}

func plain(b *mines.Board) string {
	return Render(b, RenderOptions{})
}

func TestRenderUntouched(t *testing.T) {
	b := newBoard(t, 2, 3, 1)
	assert.Equal(t, " - - -\n - - -", plain(b))
	assert.False(t, Exploded(b))
}

func TestRenderZeroesAsBlanks(t *testing.T) {
	b := newBoard(t, 3, 3, 0)
	reveal(t, b, 1, 1)
	assert.Equal(t, "      \n      \n      ", plain(b))
}

func TestRenderHidesUntilExploded(t *testing.T) {
	// mines land on (0,1) then (1,1)
	b := newBoard(t, 2, 2, 2)
	reveal(t, b, 0, 0)
	flag(t, b, 1, 0)

	assert.Equal(t, " 2 -\n # -", plain(b))
	assert.False(t, Exploded(b))

	reveal(t, b, 1, 1)
	assert.True(t, Exploded(b))
	assert.Equal(t, " 2 *\n X @", plain(b))
}

func TestRenderCorrectFlag(t *testing.T) {
	b := newBoard(t, 1, 2, 1)
	reveal(t, b, 0, 0)
	flag(t, b, 0, 1)
	assert.Equal(t, " 1 #", plain(b))
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		sym      mines.Symbol
		exploded bool
		want     string
	}{
		{mines.Symbol{Kind: mines.FlaggedHidden}, false, "#"},
		{mines.Symbol{Kind: mines.FlaggedHidden}, true, "X"},
		{mines.Symbol{Kind: mines.UnflaggedMineHidden}, false, "-"},
		{mines.Symbol{Kind: mines.UnflaggedMineHidden}, true, "*"},
		{mines.Symbol{Kind: mines.FlaggedMineHidden}, false, "#"},
		{mines.Symbol{Kind: mines.DetonatedMine}, true, "@"},
		{mines.RevealedCount(3), false, "3"},
		{mines.Symbol{Kind: mines.Hidden}, false, "-"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Glyph(test.sym, test.exploded), "%v exploded=%v", test.sym.Kind, test.exploded)
	}
}

func TestPaletteCoversGlyphs(t *testing.T) {
	for _, g := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "@", "*", "#", "X", "-"} {
		assert.Contains(t, palette, g)
	}
	assert.NotContains(t, palette, "0")
}
