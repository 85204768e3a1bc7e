package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/mines/internal/mines"
)

// palette maps glyphs to ANSI colours.
var palette = map[string]lipgloss.Color{
	"1": lipgloss.Color("12"),
	"2": lipgloss.Color("2"),
	"3": lipgloss.Color("9"),
	"4": lipgloss.Color("4"),
	"5": lipgloss.Color("1"),
	"6": lipgloss.Color("6"),
	"7": lipgloss.Color("15"),
	"8": lipgloss.Color("8"),
	"@": lipgloss.Color("11"),
	"*": lipgloss.Color("3"),
	"#": lipgloss.Color("10"),
	"X": lipgloss.Color("13"),
	"-": lipgloss.Color("7"),
}

type RenderOptions struct {
	Color  bool
	Cursor *mines.Pos
}

// Exploded reports whether any mine on the board has been revealed.
func Exploded(b *mines.Board) bool {
	for r := range b.Rows() {
		for c := range b.Cols() {
			if sym, err := b.CellAt(mines.Pos{R: r, C: c}); err == nil && sym.Kind == mines.DetonatedMine {
				return true
			}
		}
	}
	return false
}

// Glyph returns what the player gets to see for sym. Until a mine has gone off
// the board must not give away which flags are right or where mines are.
func Glyph(sym mines.Symbol, exploded bool) string {
	if !exploded {
		switch sym.Kind {
		case mines.FlaggedHidden:
			sym = mines.Symbol{Kind: mines.FlaggedMineHidden}
		case mines.UnflaggedMineHidden:
			sym = mines.Symbol{Kind: mines.Hidden}
		}
	}
	return sym.String()
}

// Render draws the board one row per line, cells separated by spaces.
func Render(b *mines.Board, opts RenderOptions) string {
	exploded := Exploded(b)
	lines := make([]string, 0, b.Rows())
	for r := range b.Rows() {
		cells := make([]string, 0, b.Cols())
		for c := range b.Cols() {
			p := mines.Pos{R: r, C: c}
			sym, _ := b.CellAt(p)
			glyph := Glyph(sym, exploded)

			text := glyph
			if text == "0" {
				text = " "
			}
			isCursor := opts.Cursor != nil && *opts.Cursor == p
			if opts.Color || isCursor {
				style := lipgloss.NewStyle()
				if fg, ok := palette[glyph]; ok && opts.Color {
					style = style.Foreground(fg)
				}
				if isCursor {
					style = style.Reverse(true)
				}
				text = style.Render(text)
			}
			cells = append(cells, text)
		}
		lines = append(lines, " "+strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}
