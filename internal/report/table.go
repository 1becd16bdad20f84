package report

import (
	"cmp"
	"slices"
)

// Cell is a formatted value and its style. Markup is added by a Renderer.
type Cell struct {
	Text  string
	Style Style
}

// Table is a header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]Cell
	// Markup marks tables whose rendered cells may carry markup the
	// consumer must not escape.
	Markup bool
}

func plain(text string) Cell {
	return Cell{Text: text}
}

func styled(text string, style Style) Cell {
	return Cell{Text: text, Style: style}
}

// compareRows orders rows by their cell texts, left to right.
func compareRows(a, b []Cell) int {
	return slices.CompareFunc(a, b, func(x, y Cell) int {
		return cmp.Compare(x.Text, y.Text)
	})
}
