package report

import "math"

// Style is the presentation class of a cell, independent of any markup.
type Style int

const (
	StyleNormal Style = iota
	StyleEmphasized
	StylePositive
	StyleNegative
)

func (s Style) String() string {
	switch s {
	case StyleEmphasized:
		return "emphasized"
	case StylePositive:
		return "positive"
	case StyleNegative:
		return "negative"
	default:
		return "normal"
	}
}

// Direction says which way a metric improves.
type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter
)

// Compare returns the styles for the strategy and benchmark side of a metric
// pair. The strictly better side is emphasized; equal values and values that
// are NaN or infinite are not comparable and leave both sides normal.
func Compare(strategy, benchmark float64, dir Direction) (Style, Style) {
	if !finite(strategy) || !finite(benchmark) {
		return StyleNormal, StyleNormal
	}

	strategyWins, benchmarkWins := strategy > benchmark, strategy < benchmark
	if dir == LowerIsBetter {
		strategyWins, benchmarkWins = benchmarkWins, strategyWins
	}

	switch {
	case strategyWins:
		return StyleEmphasized, StyleNormal
	case benchmarkWins:
		return StyleNormal, StyleEmphasized
	default:
		return StyleNormal, StyleNormal
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
