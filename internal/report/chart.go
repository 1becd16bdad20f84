package report

import (
	"fmt"

	"github.com/newthinker/overlay/internal/backtest"
	"github.com/newthinker/overlay/internal/core"
)

// TraceRole identifies what a trace shows. It is not serialized.
type TraceRole int

const (
	RoleStrategy TraceRole = iota
	RoleBenchmark
	RolePutMarkers
	RoleCallMarkers
	RoleDrawdownBoundary
	RoleDrawdownFill
)

// ChartSpec is a renderer-agnostic chart: traces plus layout, in the shape
// plotly.js accepts.
type ChartSpec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one scatter series.
type Trace struct {
	Type       string    `json:"type"`
	X          []string  `json:"x"`
	Y          []float64 `json:"y"`
	Name       string    `json:"name,omitempty"`
	Mode       string    `json:"mode,omitempty"`
	Line       *Line     `json:"line,omitempty"`
	Marker     *Marker   `json:"marker,omitempty"`
	Fill       string    `json:"fill,omitempty"`
	FillColor  string    `json:"fillcolor,omitempty"`
	ShowLegend *bool     `json:"showlegend,omitempty"`
	HoverInfo  string    `json:"hoverinfo,omitempty"`

	Role TraceRole `json:"-"`
}

type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

type Marker struct {
	Color  string `json:"color"`
	Size   int    `json:"size"`
	Symbol string `json:"symbol"`
}

type Layout struct {
	Title       Title  `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	XAxis       Axis   `json:"xaxis"`
	YAxis       Axis   `json:"yaxis"`
	HoverMode   string `json:"hovermode"`
	PlotBgColor string `json:"plot_bgcolor"`
	Legend      Legend `json:"legend"`
	Margin      Margin `json:"margin"`
}

type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type Axis struct {
	Title         string `json:"title"`
	ShowGrid      bool   `json:"showgrid"`
	GridColor     string `json:"gridcolor,omitempty"`
	Type          string `json:"type,omitempty"`
	DTick         string `json:"dtick,omitempty"`
	TickFormat    string `json:"tickformat,omitempty"`
	TickAngle     int    `json:"tickangle,omitempty"`
	TickFont      *Font  `json:"tickfont,omitempty"`
	ZeroLine      bool   `json:"zeroline,omitempty"`
	ZeroLineColor string `json:"zerolinecolor,omitempty"`
}

type Font struct {
	Size int `json:"size"`
}

type Legend struct {
	Orientation string  `json:"orientation"`
	YAnchor     string  `json:"yanchor"`
	Y           float64 `json:"y"`
	XAnchor     string  `json:"xanchor"`
	X           float64 `json:"x"`
	BgColor     string  `json:"bgcolor"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

const (
	transparentRed = "rgba(255,0,0,0)"
	shadeRed       = "rgba(255,0,0,0.2)"
)

// BuildChart assembles the equity curves, trade markers and optional drawdown
// shading of b. Trade markers sit on the benchmark curve. A marker date that
// is missing from the benchmark series is an error, never skipped.
func BuildChart(b *backtest.ResultBundle) (*ChartSpec, error) {
	benchmarkAt := b.BenchmarkIndex()

	strategy := Trace{
		Type: "scatter",
		Name: traceStrategyName,
		Line: &Line{Color: "blue", Width: 2},
		Role: RoleStrategy,
	}
	for _, p := range b.Portfolio {
		strategy.X = append(strategy.X, backtest.DateKey(p.Date))
		strategy.Y = append(strategy.Y, p.CumulativeReturn)
	}

	benchmark := Trace{
		Type: "scatter",
		Name: fmt.Sprintf(traceBenchmarkName, b.Symbol),
		Line: &Line{Color: "gray", Width: 2},
		Role: RoleBenchmark,
	}
	for _, p := range b.Benchmark {
		benchmark.X = append(benchmark.X, backtest.DateKey(p.Date))
		benchmark.Y = append(benchmark.Y, p.CumulativeReturnPct)
	}

	puts, err := markerTrace(b.PutTrades, benchmarkAt, tracePutName, "red", RolePutMarkers)
	if err != nil {
		return nil, err
	}
	calls, err := markerTrace(b.CallTrades, benchmarkAt, traceCallName, "green", RoleCallMarkers)
	if err != nil {
		return nil, err
	}

	data := []Trace{strategy, benchmark, puts, calls}
	if region := LocateDrawdown(b.Portfolio, b.MaxDrawdown); region != nil {
		data = append(data, drawdownTraces(region)...)
	}

	return &ChartSpec{Data: data, Layout: chartLayout(b.Symbol)}, nil
}

func markerTrace(trades []backtest.DatedTrade, benchmarkAt map[string]float64, name, color string, role TraceRole) (Trace, error) {
	t := Trace{
		Type:   "scatter",
		Name:   name,
		Mode:   "markers",
		Marker: &Marker{Color: color, Size: 10, Symbol: "circle"},
		Role:   role,
		X:      make([]string, 0, len(trades)),
		Y:      make([]float64, 0, len(trades)),
	}
	for _, tr := range trades {
		key := backtest.DateKey(tr.Date)
		y, ok := benchmarkAt[key]
		if !ok {
			return Trace{}, core.WrapError(core.ErrDateNotFound,
				fmt.Errorf("%s marker %s not in benchmark series", name, key))
		}
		t.X = append(t.X, key)
		t.Y = append(t.Y, y)
	}
	return t, nil
}

// drawdownTraces returns the invisible peak boundary followed by the filled
// curve. The fill uses "tonextx" against the trace before it, so the order
// must not change.
func drawdownTraces(r *DrawdownRegion) []Trace {
	x := make([]string, len(r.Dates))
	for i, d := range r.Dates {
		x[i] = backtest.DateKey(d)
	}
	hidden, shown := false, true

	boundary := Trace{
		Type:       "scatter",
		X:          x,
		Y:          r.Peak,
		Mode:       "lines",
		Line:       &Line{Color: transparentRed, Width: 0},
		ShowLegend: &hidden,
		HoverInfo:  "skip",
		Role:       RoleDrawdownBoundary,
	}
	fill := Trace{
		Type:       "scatter",
		X:          x,
		Y:          r.Values,
		Name:       fmt.Sprintf(traceDrawdownFormat, r.MagnitudePct),
		Mode:       "lines",
		Fill:       "tonextx",
		FillColor:  shadeRed,
		Line:       &Line{Color: transparentRed, Width: 0},
		ShowLegend: &shown,
		Role:       RoleDrawdownFill,
	}
	return []Trace{boundary, fill}
}

// chartLayout is fixed presentation configuration: quarterly date ticks in
// yy/mm, tilted 45 degrees, unified hover and a legend above the plot.
func chartLayout(symbol string) Layout {
	return Layout{
		Title:  Title{Text: fmt.Sprintf(chartTitleFormat, symbol), X: 0.5, Y: 0.95},
		Width:  1200,
		Height: 800,
		XAxis: Axis{
			Title:      axisDateTitle,
			ShowGrid:   true,
			GridColor:  "rgba(0,0,0,0.1)",
			Type:       "date",
			DTick:      "M3",
			TickFormat: "%y/%m",
			TickAngle:  45,
			TickFont:   &Font{Size: 10},
		},
		YAxis: Axis{
			Title:         axisReturnTitle,
			ShowGrid:      true,
			GridColor:     "rgba(0,0,0,0.1)",
			ZeroLine:      true,
			ZeroLineColor: "rgba(0,0,0,0.2)",
		},
		HoverMode:   "x unified",
		PlotBgColor: "white",
		Legend: Legend{
			Orientation: "h",
			YAnchor:     "top",
			Y:           1.15,
			XAnchor:     "center",
			X:           0.5,
			BgColor:     "rgba(255,255,255,0.8)",
		},
		Margin: Margin{L: 50, R: 50, T: 150, B: 80},
	}
}
