package report

import (
	"encoding/json"
	"fmt"
	"html"
)

// Renderer turns a styled cell into the string placed on the wire.
type Renderer interface {
	Render(c Cell) string
	// Markup reports whether rendered cells may contain HTML.
	Markup() bool
}

// HTMLRenderer wraps styled cells in colored spans for the results page.
type HTMLRenderer struct{}

const (
	emphasizedSpan = `<span style="color: #FF4444; font-weight: bold">%s</span>`
	positiveSpan   = `<span style="color: #4CAF50">%s</span>`
	negativeSpan   = `<span style="color: #F44336">%s</span>`
)

func (HTMLRenderer) Render(c Cell) string {
	switch c.Style {
	case StyleEmphasized:
		return fmt.Sprintf(emphasizedSpan, html.EscapeString(c.Text))
	case StylePositive:
		return fmt.Sprintf(positiveSpan, html.EscapeString(c.Text))
	case StyleNegative:
		return fmt.Sprintf(negativeSpan, html.EscapeString(c.Text))
	default:
		return c.Text
	}
}

func (HTMLRenderer) Markup() bool { return true }

// PlainRenderer drops styling.
type PlainRenderer struct{}

func (PlainRenderer) Render(c Cell) string {
	return c.Text
}

func (PlainRenderer) Markup() bool { return false }

// WireTable is the JSON shape of a rendered table.
type WireTable struct {
	Headers   []string   `json:"headers"`
	Data      [][]string `json:"data"`
	AllowHTML bool       `json:"allow_html,omitempty"`
}

// Payload is the response body of a successful report request.
type Payload struct {
	Plot               string    `json:"plot"`
	TradeRecords       WireTable `json:"trade_records"`
	TradeSummary       WireTable `json:"trade_summary"`
	DailyPnL           WireTable `json:"daily_pnl"`
	StrategyComparison WireTable `json:"strategy_comparison"`
}

// ErrorPayload is the response body of a failed report request.
type ErrorPayload struct {
	Error string `json:"error"`
}

// Encode renders r with rend. The chart is serialized to a JSON string, which
// the page parses before handing it to plotly.
func Encode(r *Report, rend Renderer) (*Payload, error) {
	plot, err := json.Marshal(r.Chart)
	if err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}

	return &Payload{
		Plot:               string(plot),
		TradeRecords:       renderTable(r.TradeRecords, rend),
		TradeSummary:       renderTable(r.TradeSummary, rend),
		DailyPnL:           renderTable(r.DailyPnL, rend),
		StrategyComparison: renderTable(r.StrategyComparison, rend),
	}, nil
}

func renderTable(t Table, rend Renderer) WireTable {
	data := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = rend.Render(c)
		}
		data[i] = cells
	}

	return WireTable{
		Headers:   t.Headers,
		Data:      data,
		AllowHTML: t.Markup && rend.Markup(),
	}
}
