// Package report renders analytics output as PNG charts.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/tradejournal/internal/models"
)

var (
	colorProfit  = drawing.ColorFromHex("38ef7d")
	colorLoss    = drawing.ColorFromHex("f45c43")
	colorNeutral = drawing.ColorFromHex("999999")
	colorCurve   = drawing.ColorFromHex("007bff")
)

// RenderEquityCurve renders the cumulative net profit curve as PNG bytes.
// Needs at least two points to draw a line.
func RenderEquityCurve(points []models.CurvePoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.ExitTime
		yValues[i] = p.CumNetProfit
	}

	graph := chart.Chart{
		Title:  "Cumulative Net Profit Over Time",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Cumulative Net Profit",
				Style: chart.Style{
					StrokeColor: colorCurve,
					StrokeWidth: 2.5,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderOutcomes renders the win/loss/break-even count bars.
func RenderOutcomes(summary models.StatisticsSummary) ([]byte, error) {
	graph := chart.BarChart{
		Title:    "Trade Outcomes",
		Width:    600,
		Height:   400,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: []chart.Value{
			{Label: "Wins", Value: float64(summary.WinningTrades), Style: chart.Style{FillColor: colorProfit, StrokeColor: colorProfit}},
			{Label: "Losses", Value: float64(summary.LosingTrades), Style: chart.Style{FillColor: colorLoss, StrokeColor: colorLoss}},
			{Label: "Break Even", Value: float64(summary.BreakEvenTrades), Style: chart.Style{FillColor: colorNeutral, StrokeColor: colorNeutral}},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDistribution renders the profit histogram, loss-side bins red.
func RenderDistribution(bins []models.HistogramBin) ([]byte, error) {
	if len(bins) == 0 {
		return nil, fmt.Errorf("no histogram bins to render")
	}

	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		color := colorProfit
		if b.High <= 0 {
			color = colorLoss
		}
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.0f", b.Low),
			Value: float64(b.Count),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	graph := chart.BarChart{
		Title:    "Profit Distribution",
		Width:    900,
		Height:   400,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderGroupProfit renders total profit per group (strategy or account),
// one bar per group in first-seen order, colored by sign.
func RenderGroupProfit(title string, groups models.GroupedSummary) ([]byte, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no groups to render")
	}

	bars := make([]chart.Value, len(groups))
	for i, g := range groups {
		color := colorProfit
		if g.Summary.TotalProfit < 0 {
			color = colorLoss
		}
		bars[i] = chart.Value{
			Label: g.Key,
			Value: g.Summary.TotalProfit,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    900,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
