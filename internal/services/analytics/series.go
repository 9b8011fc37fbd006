package analytics

import (
	"math"

	"github.com/bobmcallan/tradejournal/internal/models"
)

// DefaultHistogramBins matches the profit-distribution chart bucket count.
const DefaultHistogramBins = 15

// EquityCurve produces the time-ordered (exit time, cumulative net profit)
// pairs consumed by curve rendering. Input order is preserved; callers
// pass store-ordered sets (ExitTime ascending).
func EquityCurve(trades models.TradeSet) []models.CurvePoint {
	points := make([]models.CurvePoint, 0, len(trades))
	for _, t := range trades {
		points = append(points, models.CurvePoint{
			ExitTime:     t.ExitTime,
			CumNetProfit: t.CumNetProfit,
		})
	}
	return points
}

// ProfitDistribution buckets trade profits into equal-width bins for the
// distribution chart. An empty set yields no bins.
func ProfitDistribution(trades models.TradeSet, binCount int) []models.HistogramBin {
	if len(trades) == 0 {
		return nil
	}
	if binCount <= 0 {
		binCount = DefaultHistogramBins
	}

	lo, hi := trades[0].Profit, trades[0].Profit
	for _, t := range trades[1:] {
		lo = math.Min(lo, t.Profit)
		hi = math.Max(hi, t.Profit)
	}
	if lo == hi {
		// Degenerate distribution: one bin holding everything.
		return []models.HistogramBin{{Low: lo, High: hi, Count: len(trades)}}
	}

	width := (hi - lo) / float64(binCount)
	bins := make([]models.HistogramBin, binCount)
	for i := range bins {
		bins[i].Low = lo + width*float64(i)
		bins[i].High = lo + width*float64(i+1)
	}

	for _, t := range trades {
		idx := int((t.Profit - lo) / width)
		if idx >= binCount {
			idx = binCount - 1 // hi lands in the last bin
		}
		bins[idx].Count++
	}
	return bins
}
