// Package analytics computes performance statistics over trade sets.
// Every function here is pure: it never mutates its input and never
// panics on empty or degenerate sets.
package analytics

import "github.com/bobmcallan/tradejournal/internal/models"

// Summarize computes the scalar performance metrics for a trade set.
// All divisions guard the zero-denominator case with defined values.
func Summarize(trades models.TradeSet) models.StatisticsSummary {
	s := models.StatisticsSummary{TradeCount: len(trades)}
	if len(trades) == 0 {
		return s
	}

	var winSum, lossSum float64
	latestIdx := 0
	for i, t := range trades {
		s.TotalProfit += t.Profit
		switch {
		case t.Profit > 0:
			s.WinningTrades++
			winSum += t.Profit
			if t.Profit > s.LargestWin {
				s.LargestWin = t.Profit
			}
		case t.Profit < 0:
			s.LosingTrades++
			lossSum += t.Profit
			if t.Profit < s.LargestLoss {
				s.LargestLoss = t.Profit
			}
		default:
			s.BreakEvenTrades++
		}
		if t.ExitTime.After(trades[latestIdx].ExitTime) {
			latestIdx = i
		}
	}

	s.WinRate = float64(s.WinningTrades) / float64(s.TradeCount)
	s.AverageProfit = s.TotalProfit / float64(s.TradeCount)

	if s.WinningTrades > 0 {
		s.AverageWin = winSum / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AverageLoss = lossSum / float64(s.LosingTrades)
	}

	// Risk/reward is undefined with no losing trades; nil is the
	// documented sentinel rather than a substituted zero or infinity.
	if s.LosingTrades > 0 && s.WinningTrades > 0 {
		rr := s.AverageWin / -s.AverageLoss
		s.RiskRewardRatio = &rr
	}

	// Expectancy: probability-weighted P&L per trade. Break-even trades
	// count toward the loss-probability mass but contribute nothing to
	// either average.
	s.Expectancy = s.WinRate*s.AverageWin - (1-s.WinRate)*(-s.AverageLoss)

	// Net profit carries the source platform's running balance as of the
	// latest exit, not a re-sum of Profit.
	s.NetProfit = trades[latestIdx].CumNetProfit

	return s
}
