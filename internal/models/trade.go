// Package models defines the core data types for the trade journal.
package models

import "time"

// Direction indicates which side of the market a trade was taken on.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// Trade is the canonical trade entity. Instances are created by the
// ingest normalizer from platform export rows and are immutable once
// stored; the engines never modify a Trade in place.
type Trade struct {
	ID           string    `json:"id" badgerhold:"key"`
	Instrument   string    `json:"instrument"`
	Account      string    `json:"account"`
	Strategy     string    `json:"strategy"`
	Direction    Direction `json:"direction"`
	Quantity     int       `json:"quantity"`
	EntryPrice   float64   `json:"entry_price"`
	ExitPrice    float64   `json:"exit_price"`
	EntryTime    time.Time `json:"entry_time"`
	ExitTime     time.Time `json:"exit_time"`
	Profit       float64   `json:"profit"`
	CumNetProfit float64   `json:"cumulative_net_profit"`
	Commission   float64   `json:"commission"`

	// MAE/MFE are nil when the export did not report them. Nil means
	// "unknown"; 0 means "measured as zero".
	MAE *float64 `json:"mae,omitempty"`
	MFE *float64 `json:"mfe,omitempty"`
}

// Win reports whether the trade closed with a positive net profit.
func (t *Trade) Win() bool { return t.Profit > 0 }

// Loss reports whether the trade closed with a negative net profit.
func (t *Trade) Loss() bool { return t.Profit < 0 }

// TradeSet is an ordered sequence of trades under analysis. The expected
// convention is ExitTime ascending, which the store guarantees on query.
type TradeSet []Trade

// StrategyLabelUnlabeled is assigned when the export carries no strategy.
const StrategyLabelUnlabeled = "Unlabeled"

// StatisticsSummary holds scalar performance metrics derived from a
// TradeSet. It is recomputed on demand and never stored.
type StatisticsSummary struct {
	TradeCount      int     `json:"trade_count"`
	WinningTrades   int     `json:"winning_trades"`
	LosingTrades    int     `json:"losing_trades"`
	BreakEvenTrades int     `json:"break_even_trades"`
	WinRate         float64 `json:"win_rate"`
	TotalProfit     float64 `json:"total_profit"`
	AverageProfit   float64 `json:"average_profit"`
	AverageWin      float64 `json:"average_win"`
	AverageLoss     float64 `json:"average_loss"`
	LargestWin      float64 `json:"largest_win"`
	LargestLoss     float64 `json:"largest_loss"`

	// RiskRewardRatio is nil when the set contains no losing trades:
	// the ratio is undefined, reported as JSON null rather than a
	// substituted zero or infinity.
	RiskRewardRatio *float64 `json:"risk_reward_ratio"`

	Expectancy float64 `json:"expectancy"`

	// NetProfit is the cumulative net profit of the trade with the
	// latest exit time, preserving any starting balance the source
	// platform tracked. It is not a re-sum of Profit.
	NetProfit float64 `json:"net_profit"`
}

// GroupSummary pairs a group key (strategy or account name) with the
// summary computed over that partition.
type GroupSummary struct {
	Key     string            `json:"key"`
	Summary StatisticsSummary `json:"summary"`
}

// GroupedSummary preserves first-seen key order from the input TradeSet.
type GroupedSummary []GroupSummary

// CurvePoint is one point on the cumulative net profit curve,
// consumed by chart rendering.
type CurvePoint struct {
	ExitTime     time.Time `json:"exit_time"`
	CumNetProfit float64   `json:"cumulative_net_profit"`
}

// HistogramBin is one bucket of the profit distribution.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}
