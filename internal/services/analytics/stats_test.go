package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/tradejournal/internal/models"
)

func mkTrade(profit, cumNet float64, exit time.Time) models.Trade {
	return models.Trade{
		Instrument:   "MES 03-25",
		Account:      "Sim101",
		Strategy:     "ORB",
		Direction:    models.DirectionLong,
		Quantity:     1,
		EntryPrice:   5000,
		ExitPrice:    5000 + profit,
		EntryTime:    exit.Add(-10 * time.Minute),
		ExitTime:     exit,
		Profit:       profit,
		CumNetProfit: cumNet,
	}
}

func TestSummarize_MixedOutcomes(t *testing.T) {
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	trades := models.TradeSet{
		mkTrade(50, 50, base),
		mkTrade(-20, 30, base.Add(1*time.Hour)),
		mkTrade(10, 40, base.Add(2*time.Hour)),
		mkTrade(-4, 36, base.Add(3*time.Hour)),
		mkTrade(0, 36, base.Add(4*time.Hour)),
		mkTrade(24, 60, base.Add(5*time.Hour)),
	}

	s := Summarize(trades)

	assert.Equal(t, 6, s.TradeCount)
	assert.Equal(t, 3, s.WinningTrades)
	assert.Equal(t, 2, s.LosingTrades)
	assert.Equal(t, 1, s.BreakEvenTrades)
	assert.InDelta(t, 0.5, s.WinRate, 1e-9)
	assert.InDelta(t, 60.0, s.TotalProfit, 1e-9)
	assert.InDelta(t, 10.0, s.AverageProfit, 1e-9)
	assert.InDelta(t, 28.0, s.AverageWin, 1e-9)
	assert.InDelta(t, -12.0, s.AverageLoss, 1e-9)
	assert.Equal(t, 50.0, s.LargestWin)
	assert.Equal(t, -20.0, s.LargestLoss)

	require.NotNil(t, s.RiskRewardRatio)
	assert.InDelta(t, 28.0/12.0, *s.RiskRewardRatio, 1e-9)

	// 0.5*28 - 0.5*12
	assert.InDelta(t, 8.0, s.Expectancy, 1e-9)

	// Net profit is the running balance of the latest-exit trade.
	assert.Equal(t, 60.0, s.NetProfit)
}

func TestSummarize_SingleWinSingleLoss(t *testing.T) {
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	trades := models.TradeSet{
		mkTrade(100, 100, base),
		mkTrade(-40, 60, base.Add(time.Hour)),
	}

	s := Summarize(trades)

	assert.InDelta(t, 0.5, s.WinRate, 1e-9)
	assert.InDelta(t, 60.0, s.TotalProfit, 1e-9)
	assert.InDelta(t, 30.0, s.AverageProfit, 1e-9)
	require.NotNil(t, s.RiskRewardRatio)
	assert.InDelta(t, 2.5, *s.RiskRewardRatio, 1e-9)
	assert.InDelta(t, 30.0, s.Expectancy, 1e-9)
	assert.Equal(t, 60.0, s.NetProfit)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TradeCount)
	assert.Equal(t, 0.0, s.WinRate)
	assert.Equal(t, 0.0, s.TotalProfit)
	assert.Equal(t, 0.0, s.Expectancy)
	assert.Equal(t, 0.0, s.NetProfit)
	assert.Nil(t, s.RiskRewardRatio)
}

func TestSummarize_AllWinners(t *testing.T) {
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	trades := models.TradeSet{
		mkTrade(30, 30, base),
		mkTrade(50, 80, base.Add(time.Hour)),
	}

	s := Summarize(trades)

	assert.Equal(t, 1.0, s.WinRate)
	assert.Equal(t, 0.0, s.AverageLoss)
	// No losers: risk/reward is undefined, not zero or infinity.
	assert.Nil(t, s.RiskRewardRatio)
	// With win rate 1, expectancy collapses to the average win.
	assert.InDelta(t, s.AverageProfit, s.Expectancy, 1e-9)
	assert.Equal(t, 80.0, s.NetProfit)
}

func TestSummarize_NetProfitFollowsLatestExit(t *testing.T) {
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	// Out-of-order input: the latest exit is in the middle of the slice.
	trades := models.TradeSet{
		mkTrade(10, 10, base.Add(time.Hour)),
		mkTrade(20, 99, base.Add(3*time.Hour)),
		mkTrade(-5, 5, base),
	}

	s := Summarize(trades)
	assert.Equal(t, 99.0, s.NetProfit)
}
