package interfaces

import (
	"context"

	"github.com/bobmcallan/tradejournal/internal/models"
)

// ReviewService builds critique requests for selected trades, submits them
// to the AI collaborator, and parses responses into display-ready feedback.
type ReviewService interface {
	ReviewTrades(ctx context.Context, trades []models.Trade) (*models.TradeFeedback, error)
}

// ReportService renders chart PNGs from analytics output.
type ReportService interface {
	RenderEquityCurve(points []models.CurvePoint) ([]byte, error)
	RenderOutcomes(summary models.StatisticsSummary) ([]byte, error)
	RenderDistribution(bins []models.HistogramBin) ([]byte, error)
	RenderGroupProfit(title string, groups models.GroupedSummary) ([]byte, error)
}
