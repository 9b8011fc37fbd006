package report

import (
	"github.com/bobmcallan/tradejournal/internal/common"
	"github.com/bobmcallan/tradejournal/internal/interfaces"
	"github.com/bobmcallan/tradejournal/internal/models"
)

// Service implements interfaces.ReportService over the chart renderers.
type Service struct {
	logger *common.Logger
}

// NewService creates a report service.
func NewService(logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{logger: logger}
}

func (s *Service) RenderEquityCurve(points []models.CurvePoint) ([]byte, error) {
	return RenderEquityCurve(points)
}

func (s *Service) RenderOutcomes(summary models.StatisticsSummary) ([]byte, error) {
	return RenderOutcomes(summary)
}

func (s *Service) RenderDistribution(bins []models.HistogramBin) ([]byte, error) {
	return RenderDistribution(bins)
}

func (s *Service) RenderGroupProfit(title string, groups models.GroupedSummary) ([]byte, error) {
	return RenderGroupProfit(title, groups)
}

var _ interfaces.ReportService = (*Service)(nil)
