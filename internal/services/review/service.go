package review

import (
	"context"

	"github.com/bobmcallan/tradejournal/internal/common"
	"github.com/bobmcallan/tradejournal/internal/interfaces"
	"github.com/bobmcallan/tradejournal/internal/models"
)

// Service implements interfaces.ReviewService against an AI client.
type Service struct {
	client interfaces.AIClient
	logger *common.Logger
}

// NewService creates a review service.
func NewService(client interfaces.AIClient, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{client: client, logger: logger}
}

// ReviewTrades builds the critique prompt, submits it to the feedback
// service, and parses the response. Transport or timeout failures surface
// as FeedbackUnavailableError with no retry; the caller owns retry policy
// via ctx and re-invocation.
func (s *Service) ReviewTrades(ctx context.Context, trades []models.Trade) (*models.TradeFeedback, error) {
	prompt, err := BuildPrompt(trades)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("trades", len(trades)).Msg("Submitting trade review")

	raw, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &models.FeedbackUnavailableError{Cause: err}
	}

	fb := ParseFeedback(raw)
	if !fb.Structured {
		s.logger.Warn().Msg("Feedback response missing section labels, returning unstructured text")
	}
	return fb, nil
}

var _ interfaces.ReviewService = (*Service)(nil)
