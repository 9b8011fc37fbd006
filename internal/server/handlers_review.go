package server

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/tradejournal/internal/models"
	"github.com/bobmcallan/tradejournal/internal/services/review"
)

// handleReview handles POST /api/review: submits selected trades for AI
// critique and returns the parsed feedback.
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.ReviewService == nil {
		WriteErrorWithCode(w, http.StatusServiceUnavailable,
			"AI review is not configured (missing Gemini API key)", "REVIEW_UNCONFIGURED")
		return
	}

	var body struct {
		TradeIDs []string `json:"trade_ids"`
	}
	if !DecodeJSON(w, r, &body) {
		return
	}
	if len(body.TradeIDs) == 0 {
		WriteError(w, http.StatusBadRequest, "trade_ids is required")
		return
	}
	// Reject oversized selections before touching the store.
	if len(body.TradeIDs) > review.MaxReviewTrades {
		tooMany := &models.TooManyTradesError{Count: len(body.TradeIDs), Max: review.MaxReviewTrades}
		WriteErrorWithCode(w, http.StatusUnprocessableEntity, tooMany.Error(), "TOO_MANY_TRADES")
		return
	}

	store := s.app.Storage.TradeStore()
	trades := make([]models.Trade, 0, len(body.TradeIDs))
	for _, id := range body.TradeIDs {
		trade, err := store.Get(r.Context(), id)
		if err != nil {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		trades = append(trades, *trade)
	}

	feedback, err := s.app.ReviewService.ReviewTrades(r.Context(), trades)
	if err != nil {
		var tooMany *models.TooManyTradesError
		if errors.As(err, &tooMany) {
			WriteErrorWithCode(w, http.StatusUnprocessableEntity, tooMany.Error(), "TOO_MANY_TRADES")
			return
		}
		var unavailable *models.FeedbackUnavailableError
		if errors.As(err, &unavailable) {
			WriteErrorWithCode(w, http.StatusBadGateway, unavailable.Error(), "FEEDBACK_UNAVAILABLE")
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, feedback)
}
