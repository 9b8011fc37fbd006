package server

import (
	"net/http"

	"github.com/bobmcallan/tradejournal/internal/models"
	"github.com/bobmcallan/tradejournal/internal/services/analytics"
)

// handleStats handles GET /api/stats with optional account/start/end filters.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	trades, ok := s.queryTrades(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, analytics.Summarize(trades))
}

// handleStatsByStrategy handles GET /api/stats/strategies.
func (s *Server) handleStatsByStrategy(w http.ResponseWriter, r *http.Request) {
	s.handleGrouped(w, r, analytics.ByStrategy)
}

// handleStatsByAccount handles GET /api/stats/accounts.
func (s *Server) handleStatsByAccount(w http.ResponseWriter, r *http.Request) {
	s.handleGrouped(w, r, analytics.ByAccount)
}

func (s *Server) handleGrouped(w http.ResponseWriter, r *http.Request, selector analytics.KeySelector) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	trades, ok := s.queryTrades(w, r)
	if !ok {
		return
	}
	grouped := analytics.GroupBy(trades, selector)
	if grouped == nil {
		grouped = models.GroupedSummary{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"groups": grouped})
}

// handleCurve handles GET /api/curve: the time-ordered
// (exit_time, cumulative_net_profit) pairs for curve rendering.
func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	trades, ok := s.queryTrades(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"points": analytics.EquityCurve(trades)})
}

// handleDistribution handles GET /api/distribution: profit histogram bins.
func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	trades, ok := s.queryTrades(w, r)
	if !ok {
		return
	}
	bins := analytics.ProfitDistribution(trades, analytics.DefaultHistogramBins)
	if bins == nil {
		bins = []models.HistogramBin{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"bins": bins})
}
