package server

import (
	"net/http"

	"github.com/bobmcallan/tradejournal/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Trades
	mux.HandleFunc("/api/trades/import", s.handleTradeImport)
	mux.HandleFunc("/api/trades", s.handleTrades)
	mux.HandleFunc("/api/accounts", s.handleAccounts)

	// Analytics
	mux.HandleFunc("/api/stats/strategies", s.handleStatsByStrategy)
	mux.HandleFunc("/api/stats/accounts", s.handleStatsByAccount)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/curve", s.handleCurve)
	mux.HandleFunc("/api/distribution", s.handleDistribution)

	// Chart rendering
	mux.HandleFunc("/api/charts/equity.png", s.handleChartEquity)
	mux.HandleFunc("/api/charts/outcomes.png", s.handleChartOutcomes)
	mux.HandleFunc("/api/charts/distribution.png", s.handleChartDistribution)
	mux.HandleFunc("/api/charts/strategies.png", s.handleChartStrategies)
	mux.HandleFunc("/api/charts/accounts.png", s.handleChartAccounts)

	// AI review
	mux.HandleFunc("/api/review", s.handleReview)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":       s.app.Config.Environment,
		"storage_path":      s.app.Config.Storage.Path,
		"logging_level":     s.app.Config.Logging.Level,
		"gemini_configured": s.app.AIClient != nil,
		"gemini_model":      s.app.Config.Clients.Gemini.Model,
	})
}
