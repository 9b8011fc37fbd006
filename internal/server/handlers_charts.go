package server

import (
	"net/http"

	"github.com/bobmcallan/tradejournal/internal/services/analytics"
)

// handleChartEquity handles GET /api/charts/equity.png.
func (s *Server) handleChartEquity(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	trades, ok := s.queryTrades(w, r)
	if !ok {
		return
	}
	png, err := s.app.ReportService.RenderEquityCurve(analytics.EquityCurve(trades))
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, "cannot render equity curve: "+err.Error())
		return
	}
	WritePNG(w, png)
}

// handleChartOutcomes handles GET /api/charts/outcomes.png.
func (s *Server) handleChartOutcomes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	trades, ok := s.queryTrades(w, r)
	if !ok {
		return
	}
	png, err := s.app.ReportService.RenderOutcomes(analytics.Summarize(trades))
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, "cannot render outcomes chart: "+err.Error())
		return
	}
	WritePNG(w, png)
}

// handleChartDistribution handles GET /api/charts/distribution.png.
func (s *Server) handleChartDistribution(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	trades, ok := s.queryTrades(w, r)
	if !ok {
		return
	}
	bins := analytics.ProfitDistribution(trades, analytics.DefaultHistogramBins)
	png, err := s.app.ReportService.RenderDistribution(bins)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, "cannot render distribution chart: "+err.Error())
		return
	}
	WritePNG(w, png)
}

// handleChartStrategies handles GET /api/charts/strategies.png.
func (s *Server) handleChartStrategies(w http.ResponseWriter, r *http.Request) {
	s.handleGroupChart(w, r, "Profit by Strategy", analytics.ByStrategy)
}

// handleChartAccounts handles GET /api/charts/accounts.png.
func (s *Server) handleChartAccounts(w http.ResponseWriter, r *http.Request) {
	s.handleGroupChart(w, r, "Profit by Account", analytics.ByAccount)
}

func (s *Server) handleGroupChart(w http.ResponseWriter, r *http.Request, title string, selector analytics.KeySelector) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	trades, ok := s.queryTrades(w, r)
	if !ok {
		return
	}
	png, err := s.app.ReportService.RenderGroupProfit(title, analytics.GroupBy(trades, selector))
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, "cannot render group chart: "+err.Error())
		return
	}
	WritePNG(w, png)
}
