package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/tradejournal/internal/models"
)

func statsFixture(t *testing.T, srv *Server) {
	t.Helper()
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	seedServerTrades(t, srv, []models.Trade{
		serverTrade("Sim101", "ORB", 100, 100, base),
		serverTrade("Sim101", "Pullback", -40, 60, base.Add(time.Hour)),
	})
}

func TestHandleStats(t *testing.T) {
	srv := newTestServer(t, nil)
	statsFixture(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeJSON(t, rec.Body)

	assert.Equal(t, 2.0, resp["trade_count"])
	assert.Equal(t, 0.5, resp["win_rate"])
	assert.Equal(t, 60.0, resp["total_profit"])
	assert.Equal(t, 30.0, resp["average_profit"])
	assert.Equal(t, 2.5, resp["risk_reward_ratio"])
	assert.Equal(t, 30.0, resp["expectancy"])
	assert.Equal(t, 60.0, resp["net_profit"])
}

func TestHandleStats_EmptyJournal(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.Equal(t, 0.0, resp["trade_count"])
	// Undefined risk/reward serializes as null.
	assert.Nil(t, resp["risk_reward_ratio"])
}

func TestHandleStatsByStrategy(t *testing.T) {
	srv := newTestServer(t, nil)
	statsFixture(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/strategies", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeJSON(t, rec.Body)

	groups := resp["groups"].([]interface{})
	require.Len(t, groups, 2)
	first := groups[0].(map[string]interface{})
	assert.Equal(t, "ORB", first["key"])
	summary := first["summary"].(map[string]interface{})
	assert.Equal(t, 1.0, summary["trade_count"])
	assert.Equal(t, 100.0, summary["total_profit"])
}

func TestHandleStatsByAccount_Empty(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/accounts", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.Equal(t, []interface{}{}, resp["groups"])
}

func TestHandleCurve(t *testing.T) {
	srv := newTestServer(t, nil)
	statsFixture(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/curve", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON(t, rec.Body)

	points := resp["points"].([]interface{})
	require.Len(t, points, 2)
	first := points[0].(map[string]interface{})
	assert.Equal(t, 100.0, first["cumulative_net_profit"])
}

func TestHandleDistribution(t *testing.T) {
	srv := newTestServer(t, nil)
	statsFixture(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/distribution", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON(t, rec.Body)

	bins := resp["bins"].([]interface{})
	require.NotEmpty(t, bins)

	total := 0.0
	for _, b := range bins {
		total += b.(map[string]interface{})["count"].(float64)
	}
	assert.Equal(t, 2.0, total)
}

func TestHandleChartEquity(t *testing.T) {
	srv := newTestServer(t, nil)
	statsFixture(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/charts/equity.png", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Greater(t, rec.Body.Len(), 4)
}

func TestHandleChartEquity_NotEnoughData(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/charts/equity.png", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleChartStrategies(t *testing.T) {
	srv := newTestServer(t, nil)
	statsFixture(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/charts/strategies.png", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}
