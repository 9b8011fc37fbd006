package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/tradejournal/internal/app"
	"github.com/bobmcallan/tradejournal/internal/common"
	"github.com/bobmcallan/tradejournal/internal/interfaces"
	"github.com/bobmcallan/tradejournal/internal/models"
	"github.com/bobmcallan/tradejournal/internal/services/ingest"
	"github.com/bobmcallan/tradejournal/internal/services/report"
	"github.com/bobmcallan/tradejournal/internal/services/review"
	"github.com/bobmcallan/tradejournal/internal/storage"
)

// stubAIClient returns canned responses for review handler tests.
type stubAIClient struct {
	response string
	err      error
}

func (c *stubAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return c.response, c.err
}

// newTestServer builds a Server over a temp-dir store. ai may be nil for
// an unconfigured-review server.
func newTestServer(t *testing.T, ai interfaces.AIClient) *Server {
	t.Helper()

	cfg := common.NewDefaultConfig()
	cfg.Storage.Path = t.TempDir()
	logger := common.NewSilentLogger()

	storageManager, err := storage.NewManager(logger, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storageManager.Close() })

	a := &app.App{
		Config:        cfg,
		Logger:        logger,
		Storage:       storageManager,
		AIClient:      ai,
		Ingestor:      ingest.NewIngestor(logger),
		ReportService: report.NewService(logger),
		StartupTime:   time.Now(),
	}
	if ai != nil {
		a.ReviewService = review.NewService(ai, logger)
	}

	return NewServer(a)
}

// seedServerTrades inserts trades directly through the store, returning
// their assigned IDs.
func seedServerTrades(t *testing.T, srv *Server, trades []models.Trade) []string {
	t.Helper()
	store := srv.app.Storage.TradeStore()
	ids := make([]string, 0, len(trades))
	for i := range trades {
		id, err := store.Insert(context.Background(), &trades[i])
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func serverTrade(account, strategy string, profit, cumNet float64, exit time.Time) models.Trade {
	return models.Trade{
		Instrument:   "MES 03-25",
		Account:      account,
		Strategy:     strategy,
		Direction:    models.DirectionLong,
		Quantity:     1,
		EntryPrice:   5000,
		ExitPrice:    5000 + profit,
		EntryTime:    exit.Add(-15 * time.Minute),
		ExitTime:     exit,
		Profit:       profit,
		CumNetProfit: cumNet,
	}
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// multipartCSV builds a multipart body with the CSV under the "file" field.
func multipartCSV(t *testing.T, csvData string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "trades.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeJSON(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}
