package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/bobmcallan/tradejournal/internal/interfaces"
	"github.com/bobmcallan/tradejournal/internal/models"
	"github.com/bobmcallan/tradejournal/internal/services/analytics"
)

// maxUploadBytes bounds an uploaded CSV export.
const maxUploadBytes = 32 << 20 // 32MB

// handleTradeImport handles POST /api/trades/import (multipart CSV upload).
func (s *Server) handleTradeImport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "multipart 'file' field is required: "+err.Error())
		return
	}
	defer file.Close()

	result, err := s.app.Ingestor.Ingest(file)
	if err != nil {
		var schemaErr *models.SchemaError
		if errors.As(err, &schemaErr) {
			WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":           schemaErr.Error(),
				"code":            "SCHEMA_ERROR",
				"missing_columns": schemaErr.Missing,
			})
			return
		}
		WriteError(w, http.StatusBadRequest, "ingestion failed: "+err.Error())
		return
	}

	inserted, err := s.app.Storage.TradeStore().InsertBatch(r.Context(), result.Trades)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "failed to store trades: "+err.Error())
		return
	}

	s.logger.Info().
		Str("filename", header.Filename).
		Int("imported", inserted).
		Int("rejected", len(result.RowErrors)).
		Msg("Trade import complete")

	rowErrors := result.RowErrors
	if rowErrors == nil {
		rowErrors = []models.RowError{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"imported":   inserted,
		"skipped":    len(result.RowErrors),
		"row_errors": rowErrors,
	})
}

// handleTrades dispatches GET /api/trades (filtered list) and
// DELETE /api/trades (clear journal).
func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		trades, ok := s.queryTrades(w, r)
		if !ok {
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"count":  len(trades),
			"trades": trades,
		})
	case http.MethodDelete:
		deleted, err := s.app.Storage.TradeStore().DeleteAll(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to clear journal: "+err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"deleted": deleted})
	default:
		w.Header().Set("Allow", "GET, DELETE")
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleAccounts handles GET /api/accounts.
func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	accounts, err := s.app.Storage.TradeStore().Accounts(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "failed to list accounts: "+err.Error())
		return
	}
	if accounts == nil {
		accounts = []string{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"accounts": accounts})
}

// queryTrades resolves the account/start/end query parameters, queries the
// store, and applies the filter engine. Writes the error response itself
// when parameters are malformed.
func (s *Server) queryTrades(w http.ResponseWriter, r *http.Request) (models.TradeSet, bool) {
	q := r.URL.Query()
	filter := analytics.TradeFilter{Account: q.Get("account")}

	if raw := q.Get("start"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid 'start' parameter: "+raw)
			return nil, false
		}
		filter.Start = &t
	}
	if raw := q.Get("end"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid 'end' parameter: "+raw)
			return nil, false
		}
		// A bare date means "through the end of that day".
		if len(raw) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.End = &t
	}

	trades, err := s.app.Storage.TradeStore().Query(r.Context(), interfaces.TradeQuery{Account: filter.Account})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "failed to query trades: "+err.Error())
		return nil, false
	}

	return analytics.Filter(trades, filter), true
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
