package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bobmcallan/tradejournal/internal/common"
	"github.com/bobmcallan/tradejournal/internal/models"
)

// Result holds the outcome of one file ingestion: accepted trades and
// rejected rows, both in file order.
type Result struct {
	Trades    []models.Trade    `json:"trades"`
	RowErrors []models.RowError `json:"row_errors"`
}

// Ingestor drives the normalizer over an uploaded CSV export.
type Ingestor struct {
	logger *common.Logger
}

// NewIngestor creates a CSV ingestor.
func NewIngestor(logger *common.Logger) *Ingestor {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Ingestor{logger: logger}
}

// Ingest reads a whole CSV export. A header missing any required column
// fails the file with SchemaError before any row is processed. Row-level
// problems degrade to RowError entries and never abort the batch.
func (i *Ingestor) Ingest(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for idx, name := range header {
		colIndex[trimBOM(name)] = idx
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &models.SchemaError{Missing: missing}
	}

	_, hasCumNet := colIndex[ColCumNetProfit]

	result := &Result{}
	rowIndex := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowIndex++
		if err != nil {
			// Structurally broken row (bare quote, etc) — reject the row,
			// keep the batch going.
			result.RowErrors = append(result.RowErrors, models.RowError{
				Row:    rowIndex,
				Reason: models.RowErrInvalidNumber,
				Detail: err.Error(),
			})
			continue
		}

		row := make(map[string]string, len(colIndex))
		for name, idx := range colIndex {
			if idx < len(record) {
				row[name] = record[idx]
			}
		}

		trade, rerr := NormalizeRow(row, rowIndex)
		if rerr != nil {
			result.RowErrors = append(result.RowErrors, *rerr)
			continue
		}
		result.Trades = append(result.Trades, *trade)
	}

	// The export normally supplies the running balance. When the column is
	// absent entirely, reconstruct it as a running sum in file order.
	if !hasCumNet {
		running := 0.0
		for idx := range result.Trades {
			running += result.Trades[idx].Profit
			result.Trades[idx].CumNetProfit = running
		}
	}

	i.logger.Info().
		Int("accepted", len(result.Trades)).
		Int("rejected", len(result.RowErrors)).
		Msg("CSV ingestion complete")

	return result, nil
}

// trimBOM strips a UTF-8 byte order mark from the first header cell.
func trimBOM(s string) string {
	const bom = "\ufeff"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
