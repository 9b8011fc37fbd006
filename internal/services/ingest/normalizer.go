// Package ingest parses platform trade exports into canonical trades.
package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bobmcallan/tradejournal/internal/models"
)

// Column names as they appear in the platform's CSV export.
const (
	ColTradeNumber  = "Trade number"
	ColInstrument   = "Instrument"
	ColAccount      = "Account"
	ColStrategy     = "Strategy"
	ColMarketPos    = "Market pos."
	ColQty          = "Qty"
	ColEntryPrice   = "Entry price"
	ColExitPrice    = "Exit price"
	ColEntryTime    = "Entry time"
	ColExitTime     = "Exit time"
	ColEntryName    = "Entry name"
	ColExitName     = "Exit name"
	ColProfit       = "Profit"
	ColCumNetProfit = "Cum. net profit"
	ColCommission   = "Commission"
	ColMAE          = "MAE"
	ColMFE          = "MFE"
)

// RequiredColumns must all be present in the header; a missing one fails
// the whole file with SchemaError before any row is processed.
var RequiredColumns = []string{
	ColInstrument,
	ColAccount,
	ColMarketPos,
	ColQty,
	ColEntryPrice,
	ColExitPrice,
	ColEntryTime,
	ColExitTime,
	ColProfit,
}

// timeLayouts are the export timestamp formats seen across platform
// regional settings, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04 PM",
}

// NormalizeRow coerces one raw row into a Trade. It is pure: no I/O, no
// side effects. On failure it returns a RowError carrying the row index
// and reason code; the trade is nil.
func NormalizeRow(row map[string]string, rowIndex int) (*models.Trade, *models.RowError) {
	qty, rerr := parseQuantity(row[ColQty], rowIndex)
	if rerr != nil {
		return nil, rerr
	}

	entryPrice, rerr := parseRequiredNumber(row[ColEntryPrice], ColEntryPrice, rowIndex)
	if rerr != nil {
		return nil, rerr
	}
	exitPrice, rerr := parseRequiredNumber(row[ColExitPrice], ColExitPrice, rowIndex)
	if rerr != nil {
		return nil, rerr
	}
	if entryPrice <= 0 || exitPrice <= 0 {
		return nil, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidNumber, Field: ColEntryPrice, Detail: "price must be positive"}
	}

	profit, rerr := parseRequiredNumber(row[ColProfit], ColProfit, rowIndex)
	if rerr != nil {
		return nil, rerr
	}

	entryTime, rerr := parseTimestamp(row[ColEntryTime], ColEntryTime, rowIndex)
	if rerr != nil {
		return nil, rerr
	}
	exitTime, rerr := parseTimestamp(row[ColExitTime], ColExitTime, rowIndex)
	if rerr != nil {
		return nil, rerr
	}
	if exitTime.Before(entryTime) {
		return nil, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidTimestamp, Field: ColExitTime, Detail: "exit time before entry time"}
	}

	direction, rerr := parseDirection(row[ColMarketPos], rowIndex)
	if rerr != nil {
		return nil, rerr
	}

	strategy := strings.TrimSpace(row[ColStrategy])
	if strategy == "" {
		strategy = models.StrategyLabelUnlabeled
	}

	commission := 0.0
	if raw := strings.TrimSpace(row[ColCommission]); raw != "" {
		c, ok := parseMoney(raw)
		if !ok || c < 0 {
			return nil, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidNumber, Field: ColCommission}
		}
		commission = c
	}

	cumNet := 0.0
	if raw := strings.TrimSpace(row[ColCumNetProfit]); raw != "" {
		c, ok := parseMoney(raw)
		if !ok {
			return nil, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidNumber, Field: ColCumNetProfit}
		}
		cumNet = c
	}

	mae, rerr := parseOptionalNumber(row[ColMAE], ColMAE, rowIndex)
	if rerr != nil {
		return nil, rerr
	}
	mfe, rerr := parseOptionalNumber(row[ColMFE], ColMFE, rowIndex)
	if rerr != nil {
		return nil, rerr
	}

	return &models.Trade{
		Instrument:   strings.TrimSpace(row[ColInstrument]),
		Account:      strings.TrimSpace(row[ColAccount]),
		Strategy:     strategy,
		Direction:    direction,
		Quantity:     qty,
		EntryPrice:   entryPrice,
		ExitPrice:    exitPrice,
		EntryTime:    entryTime,
		ExitTime:     exitTime,
		Profit:       profit,
		CumNetProfit: cumNet,
		Commission:   commission,
		MAE:          mae,
		MFE:          mfe,
	}, nil
}

// parseMoney coerces a platform numeric string, stripping currency
// formatting ("$1,234.50") and treating parenthesised values as negative.
func parseMoney(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

func parseRequiredNumber(raw, field string, rowIndex int) (float64, *models.RowError) {
	v, ok := parseMoney(raw)
	if !ok {
		return 0, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidNumber, Field: field}
	}
	return v, nil
}

// parseOptionalNumber returns nil for a blank value: absent MAE/MFE means
// "unknown", which is distinct from a measured zero.
func parseOptionalNumber(raw, field string, rowIndex int) (*float64, *models.RowError) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, ok := parseMoney(raw)
	if !ok {
		return nil, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidNumber, Field: field}
	}
	return &v, nil
}

func parseQuantity(raw string, rowIndex int) (int, *models.RowError) {
	v, ok := parseMoney(raw)
	if !ok || v <= 0 || v != math.Trunc(v) {
		return 0, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidNumber, Field: ColQty}
	}
	return int(v), nil
}

func parseTimestamp(raw, field string, rowIndex int) (time.Time, *models.RowError) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidTimestamp, Field: field}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidTimestamp, Field: field, Detail: s}
}

func parseDirection(raw string, rowIndex int) (models.Direction, *models.RowError) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "long":
		return models.DirectionLong, nil
	case "short":
		return models.DirectionShort, nil
	default:
		return "", &models.RowError{Row: rowIndex, Reason: models.RowErrInvalidDirection, Field: ColMarketPos, Detail: raw}
	}
}
