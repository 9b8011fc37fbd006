package models

import (
	"fmt"
	"strings"
)

// Row error reason codes.
const (
	RowErrInvalidNumber    = "INVALID_NUMBER"
	RowErrInvalidTimestamp = "INVALID_TIMESTAMP"
	RowErrInvalidDirection = "INVALID_DIRECTION"
)

// RowError describes a single rejected row during ingestion. The batch
// continues past it; the caller receives all RowErrors in file order.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: %s (%s)", e.Row, e.Reason, e.Field)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// SchemaError is fatal for a whole file: a required header column is
// absent. No rows are processed when it is returned.
type SchemaError struct {
	Missing []string `json:"missing_columns"`
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("csv header missing required columns: %s", strings.Join(e.Missing, ", "))
}

// TooManyTradesError rejects a feedback request whose selection exceeds
// the review cap. The request is never sent.
type TooManyTradesError struct {
	Count int `json:"count"`
	Max   int `json:"max"`
}

func (e *TooManyTradesError) Error() string {
	return fmt.Sprintf("selected %d trades for review, maximum is %d", e.Count, e.Max)
}

// FeedbackUnavailableError wraps a transport or timeout failure from the
// AI feedback service. The core performs no retry; the cause is preserved
// for the caller.
type FeedbackUnavailableError struct {
	Cause error
}

func (e *FeedbackUnavailableError) Error() string {
	return fmt.Sprintf("feedback service unavailable: %v", e.Cause)
}

func (e *FeedbackUnavailableError) Unwrap() error { return e.Cause }
