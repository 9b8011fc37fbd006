// Package interfaces defines collaborator contracts for the trade journal.
package interfaces

import (
	"context"
	"time"

	"github.com/bobmcallan/tradejournal/internal/models"
)

// TradeStore is the persistent trade collaborator. Implementations are
// assumed already-consistent; the core does not retry or wrap them in
// transactions.
type TradeStore interface {
	// Insert persists a trade, assigning and returning its ID.
	Insert(ctx context.Context, trade *models.Trade) (string, error)

	// InsertBatch persists trades in order, assigning IDs. Returns the
	// number inserted; stops at the first storage failure.
	InsertBatch(ctx context.Context, trades []models.Trade) (int, error)

	// Get retrieves a single trade by ID.
	Get(ctx context.Context, id string) (*models.Trade, error)

	// Query returns trades matching the filter, ordered by ExitTime
	// ascending. The returned slice is a fresh snapshot.
	Query(ctx context.Context, q TradeQuery) (models.TradeSet, error)

	// Accounts returns the distinct account names present in the store,
	// sorted ascending.
	Accounts(ctx context.Context) ([]string, error)

	// DeleteAll clears the journal, returning the number of trades removed.
	DeleteAll(ctx context.Context) (int, error)

	Close() error
}

// TradeQuery narrows a store query. Zero values mean unfiltered.
type TradeQuery struct {
	Account  string
	Strategy string
	Start    *time.Time // inclusive lower bound on ExitTime
	End      *time.Time // inclusive upper bound on ExitTime
}
