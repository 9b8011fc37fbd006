// Package tradedb implements the persistent TradeStore using BadgerHold.
package tradedb

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/bobmcallan/tradejournal/internal/common"
	"github.com/bobmcallan/tradejournal/internal/interfaces"
	"github.com/bobmcallan/tradejournal/internal/models"
)

// Store implements interfaces.TradeStore using BadgerHold.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore opens (or creates) a trade store at path.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create trade db path %s: %w", path, err)
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open trade db at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("TradeDB opened")
	return &Store{db: db, logger: logger}, nil
}

// Insert persists a trade and assigns its ID. The store owns ID
// assignment; any caller-supplied ID is replaced.
func (s *Store) Insert(_ context.Context, trade *models.Trade) (string, error) {
	trade.ID = uuid.New().String()
	if err := s.db.Insert(trade.ID, trade); err != nil {
		return "", fmt.Errorf("failed to insert trade: %w", err)
	}
	return trade.ID, nil
}

// InsertBatch persists trades in order, assigning IDs. Returns the number
// inserted; storage failure stops the batch at that point.
func (s *Store) InsertBatch(ctx context.Context, trades []models.Trade) (int, error) {
	for i := range trades {
		if _, err := s.Insert(ctx, &trades[i]); err != nil {
			return i, err
		}
	}
	s.logger.Debug().Int("count", len(trades)).Msg("Trade batch inserted")
	return len(trades), nil
}

// Get retrieves a single trade by ID.
func (s *Store) Get(_ context.Context, id string) (*models.Trade, error) {
	var trade models.Trade
	if err := s.db.Get(id, &trade); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("trade '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get trade '%s': %w", id, err)
	}
	return &trade, nil
}

// Query returns trades matching q ordered by ExitTime ascending. The
// result is a fresh snapshot; callers may hold it across concurrent
// ingestions safely.
func (s *Store) Query(_ context.Context, q interfaces.TradeQuery) (models.TradeSet, error) {
	var all []models.Trade
	if err := s.db.Find(&all, buildQuery(q)); err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}

	// Time-range bounds are applied post-query: badgerhold comparisons on
	// time.Time fields are exclusive, the contract here is inclusive.
	out := make(models.TradeSet, 0, len(all))
	for _, t := range all {
		if q.Start != nil && t.ExitTime.Before(*q.Start) {
			continue
		}
		if q.End != nil && t.ExitTime.After(*q.End) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExitTime.Before(out[j].ExitTime)
	})
	return out, nil
}

func buildQuery(q interfaces.TradeQuery) *badgerhold.Query {
	var query *badgerhold.Query
	if q.Account != "" {
		query = badgerhold.Where("Account").Eq(q.Account)
	}
	if q.Strategy != "" {
		if query == nil {
			query = badgerhold.Where("Strategy").Eq(q.Strategy)
		} else {
			query = query.And("Strategy").Eq(q.Strategy)
		}
	}
	return query
}

// Accounts returns the distinct account names present, sorted ascending.
func (s *Store) Accounts(_ context.Context) ([]string, error) {
	var all []models.Trade
	if err := s.db.Find(&all, nil); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	seen := make(map[string]bool)
	var accounts []string
	for _, t := range all {
		if !seen[t.Account] {
			seen[t.Account] = true
			accounts = append(accounts, t.Account)
		}
	}
	sort.Strings(accounts)
	return accounts, nil
}

// DeleteAll clears the journal.
func (s *Store) DeleteAll(_ context.Context) (int, error) {
	var all []models.Trade
	if err := s.db.Find(&all, nil); err != nil {
		return 0, fmt.Errorf("failed to enumerate trades: %w", err)
	}
	for _, t := range all {
		if err := s.db.Delete(t.ID, models.Trade{}); err != nil && err != badgerhold.ErrNotFound {
			return 0, fmt.Errorf("failed to delete trade '%s': %w", t.ID, err)
		}
	}
	s.logger.Info().Int("deleted", len(all)).Msg("Journal cleared")
	return len(all), nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ interfaces.TradeStore = (*Store)(nil)
