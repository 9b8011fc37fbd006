// Package storage provides the top-level Manager for the journal's
// persistent stores.
package storage

import (
	"fmt"

	"github.com/bobmcallan/tradejournal/internal/common"
	"github.com/bobmcallan/tradejournal/internal/interfaces"
	"github.com/bobmcallan/tradejournal/internal/storage/tradedb"
)

// Manager coordinates the storage backends. The journal currently has a
// single area (the trade store), kept behind a manager so callers wire
// against interfaces rather than a concrete backend.
type Manager struct {
	trades *tradedb.Store
	logger *common.Logger
}

// NewManager opens all storage areas from config.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	tradeStore, err := tradedb.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trade store: %w", err)
	}

	logger.Info().Str("path", config.Storage.Path).Msg("Storage manager initialized")

	return &Manager{trades: tradeStore, logger: logger}, nil
}

// TradeStore returns the persistent trade collaborator.
func (m *Manager) TradeStore() interfaces.TradeStore {
	return m.trades
}

// Close releases all storage resources.
func (m *Manager) Close() error {
	if m.trades != nil {
		return m.trades.Close()
	}
	return nil
}
