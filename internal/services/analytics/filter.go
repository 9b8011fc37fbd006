package analytics

import (
	"time"

	"github.com/bobmcallan/tradejournal/internal/models"
)

// TradeFilter narrows a trade set. Zero-value fields mean no filtering:
// an empty Account matches all accounts, nil bounds are unbounded.
type TradeFilter struct {
	Account string
	Start   *time.Time // inclusive, on ExitTime
	End     *time.Time // inclusive, on ExitTime
}

// Filter returns the sub-sequence of trades matching f, preserving the
// input order. A range with Start after End yields an empty result, not
// an error.
func Filter(trades models.TradeSet, f TradeFilter) models.TradeSet {
	out := make(models.TradeSet, 0, len(trades))
	for _, t := range trades {
		if f.Account != "" && t.Account != f.Account {
			continue
		}
		if f.Start != nil && t.ExitTime.Before(*f.Start) {
			continue
		}
		if f.End != nil && t.ExitTime.After(*f.End) {
			continue
		}
		out = append(out, t)
	}
	return out
}
