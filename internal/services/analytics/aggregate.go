package analytics

import "github.com/bobmcallan/tradejournal/internal/models"

// KeySelector extracts the grouping key from a trade. Selectors must be
// pure functions.
type KeySelector func(models.Trade) string

// ByStrategy groups trades by their strategy label.
func ByStrategy(t models.Trade) string { return t.Strategy }

// ByAccount groups trades by their account name.
func ByAccount(t models.Trade) string { return t.Account }

// GroupBy partitions the trade set by key and summarizes each partition.
// Partitions are a disjoint, order-preserving cover of the input; group
// order follows first appearance of each key.
//
// Each partition's NetProfit applies the latest-exit rule within that
// partition, so grouped net-profit figures are deliberately not additive
// with the ungrouped total.
func GroupBy(trades models.TradeSet, selector KeySelector) models.GroupedSummary {
	partitions := make(map[string]models.TradeSet)
	var order []string

	for _, t := range trades {
		key := selector(t)
		if _, seen := partitions[key]; !seen {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], t)
	}

	grouped := make(models.GroupedSummary, 0, len(order))
	for _, key := range order {
		grouped = append(grouped, models.GroupSummary{
			Key:     key,
			Summary: Summarize(partitions[key]),
		})
	}
	return grouped
}
