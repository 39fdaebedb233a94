package analytics

import (
	"sort"

	"budgetdash/internal/models"
)

// PieSliceLimit caps the category breakdown chart.
const PieSliceLimit = 8

// TopMerchantLimit caps the per-category merchant breakdown.
const TopMerchantLimit = 3

// PieSlice is one wedge of the category breakdown, with the delta
// versus the same category's spend in the previous period.
type PieSlice struct {
	CategoryID  string
	Name        string
	Icon        string
	AmountCents int64
	PrevCents   int64
	DeltaCents  int64
}

// PieBreakdown returns the category spend map over the fully filtered
// set, sorted by amount descending (ties by name), truncated to the
// top slices.
func PieBreakdown(state models.AppState, f Filter) []PieSlice {
	current := CategorySpend(FilterTransactions(state, f))
	previous := CategorySpend(FilterTransactions(state, f.Previous()))

	slices := make([]PieSlice, 0, len(current))
	for id, cents := range current {
		c, _ := state.CategoryByID(id)
		slices = append(slices, PieSlice{
			CategoryID:  id,
			Name:        state.CategoryName(id),
			Icon:        c.Icon,
			AmountCents: cents,
			PrevCents:   previous[id],
			DeltaCents:  cents - previous[id],
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		if slices[i].AmountCents != slices[j].AmountCents {
			return slices[i].AmountCents > slices[j].AmountCents
		}
		return slices[i].Name < slices[j].Name
	})
	if len(slices) > PieSliceLimit {
		slices = slices[:PieSliceLimit]
	}
	return slices
}

// MerchantStat is one merchant's share of a category.
type MerchantStat struct {
	Merchant   string
	Count      int
	TotalCents int64
}

// CategoryStat backs the hover/detail view for a category.
type CategoryStat struct {
	CategoryID   string
	Count        int
	TopMerchants []MerchantStat
}

// CategoryStats computes, per category, the expense transaction count
// and the top merchants by total spend (ties by merchant name),
// truncated to the top three.
func CategoryStats(txs []models.Transaction) map[string]CategoryStat {
	type key struct{ category, merchant string }
	perMerchant := make(map[key]*MerchantStat)
	counts := make(map[string]int)

	for _, tx := range txs {
		if tx.Type == models.TypeIncome {
			continue
		}
		counts[tx.CategoryID]++
		k := key{tx.CategoryID, tx.Merchant}
		stat, ok := perMerchant[k]
		if !ok {
			stat = &MerchantStat{Merchant: tx.Merchant}
			perMerchant[k] = stat
		}
		stat.Count++
		stat.TotalCents += tx.AmountCents
	}

	stats := make(map[string]CategoryStat, len(counts))
	for k, merchant := range perMerchant {
		stat := stats[k.category]
		stat.CategoryID = k.category
		stat.Count = counts[k.category]
		stat.TopMerchants = append(stat.TopMerchants, *merchant)
		stats[k.category] = stat
	}
	for id, stat := range stats {
		sort.SliceStable(stat.TopMerchants, func(i, j int) bool {
			if stat.TopMerchants[i].TotalCents != stat.TopMerchants[j].TotalCents {
				return stat.TopMerchants[i].TotalCents > stat.TopMerchants[j].TotalCents
			}
			return stat.TopMerchants[i].Merchant < stat.TopMerchants[j].Merchant
		})
		if len(stat.TopMerchants) > TopMerchantLimit {
			stat.TopMerchants = stat.TopMerchants[:TopMerchantLimit]
		}
		stats[id] = stat
	}
	return stats
}
