package insights

import (
	"math"
	"sort"
	"strings"

	"github.com/dvloznov/bankvision/internal/domain"
)

// TopCategoryCount is how many category aggregates survive truncation.
// Categories ranked below this are dropped, not merged into an "Other" bucket.
const TopCategoryCount = 5

// TopCategories sums expense amounts per category and returns the top
// aggregates sorted descending by value. Ties keep the categories' first-seen
// order. Income records are ignored. Records are expected to be normalized,
// but a blank category still lands in Uncategorized rather than its own
// empty-named bucket.
func TopCategories(records []domain.Transaction) []CategoryAggregate {
	var aggs []CategoryAggregate
	index := make(map[string]int)

	for _, tx := range records {
		if tx.Type != domain.Expense {
			continue
		}
		name := tx.Category
		if strings.TrimSpace(name) == "" {
			name = Uncategorized
		}
		if i, ok := index[name]; ok {
			aggs[i].Value += tx.Amount
			continue
		}
		index[name] = len(aggs)
		aggs = append(aggs, CategoryAggregate{Name: name, Value: tx.Amount})
	}

	sort.SliceStable(aggs, func(i, j int) bool {
		return aggs[i].Value > aggs[j].Value
	})
	if len(aggs) > TopCategoryCount {
		aggs = aggs[:TopCategoryCount]
	}
	return aggs
}

// TopCategoryShare is the leading category's share of total expense, as a
// rounded percentage. It is 0, never NaN or an error, when there are no
// expense aggregates or totalExpense is zero.
func TopCategoryShare(aggs []CategoryAggregate, totalExpense float64) int {
	if len(aggs) == 0 || totalExpense == 0 {
		return 0
	}
	return int(math.Round(aggs[0].Value / totalExpense * 100))
}
