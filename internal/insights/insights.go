// Package insights turns the flat, untrusted transaction list produced by the
// extraction provider into the aggregates the presentation layer displays:
// top spending categories, a daily spend series, and date-bucketed transaction
// groups. Everything here is a pure function over in-memory data; none of the
// operations return errors, and malformed upstream values (bad dates, invalid
// currency codes, missing categories) degrade to sentinels instead of failing.
package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/dvloznov/bankvision/internal/domain"
)

// Uncategorized is the category assigned to records the provider left blank.
const Uncategorized = "Uncategorized"

const dateLayout = "2006-01-02"

// CategoryAggregate is the total expense for one category.
type CategoryAggregate struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DailyPoint is the total expense for one short date label ("Jan 2").
type DailyPoint struct {
	Label string  `json:"label"`
	Spend float64 `json:"spend"`
}

// TransactionGroup is one date-labeled bucket of the display list.
type TransactionGroup struct {
	Label        string
	Transactions []domain.Transaction
}

// parseDate parses a provider-supplied date string. Dates are intended to be
// "YYYY-MM-DD" but the provider is probabilistic, so a full timestamp is also
// accepted. The second return value reports whether parsing succeeded.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// sortByDate stably sorts records in place by parsed date. Records with
// unparseable dates always sort last, in both directions; this is the one
// consistent placement rule used everywhere in this package.
func sortByDate(records []domain.Transaction, newestFirst bool) {
	type entry struct {
		tx domain.Transaction
		t  time.Time
		ok bool
	}
	entries := make([]entry, len(records))
	for i, tx := range records {
		e := entry{tx: tx}
		e.t, e.ok = parseDate(tx.Date)
		entries[i] = e
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case !a.ok:
			return false
		case !b.ok:
			return true
		case newestFirst:
			return a.t.After(b.t)
		default:
			return a.t.Before(b.t)
		}
	})
	for i, e := range entries {
		records[i] = e.tx
	}
}

// Totals sums income and expense magnitudes over the line items. The provider
// summary is trusted for display; this exists so callers can detect and log a
// divergence without rewriting the summary.
func Totals(records []domain.Transaction) (income, expense float64) {
	for _, tx := range records {
		if tx.Type == domain.Income {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}
	return income, expense
}
