package insights

import (
	"strconv"
	"strings"
	"time"

	"github.com/dvloznov/bankvision/internal/domain"
)

// TypeFilter narrows the display list to one transaction direction.
type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

// UnknownDate is the group label for records whose date would not parse.
const UnknownDate = "Unknown Date"

// Filter applies the search term and type filter and returns a new slice
// sorted newest first (unparseable dates last). The search is a
// case-insensitive substring match over the description, the category, and
// the decimal string form of the amount. An empty term matches everything.
func Filter(records []domain.Transaction, searchTerm string, typeFilter TypeFilter) []domain.Transaction {
	result := make([]domain.Transaction, 0, len(records))

	term := strings.ToLower(searchTerm)
	for _, tx := range records {
		if term != "" && !matchesTerm(tx, term) {
			continue
		}
		if typeFilter != FilterAll && typeFilter != "" && string(tx.Type) != string(typeFilter) {
			continue
		}
		result = append(result, tx)
	}

	sortByDate(result, true)
	return result
}

func matchesTerm(tx domain.Transaction, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(tx.Description), lowerTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(tx.Category), lowerTerm) {
		return true
	}
	return strings.Contains(strconv.FormatFloat(tx.Amount, 'f', -1, 64), lowerTerm)
}

// GroupByDate buckets an already filtered and sorted list into date-labeled
// groups for display. Labels are evaluated against the supplied current time:
// "Today", "Yesterday", a "Mon, Jan 2, 2006" style label, or UnknownDate for
// records whose date would not parse. Groups appear in first-seen order while
// walking the input, and each group preserves the input's relative order.
// An empty input yields an empty (but non-nil) group list, the "no matches"
// state.
func GroupByDate(records []domain.Transaction, now time.Time) []TransactionGroup {
	groups := []TransactionGroup{}
	index := make(map[string]int)

	yesterday := now.AddDate(0, 0, -1)

	for _, tx := range records {
		label := UnknownDate
		if d, ok := parseDate(tx.Date); ok {
			switch {
			case sameCalendarDay(d, now):
				label = "Today"
			case sameCalendarDay(d, yesterday):
				label = "Yesterday"
			default:
				label = d.Format("Mon, Jan 2, 2006")
			}
		}
		if i, ok := index[label]; ok {
			groups[i].Transactions = append(groups[i].Transactions, tx)
			continue
		}
		index[label] = len(groups)
		groups = append(groups, TransactionGroup{Label: label, Transactions: []domain.Transaction{tx}})
	}
	return groups
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
