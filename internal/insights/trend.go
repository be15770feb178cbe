package insights

import (
	"github.com/dvloznov/bankvision/internal/domain"
)

// UnknownDay is the trend label collecting expenses whose date would not
// parse. It always appears last because unparseable dates sort last.
const UnknownDay = "Unknown"

// DailyTrend computes the chronological daily expense series. Records are
// sorted ascending by parsed date (input is untouched), expenses are grouped
// by a short "Jan 2" label, and labels keep their first-seen order.
//
// The label carries no year, so expenses from the same month/day of different
// years merge into one point. Statements cover a single period in practice;
// this is an accepted precision limit.
func DailyTrend(records []domain.Transaction) []DailyPoint {
	sorted := make([]domain.Transaction, len(records))
	copy(sorted, records)
	sortByDate(sorted, false)

	var points []DailyPoint
	index := make(map[string]int)

	for _, tx := range sorted {
		if tx.Type != domain.Expense {
			continue
		}
		label := UnknownDay
		if d, ok := parseDate(tx.Date); ok {
			label = d.Format("Jan 2")
		}
		if i, ok := index[label]; ok {
			points[i].Spend += tx.Amount
			continue
		}
		index[label] = len(points)
		points = append(points, DailyPoint{Label: label, Spend: tx.Amount})
	}
	return points
}
