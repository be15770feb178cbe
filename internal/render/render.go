// Package render draws the analysis dashboard as plain text. It is a
// consumer of the insights aggregates and makes no decisions of its own
// beyond layout.
package render

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dvloznov/bankvision/internal/domain"
	"github.com/dvloznov/bankvision/internal/insights"
)

// Options controls the transaction list portion of the dashboard. Now is
// injected so Today/Yesterday labeling is deterministic.
type Options struct {
	SearchTerm string
	TypeFilter insights.TypeFilter
	Now        time.Time
}

// Dashboard renders the full report: summary, top categories, daily spend
// series, and the grouped transaction list.
func Dashboard(result *domain.AnalysisResult, opts Options) string {
	if opts.TypeFilter == "" {
		opts.TypeFilter = insights.FilterAll
	}

	records := insights.Normalize(result.Transactions)
	aggregates := insights.TopCategories(records)
	trend := insights.DailyTrend(records)
	filtered := insights.Filter(records, opts.SearchTerm, opts.TypeFilter)
	groups := insights.GroupByDate(filtered, opts.Now)

	f := insights.NewCurrencyFormatter()
	currency := result.Summary.Currency

	var b strings.Builder

	writeSummary(&b, result, records, f)
	writeCategories(&b, aggregates, result.Summary.TotalExpense, currency, f)
	writeTrend(&b, trend, currency, f)
	writeGroups(&b, groups, currency, f)

	return b.String()
}

func writeSummary(b *strings.Builder, result *domain.AnalysisResult, records []domain.Transaction, f *insights.CurrencyFormatter) {
	s := result.Summary

	dateRange := s.StatementDateRange
	if dateRange == "" {
		dateRange = "Current Period"
	}

	expenseCount := 0
	for _, tx := range records {
		if tx.Type == domain.Expense {
			expenseCount++
		}
	}

	net := f.FormatWhole(s.NetChange, s.Currency)
	if s.NetChange > 0 {
		net = "+" + net
	}

	fmt.Fprintf(b, "=== Summary (%s) ===\n", dateRange)
	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Net Flow\t%s\n", net)
	fmt.Fprintf(w, "Total Income\t%s\n", f.FormatWhole(s.TotalIncome, s.Currency))
	fmt.Fprintf(w, "Total Spend\t%s across %d transactions\n", f.FormatWhole(s.TotalExpense, s.Currency), expenseCount)
	w.Flush()
	b.WriteString("\n")
}

func writeCategories(b *strings.Builder, aggregates []insights.CategoryAggregate, totalExpense float64, currency string, f *insights.CurrencyFormatter) {
	b.WriteString("=== Top Categories ===\n")
	if len(aggregates) == 0 {
		b.WriteString("No expense categories.\n\n")
		return
	}

	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for i, agg := range aggregates {
		fmt.Fprintf(w, "%d.\t%s\t%s\n", i+1, agg.Name, f.FormatWhole(agg.Value, currency))
	}
	w.Flush()
	fmt.Fprintf(b, "Top item: %d%% of total spend\n\n", insights.TopCategoryShare(aggregates, totalExpense))
}

func writeTrend(b *strings.Builder, trend []insights.DailyPoint, currency string, f *insights.CurrencyFormatter) {
	b.WriteString("=== Daily Spend ===\n")
	if len(trend) == 0 {
		b.WriteString("No daily spend recorded.\n\n")
		return
	}

	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for _, p := range trend {
		fmt.Fprintf(w, "%s\t%s\n", p.Label, f.FormatWhole(p.Spend, currency))
	}
	w.Flush()
	b.WriteString("\n")
}

func writeGroups(b *strings.Builder, groups []insights.TransactionGroup, currency string, f *insights.CurrencyFormatter) {
	b.WriteString("=== Transactions ===\n")
	if len(groups) == 0 {
		b.WriteString("No transactions found. Try adjusting your filters.\n")
		return
	}

	for _, group := range groups {
		fmt.Fprintf(b, "-- %s --\n", group.Label)
		w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
		for _, tx := range group.Transactions {
			amount := f.Format(tx.Amount, currency)
			if tx.Type == domain.Income {
				amount = "+" + amount
			} else {
				amount = "-" + amount
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", tx.Description, tx.Category, amount)
		}
		w.Flush()
	}
}
