// Package demo provides a built-in sample analysis result so the dashboard
// can be explored without a statement or an API key.
package demo

import (
	"time"

	"github.com/google/uuid"

	"github.com/dvloznov/bankvision/internal/domain"
)

// Result builds the sample statement, dated relative to now so the Today and
// Yesterday buckets are populated. Summary totals are derived from the line
// items, so the sample never trips the divergence check.
func Result(now time.Time) *domain.AnalysisResult {
	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}

	transactions := []domain.Transaction{
		{ID: uuid.NewString(), Date: day(0), Description: "TECH CORP INC PAYROLL", Amount: 4200.00, Category: "Salary/Income", Type: domain.Income},
		{ID: uuid.NewString(), Date: day(0), Description: "STARBUCKS COFFEE #2043", Amount: 6.45, Category: "Food & Drink", Type: domain.Expense},
		{ID: uuid.NewString(), Date: day(0), Description: "UBER TRIP K291", Amount: 14.20, Category: "Transport", Type: domain.Expense},
		{ID: uuid.NewString(), Date: day(1), Description: "WHOLE FOODS MARKET", Amount: 142.80, Category: "Groceries", Type: domain.Expense},
		{ID: uuid.NewString(), Date: day(1), Description: "SPOTIFY PREMIUM", Amount: 11.99, Category: "Entertainment", Type: domain.Expense},
		{ID: uuid.NewString(), Date: day(2), Description: "SHELL STATION 342", Amount: 45.00, Category: "Transport", Type: domain.Expense},
		{ID: uuid.NewString(), Date: day(2), Description: "AMAZON MARKETPLACE", Amount: 89.50, Category: "Shopping", Type: domain.Expense},
		{ID: uuid.NewString(), Date: day(5), Description: "CITY UTILITIES ELECTRIC", Amount: 125.40, Category: "Utilities", Type: domain.Expense},
		{ID: uuid.NewString(), Date: day(5), Description: "TRANSFER FROM SAVINGS", Amount: 1000.00, Category: "Transfer", Type: domain.Income},
		{ID: uuid.NewString(), Date: day(5), Description: "LUXURY APTS RENT", Amount: 2400.00, Category: "Housing", Type: domain.Expense},
		{ID: uuid.NewString(), Date: day(5), Description: "NETFLIX.COM", Amount: 15.99, Category: "Entertainment", Type: domain.Expense},
	}

	var income, expense float64
	for _, tx := range transactions {
		if tx.Type == domain.Income {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}

	return &domain.AnalysisResult{
		Summary: domain.Summary{
			TotalIncome:        income,
			TotalExpense:       expense,
			NetChange:          income - expense,
			Currency:           "USD",
			StatementDateRange: "Current Month Statement",
		},
		Transactions: transactions,
	}
}
