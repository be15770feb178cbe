package insights

import (
	"math"
	"testing"

	"github.com/dvloznov/bankvision/internal/domain"
)

func TestDailyTrend(t *testing.T) {
	// Deliberately unordered input.
	records := []domain.Transaction{
		{Date: "2024-03-02", Amount: 45, Category: "Transport", Type: domain.Expense},
		{Date: "2024-03-01", Amount: 6.45, Category: "Food", Type: domain.Expense},
		{Date: "2024-03-03", Amount: 4200, Category: "Salary", Type: domain.Income},
		{Date: "2024-03-01", Amount: 14.2, Category: "Transport", Type: domain.Expense},
	}

	got := DailyTrend(records)

	want := []DailyPoint{
		{Label: "Mar 1", Spend: 20.65},
		{Label: "Mar 2", Spend: 45},
	}
	if len(got) != len(want) {
		t.Fatalf("DailyTrend() returned %d points, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Label != want[i].Label || math.Abs(got[i].Spend-want[i].Spend) > 1e-9 {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDailyTrendConservation(t *testing.T) {
	records := []domain.Transaction{
		{Date: "2024-01-05", Amount: 10, Type: domain.Expense},
		{Date: "2024-01-06", Amount: 20, Type: domain.Expense},
		{Date: "2024-01-05", Amount: 30, Type: domain.Expense},
		{Date: "2024-01-07", Amount: 99, Type: domain.Income},
	}

	_, wantTotal := Totals(records)

	var sum float64
	for _, p := range DailyTrend(records) {
		sum += p.Spend
	}
	if math.Abs(sum-wantTotal) > 1e-9 {
		t.Errorf("sum of points = %v, want expense total %v", sum, wantTotal)
	}
}

func TestDailyTrendUnparseableDatesLast(t *testing.T) {
	records := []domain.Transaction{
		{Date: "garbage", Amount: 5, Type: domain.Expense},
		{Date: "2024-02-10", Amount: 10, Type: domain.Expense},
		{Date: "also-garbage", Amount: 7, Type: domain.Expense},
	}

	got := DailyTrend(records)

	if len(got) != 2 {
		t.Fatalf("returned %d points, want 2: %+v", len(got), got)
	}
	if got[0].Label != "Feb 10" {
		t.Errorf("first point = %+v, want Feb 10", got[0])
	}
	last := got[len(got)-1]
	if last.Label != UnknownDay || last.Spend != 12 {
		t.Errorf("last point = %+v, want {%s 12}", last, UnknownDay)
	}
}

func TestDailyTrendLabelMergesAcrossYears(t *testing.T) {
	// Labels carry no year, so the same month/day in different years shares
	// one point. Documented precision limit.
	records := []domain.Transaction{
		{Date: "2023-01-05", Amount: 10, Type: domain.Expense},
		{Date: "2024-01-05", Amount: 20, Type: domain.Expense},
	}

	got := DailyTrend(records)

	if len(got) != 1 || got[0].Label != "Jan 5" || got[0].Spend != 30 {
		t.Errorf("DailyTrend() = %+v, want single merged {Jan 5 30}", got)
	}
}

func TestDailyTrendNoExpenses(t *testing.T) {
	records := []domain.Transaction{
		{Date: "2024-03-03", Amount: 4200, Type: domain.Income},
	}
	if got := DailyTrend(records); len(got) != 0 {
		t.Errorf("DailyTrend() = %+v, want empty", got)
	}
}
