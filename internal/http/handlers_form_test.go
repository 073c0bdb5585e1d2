package http

import (
	"testing"

	"budgetapp/internal/core"
)

func TestChartRows(t *testing.T) {
	summary := core.SpendingByCategory([]core.Budget{
		{Category: "Rent", Amount: 1000},
		{Category: "Groceries", Amount: 250},
		{Category: "Debt", Amount: 1},
		{Category: "Savings", Amount: 0},
	})

	rows := chartRows(summary)
	want := map[string]int{"Rent": 100, "Groceries": 25, "Debt": 2, "Savings": 0}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for _, r := range rows {
		if r.Width != want[r.Name] {
			t.Errorf("%s width = %d, want %d", r.Name, r.Width, want[r.Name])
		}
	}
}

func TestChartRows_Empty(t *testing.T) {
	if rows := chartRows(core.SpendingSummary{}); len(rows) != 0 {
		t.Errorf("expected no rows, got %v", rows)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(5000); got != "5000.00" {
		t.Errorf("formatAmount(5000) = %q", got)
	}
	if got := formatAmount(12.345); got != "12.35" && got != "12.34" {
		t.Errorf("formatAmount(12.345) = %q", got)
	}
}
