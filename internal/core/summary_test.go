package core

import "testing"

func TestSpendingByCategory(t *testing.T) {
	s := SpendingByCategory([]Budget{
		{Category: "Rent", Amount: 5000},
		{Category: "Groceries", Amount: 100},
		{Category: "Rent", Amount: 200},
		{Category: "", Amount: 5},
	})
	if s.Total != 5305 {
		t.Fatalf("total = %v", s.Total)
	}
	if len(s.ByCategory) != 3 {
		t.Fatalf("categories = %+v", s.ByCategory)
	}
	want := []CategoryAmount{
		{Name: "Rent", Amount: 5200},
		{Name: "Groceries", Amount: 100},
		{Name: UncategorizedName, Amount: 5},
	}
	for i, w := range want {
		if s.ByCategory[i] != w {
			t.Fatalf("row %d = %+v, want %+v", i, s.ByCategory[i], w)
		}
	}
	name, largest := s.Max()
	if name != "Rent" || largest != 5200 {
		t.Fatalf("max = %s %v", name, largest)
	}
}

func TestSpendingByCategoryEmpty(t *testing.T) {
	s := SpendingByCategory(nil)
	if s.Total != 0 || len(s.ByCategory) != 0 {
		t.Fatalf("expected empty summary, got %+v", s)
	}
	if name, _ := s.Max(); name != "" {
		t.Fatalf("expected no max, got %q", name)
	}
}
