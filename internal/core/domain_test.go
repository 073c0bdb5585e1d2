package core

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewBudgetDefaults(t *testing.T) {
	b := NewBudget(BudgetInput{Category: "Groceries"})
	if b.Category != "Groceries" {
		t.Fatalf("category = %q", b.Category)
	}
	if b.Description != "" || b.Amount != 0 {
		t.Fatalf("expected defaults, got %+v", b)
	}
	if b.HasID() {
		t.Fatalf("new budget must not carry an id: %+v", b)
	}
}

func TestNewBudgetKeepsSuppliedFields(t *testing.T) {
	desc := "weekly shop"
	amt := 250.5
	b := NewBudget(BudgetInput{Category: "Groceries", Description: &desc, Amount: &amt})
	if b.Description != desc || b.Amount != amt {
		t.Fatalf("unexpected budget: %+v", b)
	}
}

func TestNewBudgetPassesThroughOddInput(t *testing.T) {
	neg := -10.0
	b := NewBudget(BudgetInput{Amount: &neg})
	if b.Category != "" || b.Amount != -10 {
		t.Fatalf("input should pass through unvalidated, got %+v", b)
	}
}

func TestBudgetInputFromJSON(t *testing.T) {
	cases := []struct {
		body string
		want Budget
	}{
		{`{"category":"Rent","amount":5000}`, Budget{Category: "Rent", Amount: 5000}},
		{`{"category":"Rent"}`, Budget{Category: "Rent"}},
		{`{"category":"Rent","description":"flat","amount":null}`, Budget{Category: "Rent", Description: "flat"}},
		{`{"id":"abc","category":"Rent"}`, Budget{Category: "Rent"}},
	}
	for i, tc := range cases {
		var in BudgetInput
		if err := json.Unmarshal([]byte(tc.body), &in); err != nil {
			t.Fatalf("case %d: unmarshal: %v", i, err)
		}
		if got := NewBudget(in); got != tc.want {
			t.Fatalf("case %d: got %+v, want %+v", i, got, tc.want)
		}
	}
}

func TestBudgetJSONShape(t *testing.T) {
	data, err := json.Marshal(Budget{ID: "1", Category: "Rent", Amount: 5000})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, part := range []string{`"id":"1"`, `"category":"Rent"`, `"description":""`, `"amount":5000`} {
		if !strings.Contains(s, part) {
			t.Fatalf("missing %s in %s", part, s)
		}
	}
}

func TestWithID(t *testing.T) {
	b := Budget{Category: "Rent"}
	got := b.WithID("42")
	if got.ID != "42" || got.Category != "Rent" {
		t.Fatalf("unexpected: %+v", got)
	}
	if b.ID != "" {
		t.Fatalf("WithID must not mutate the receiver")
	}
}

func TestNewDebitOrderDefaults(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d := NewDebitOrder(DebitOrderInput{Name: "Insurance", Amount: 450, DueDate: due})
	if d.Paid {
		t.Fatalf("paid should default to false")
	}
	if d.Name != "Insurance" || d.Amount != 450 || !d.DueDate.Equal(due) {
		t.Fatalf("unexpected debit order: %+v", d)
	}

	paid := true
	d = NewDebitOrder(DebitOrderInput{Name: "Gym", Paid: &paid})
	if !d.Paid {
		t.Fatalf("explicit paid should be kept")
	}
}
