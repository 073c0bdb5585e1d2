package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestDecodeBudgetInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		category string
		hasDesc  bool
		hasAmt   bool
	}{
		{"full", `{"category":"Rent","description":"flat","amount":5000}`, false, "Rent", true, true},
		{"category only", `{"category":"Groceries"}`, false, "Groceries", false, false},
		{"unknown fields ignored", `{"category":"Debt","colour":"red"}`, false, "Debt", false, false},
		{"keeps category verbatim", `{"category":"  Rent\u0007 "}`, false, "  Rent\u0007 ", false, false},
		{"trailing whitespace", "{\"category\":\"Rent\"}\n  ", false, "Rent", false, false},
		{"empty body", ``, false, "", false, false},
		{"truncated", `{"category":`, true, "", false, false},
		{"wrong type", `{"amount":"lots"}`, true, "", false, false},
		{"trailing garbage", `{"category":"x"} junk`, true, "", false, false},
		{"two objects", `{"category":"x"}{"category":"y"}`, true, "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/budgets", strings.NewReader(tt.body))
			in, err := DecodeBudgetInput(httptest.NewRecorder(), r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errMalformedBody) {
					t.Errorf("expected errMalformedBody, got %v", err)
				}
				return
			}
			if in.Category != tt.category {
				t.Errorf("category = %q, want %q", in.Category, tt.category)
			}
			if (in.Description != nil) != tt.hasDesc || (in.Amount != nil) != tt.hasAmt {
				t.Errorf("presence mismatch: %+v", in)
			}
		})
	}
}

func TestParseBudgetForm(t *testing.T) {
	in := ParseBudgetForm(url.Values{"category": {"Transport"}, "description": {" bus "}, "amount": {"12,50"}})
	if in.Category != "Transport" || in.Description == nil || *in.Description != "bus" {
		t.Errorf("unexpected input %+v", in)
	}
	if in.Amount == nil || *in.Amount != 12.5 {
		t.Errorf("amount = %v", in.Amount)
	}

	blank := ParseBudgetForm(url.Values{"category": {"Savings"}, "description": {""}, "amount": {"abc"}})
	if blank.Description != nil || blank.Amount != nil {
		t.Errorf("blank fields should be missing: %+v", blank)
	}
}
