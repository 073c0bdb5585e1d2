package core

import (
	"strings"
	"time"
)

// Defaults applied when a field is missing from the input.
const (
	DefaultDescription = ""
	DefaultAmount      = 0.0
	DefaultPaid        = false
)

type (
	// Budget is one budget line. ID is assigned by the repository on create
	// and is empty before that.
	Budget struct {
		ID          string  `json:"id,omitempty"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
	}

	// BudgetInput is the caller-supplied shape of a budget line. Optional
	// fields are pointers so an absent field can be told apart from a zero.
	BudgetInput struct {
		Category    string   `json:"category"`
		Description *string  `json:"description,omitempty"`
		Amount      *float64 `json:"amount,omitempty"`
	}

	// DebitOrder is a recurring payment obligation.
	DebitOrder struct {
		ID      string    `json:"id,omitempty"`
		Name    string    `json:"name"`
		Amount  float64   `json:"amount"`
		DueDate time.Time `json:"dueDate"`
		Paid    bool      `json:"paid"`
	}

	// DebitOrderInput is the caller-supplied shape of a debit order. A nil
	// Paid means the field was absent.
	DebitOrderInput struct {
		Name    string    `json:"name"`
		Amount  float64   `json:"amount"`
		DueDate time.Time `json:"dueDate"`
		Paid    *bool     `json:"paid,omitempty"`
	}
)

// NewBudget builds a Budget from input, filling in defaults for missing
// fields. The result never carries an ID.
func NewBudget(in BudgetInput) Budget {
	b := Budget{
		Category:    in.Category,
		Description: DefaultDescription,
		Amount:      DefaultAmount,
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Amount != nil {
		b.Amount = *in.Amount
	}
	return b
}

// NewDebitOrder builds a DebitOrder from input; Paid defaults to false.
func NewDebitOrder(in DebitOrderInput) DebitOrder {
	d := DebitOrder{
		Name:    in.Name,
		Amount:  in.Amount,
		DueDate: in.DueDate,
		Paid:    DefaultPaid,
	}
	if in.Paid != nil {
		d.Paid = *in.Paid
	}
	return d
}

// HasID reports whether the budget has been assigned a storage identifier.
func (b Budget) HasID() bool {
	return strings.TrimSpace(b.ID) != ""
}

// WithID returns a copy of b carrying the given identifier.
func (b Budget) WithID(id string) Budget {
	b.ID = id
	return b
}
