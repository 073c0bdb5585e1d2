// Package repository defines the persistence port for budget lines.
// Adapters live in the memory, mongo and sqlite subpackages.
package repository

import (
	"context"
	"errors"

	"budgetapp/internal/core"
)

// ErrUnexpectedID is returned when a store hands back an identifier of a
// type the adapter cannot map to the public string form.
var ErrUnexpectedID = errors.New("unexpected storage identifier")

// BudgetRepository is implemented by every storage engine.
type BudgetRepository interface {
	// Create stores b and returns a copy carrying the storage-assigned ID.
	// Any ID already set on b is ignored.
	Create(ctx context.Context, b core.Budget) (core.Budget, error)

	// List returns every stored budget in store order. An empty store
	// yields an empty, non-nil slice.
	List(ctx context.Context) ([]core.Budget, error)
}
