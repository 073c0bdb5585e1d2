package memory

import (
	"context"
	"strconv"
	"sync"

	"budgetapp/internal/core"
	"budgetapp/internal/repository"
)

var _ repository.BudgetRepository = (*Store)(nil)

// Store keeps budgets in process memory. IDs are 1..n in insertion order.
type Store struct {
	mu    sync.Mutex
	items []core.Budget
}

func New() *Store {
	return &Store{}
}

// NewWithItems seeds the store; seeded items get fresh IDs.
func NewWithItems(items ...core.Budget) *Store {
	s := New()
	for _, b := range items {
		_, _ = s.Create(context.Background(), b)
	}
	return s
}

// Create stores the budget and returns it with its assigned ID.
func (s *Store) Create(_ context.Context, b core.Budget) (core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := b.WithID(strconv.Itoa(len(s.items) + 1))
	s.items = append(s.items, created)
	return created, nil
}

// List returns a copy of the stored budgets.
func (s *Store) List(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Budget, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Len returns the number of stored budgets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
