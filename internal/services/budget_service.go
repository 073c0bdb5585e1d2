package services

import (
	"context"
	"fmt"
	"log/slog"

	"budgetapp/internal/core"
	"budgetapp/internal/repository"
)

// EventPublisher announces budgets that have been stored.
type EventPublisher interface {
	PublishBudgetCreated(ctx context.Context, b core.Budget) error
}

// BudgetService sits between transport and persistence. It forwards calls to
// the repository without validating or reshaping them.
type BudgetService struct {
	repo      repository.BudgetRepository
	publisher EventPublisher
}

func NewBudgetService(repo repository.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

// WithPublisher sets the publisher notified after each create. A nil
// publisher disables notifications.
func (s *BudgetService) WithPublisher(p EventPublisher) *BudgetService {
	s.publisher = p
	return s
}

// CreateBudget stores b and returns the repository's result unchanged.
func (s *BudgetService) CreateBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return core.Budget{}, fmt.Errorf("save budget: %w", err)
	}

	// Best effort: the budget is already stored.
	if s.publisher != nil {
		if err := s.publisher.PublishBudgetCreated(ctx, created); err != nil {
			slog.ErrorContext(ctx, "Failed to publish budget created event",
				"id", created.ID, "error", err)
		}
	}

	return created, nil
}

// ListBudgets returns the repository's list unchanged.
func (s *BudgetService) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	budgets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}
