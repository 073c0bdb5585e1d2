package http

import (
	"net/http"

	"budgetapp/internal/core"
	applog "budgetapp/internal/log"
)

// handleListBudgets returns every stored budget as a JSON array.
func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	budgets, err := s.service.ListBudgets(ctx)
	if err != nil {
		applog.FromContext(ctx).LogError(ctx, "List budgets failed", err, applog.OpList, nil)
		_ = InternalServerError().Write(w)
		return
	}
	if budgets == nil {
		budgets = []core.Budget{}
	}
	_ = NewJSONResponse().Body(budgets).Write(w)
}

// handleCreateBudget decodes a budget, applies defaults and stores it.
func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := applog.FromContext(ctx)

	in, err := DecodeBudgetInput(w, r)
	if err != nil {
		logger.WarnContext(ctx, "Rejected budget body", applog.FieldError, err, applog.FieldOperation, applog.OpDecode)
		_ = BadRequestError("invalid JSON body").Write(w)
		return
	}

	b := core.NewBudget(in)
	created, err := s.service.CreateBudget(ctx, b)
	if err != nil {
		logger.LogError(ctx, "Create budget failed", err, applog.OpCreate,
			applog.NewFields().WithBudget("", b.Category, b.Amount))
		_ = InternalServerError().Write(w)
		return
	}

	logger.InfoContext(ctx, "Budget created",
		applog.NewFields().WithBudget(created.ID, created.Category, created.Amount).ToSlice()...)
	_ = NewJSONResponse().Status(http.StatusCreated).Body(created).Write(w)
}
