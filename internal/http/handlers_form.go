package http

import (
	"html/template"
	"net/http"
	"strconv"

	"budgetapp/internal/core"
	applog "budgetapp/internal/log"
)

// Categories offered by the add-row form.
var Categories = []string{
	"Rent",
	"Groceries",
	"Utilities",
	"Transport",
	"Entertainment",
	"Savings",
	"Insurance",
	"Debt",
	"Miscellaneous",
}

var templateFuncs = template.FuncMap{
	"amount": formatAmount,
}

type chartRow struct {
	Name   string
	Amount float64
	Width  int
}

type indexData struct {
	Budgets    []core.Budget
	Categories []string
	Total      float64
	Chart      []chartRow
	MaxName    string
	LoadFailed bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := applog.FromContext(ctx)

	if s.templates == nil {
		logger.ErrorContext(ctx, "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := indexData{Categories: Categories}
	budgets, err := s.service.ListBudgets(ctx)
	if err != nil {
		logger.LogError(ctx, "List budgets for page failed", err, applog.OpList, nil)
		data.LoadFailed = true
	} else {
		data.Budgets = budgets
		summary := core.SpendingByCategory(budgets)
		data.Total = summary.Total
		data.Chart = chartRows(summary)
		data.MaxName, _ = summary.Max()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		logger.LogError(ctx, "Index template execution failed", err, applog.OpRender, nil)
	}
}

// handleCreateBudgetForm stores a budget submitted from the page and
// redirects back to it.
func (s *Server) handleCreateBudgetForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := applog.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		logger.WarnContext(ctx, "Parse form error", applog.FieldError, err)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	b := core.NewBudget(ParseBudgetForm(r.PostForm))
	created, err := s.service.CreateBudget(ctx, b)
	if err != nil {
		logger.LogError(ctx, "Create budget from form failed", err, applog.OpCreate,
			applog.NewFields().WithBudget("", b.Category, b.Amount))
		http.Error(w, "could not save budget", http.StatusInternalServerError)
		return
	}

	logger.InfoContext(ctx, "Budget created from form",
		applog.NewFields().WithBudget(created.ID, created.Category, created.Amount).ToSlice()...)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// chartRows scales each category to a percentage of the largest one.
func chartRows(summary core.SpendingSummary) []chartRow {
	_, largest := summary.Max()
	rows := make([]chartRow, 0, len(summary.ByCategory))
	for _, c := range summary.ByCategory {
		width := 0
		if largest > 0 && c.Amount > 0 {
			width = int(c.Amount/largest*100 + 0.5)
			// keep tiny values visible
			if width < 2 {
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		rows = append(rows, chartRow{Name: c.Name, Amount: c.Amount, Width: width})
	}
	return rows
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
