package memory

import (
	"context"
	"fmt"
	"sync"

	"budgetapp/internal/core"
	"budgetapp/internal/sheets"
)

var _ sheets.BudgetExporter = (*Exporter)(nil)

// Exporter keeps exported budgets in memory. The worker uses it when no
// spreadsheet is configured.
type Exporter struct {
	mu    sync.Mutex
	items []core.Budget
}

func New() *Exporter {
	return &Exporter{}
}

// Append stores the budget and returns a synthetic row reference.
func (e *Exporter) Append(_ context.Context, b core.Budget) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = append(e.items, b)
	return fmt.Sprintf("mem:%d", len(e.items)), nil
}

// Rows returns a copy of everything appended so far.
func (e *Exporter) Rows() []core.Budget {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]core.Budget(nil), e.items...)
}
