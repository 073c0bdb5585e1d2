package sheets

import (
	"context"
	"errors"

	"budgetapp/internal/core"
)

// ErrNotInitialized is returned by an exporter used without a backing service.
var ErrNotInitialized = errors.New("sheets service not initialized")

// BudgetExporter appends stored budget lines to an external sheet.
type BudgetExporter interface {
	Append(ctx context.Context, b core.Budget) (rowRef string, err error)
}
