package worker

import (
	"context"
	"fmt"
	"log/slog"

	"budgetapp/internal/amqp"
	"budgetapp/internal/sheets"
)

// ExportWorker copies created budgets from the event queue into a sheet.
type ExportWorker struct {
	exporter sheets.BudgetExporter
}

func NewExportWorker(exporter sheets.BudgetExporter) *ExportWorker {
	return &ExportWorker{exporter: exporter}
}

// HandleBudgetCreated processes a single budget.created message from AMQP.
// A returned error makes the consumer requeue the message.
func (w *ExportWorker) HandleBudgetCreated(ctx context.Context, msg *amqp.BudgetCreatedMessage) error {
	slog.InfoContext(ctx, "Processing budget created message",
		"id", msg.ID,
		"category", msg.Category)

	ref, err := w.exporter.Append(ctx, msg.Budget())
	if err != nil {
		return fmt.Errorf("export budget %s: %w", msg.ID, err)
	}

	slog.InfoContext(ctx, "Exported budget", "id", msg.ID, "row_ref", ref)
	return nil
}
