package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"budgetapp/internal/amqp"
	"budgetapp/internal/cli"
	"budgetapp/internal/config"
	applog "budgetapp/internal/log"
	"budgetapp/internal/sheets"
	gsheet "budgetapp/internal/sheets/google"
	"budgetapp/internal/sheets/memory"
	"budgetapp/internal/worker"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"), applog.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger, (*config.Config).ValidateWorker)

	if err := run(logger, cfg); err != nil {
		logger.Error("Worker failed", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker stopped")
}

func run(logger *applog.Logger, cfg *config.Config) error {
	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	var exporter sheets.BudgetExporter
	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.NewFromOptions(ctx, gsheet.Options{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			SheetName:       cfg.GoogleSheetName,
			CredentialsJSON: cfg.GoogleServiceAccountJSON,
			CredentialsFile: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			return fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		exporter = client
		logger.Info("Google Sheets exporter initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.GoogleSheetName)
	} else {
		exporter = memory.New()
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided, exporting to memory")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("initialize AMQP client: %w", err)
	}
	defer amqpClient.Close()

	exportWorker := worker.NewExportWorker(exporter)

	logger.Info("Consuming budget events", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	err = amqpClient.ConsumeBudgetCreated(ctx, exportWorker.HandleBudgetCreated)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("consume budget messages: %w", err)
	}
	return nil
}
