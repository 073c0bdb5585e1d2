// Package sqlite stores budget lines in a SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"budgetapp/internal/core"
	"budgetapp/internal/repository"

	_ "modernc.org/sqlite"
)

var _ repository.BudgetRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

// NewRepository opens the database at dbPath, creating its directory and
// applying migrations.
func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Create inserts the budget and returns it with its row ID.
func (r *Repository) Create(ctx context.Context, b core.Budget) (core.Budget, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (category, description, amount) VALUES (?, ?, ?)`,
		b.Category, b.Description, b.Amount)
	if err != nil {
		return core.Budget{}, fmt.Errorf("create budget: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Budget{}, fmt.Errorf("create budget: last insert id: %w", err)
	}

	slog.DebugContext(ctx, "Budget saved to SQLite", "id", id, "category", b.Category, "amount", b.Amount)
	return b.WithID(publicID(id)), nil
}

// List returns all budgets in insertion order.
func (r *Repository) List(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, description, amount FROM budgets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	out := make([]core.Budget, 0)
	for rows.Next() {
		var (
			id int64
			b  core.Budget
		)
		if err := rows.Scan(&id, &b.Category, &b.Description, &b.Amount); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		out = append(out, b.WithID(publicID(id)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return out, nil
}

// publicID maps the integer row ID to its public string form.
func publicID(id int64) string {
	return strconv.FormatInt(id, 10)
}
