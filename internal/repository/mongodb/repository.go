// Package mongodb stores budget lines in a MongoDB collection.
package mongodb

import (
	"context"
	"fmt"

	"budgetapp/internal/core"
	"budgetapp/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the collection holding one document per budget line.
const CollectionName = "budgets"

var _ repository.BudgetRepository = (*Repository)(nil)

// budgetDocument is the storage shape. ID holds whatever the server stored in
// _id and only publicID turns it into a string.
type budgetDocument struct {
	ID          interface{} `bson:"_id,omitempty"`
	Category    string      `bson:"category"`
	Description string      `bson:"description"`
	Amount      float64     `bson:"amount"`
}

type Repository struct {
	provider CollectionProvider
}

func NewRepository(provider CollectionProvider) *Repository {
	return &Repository{provider: provider}
}

// Create inserts the budget and returns it with the generated ID.
func (r *Repository) Create(ctx context.Context, b core.Budget) (core.Budget, error) {
	res, err := r.provider.Collection(CollectionName).InsertOne(ctx, toDocument(b))
	if err != nil {
		return core.Budget{}, fmt.Errorf("create budget: %w", err)
	}
	id, err := publicID(res.InsertedID)
	if err != nil {
		return core.Budget{}, fmt.Errorf("create budget: %w", err)
	}
	return b.WithID(id), nil
}

// List returns all budgets in the order the server yields them.
func (r *Repository) List(ctx context.Context) ([]core.Budget, error) {
	cursor, err := r.provider.Collection(CollectionName).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []budgetDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode budgets: %w", err)
	}

	out := make([]core.Budget, 0, len(docs))
	for _, d := range docs {
		b, err := fromDocument(d)
		if err != nil {
			return nil, fmt.Errorf("list budgets: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func toDocument(b core.Budget) budgetDocument {
	return budgetDocument{
		Category:    b.Category,
		Description: b.Description,
		Amount:      b.Amount,
	}
}

func fromDocument(d budgetDocument) (core.Budget, error) {
	id, err := publicID(d.ID)
	if err != nil {
		return core.Budget{}, err
	}
	return core.Budget{
		ID:          id,
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
	}, nil
}

// publicID maps a store-native identifier to its public string form.
func publicID(id interface{}) (string, error) {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex(), nil
	case string:
		if v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %T", repository.ErrUnexpectedID, id)
}
