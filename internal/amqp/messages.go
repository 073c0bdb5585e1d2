package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"budgetapp/internal/core"
)

// EventBudgetCreated is the message type of BudgetCreatedMessage.
const EventBudgetCreated = "budget.created"

// BudgetCreatedMessage carries a stored budget line to downstream consumers.
type BudgetCreatedMessage struct {
	Type        string    `json:"type"`
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewBudgetCreatedMessage builds a message for a budget that has an ID.
func NewBudgetCreatedMessage(b core.Budget) *BudgetCreatedMessage {
	return &BudgetCreatedMessage{
		Type:        EventBudgetCreated,
		ID:          b.ID,
		Category:    b.Category,
		Description: b.Description,
		Amount:      b.Amount,
		Timestamp:   time.Now().UTC(),
	}
}

// Budget returns the budget line carried by the message.
func (m *BudgetCreatedMessage) Budget() core.Budget {
	return core.Budget{
		ID:          m.ID,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
	}
}

// ToJSON converts the message to JSON bytes
func (m *BudgetCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetCreatedMessageFromJSON decodes a message and checks its type and ID.
func BudgetCreatedMessageFromJSON(data []byte) (*BudgetCreatedMessage, error) {
	var msg BudgetCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Type != EventBudgetCreated {
		return nil, fmt.Errorf("unexpected message type %q", msg.Type)
	}
	if msg.ID == "" {
		return nil, fmt.Errorf("message has no budget id")
	}
	return &msg, nil
}
