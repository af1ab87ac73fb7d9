package reminder

import (
	"context"
	"time"

	"github.com/mika/debt-ledger/pkg/models"
)

// Notifier defines the interface for a component that sends overdue-debt
// reminders.
type Notifier interface {
	// NotifyOverdue enqueues a reminder for a debt past its due date.
	NotifyOverdue(ctx context.Context, debt *models.Debt) error
}

// Message is the payload delivered to the notification queue.
type Message struct {
	DebtId           string    `json:"debt_id"`
	OwnerId          string    `json:"owner_id"`
	CounterpartyName string    `json:"counterparty_name"`
	Kind             string    `json:"kind"`
	Outstanding      string    `json:"outstanding"`
	DueDate          time.Time `json:"due_date"`
	Text             string    `json:"text"`
}
