package storage

import (
	"context"
	"time"

	"github.com/mika/debt-ledger/pkg/models"
)

// DebtFieldUpdate carries the non-financial fields of a debt that may be
// edited after creation. Nil pointers leave the stored value untouched.
// Amounts and status are never updated this way; they only move through
// settlements.
type DebtFieldUpdate struct {
	CounterpartyName *string
	Description      *string
	DueDate          *time.Time
}

// DebtReader defines the interface for reading debt data.
type DebtReader interface {
	// GetDebt retrieves a debt by its ID. Returns ErrDebtNotFound if absent.
	GetDebt(ctx context.Context, debtID string) (*models.Debt, error)

	// ListDebtsByOwner retrieves all debts for an owner, ordered by
	// CreatedAt descending.
	ListDebtsByOwner(ctx context.Context, ownerID string) ([]models.Debt, error)

	// ListDebtsByOwnerAndAccount retrieves the owner's debts settled against
	// a specific account, ordered by CreatedAt descending.
	ListDebtsByOwnerAndAccount(ctx context.Context, ownerID, accountID string) ([]models.Debt, error)

	// ListOverdueDebts retrieves unpaid debts whose due date has passed.
	ListOverdueDebts(ctx context.Context, asOf time.Time) ([]models.Debt, error)
}

// DebtWriter defines the interface for the non-financial debt mutations.
type DebtWriter interface {
	// UpdateDebtFields applies a partial update to a debt's editable fields
	// and returns the updated record.
	UpdateDebtFields(ctx context.Context, debtID string, update DebtFieldUpdate) (*models.Debt, error)
}

// DebtStore combines the reader and writer interfaces.
type DebtStore interface {
	DebtReader
	DebtWriter
}

// DebtWatcher delivers the owner's full ordered debt snapshot on every
// change, plus once on attach. The returned func detaches the subscription
// and is safe to call more than once.
type DebtWatcher interface {
	Subscribe(ctx context.Context, ownerID string, onChange func([]models.Debt)) (func(), error)
}
