package storage

import (
	"context"

	"github.com/mika/debt-ledger/pkg/models"
)

// AccountAdjuster applies signed balance deltas to an account record. The
// adjustment is atomic at the record level.
type AccountAdjuster interface {
	ApplyDelta(ctx context.Context, accountID string, delta int64) error
}

// AccountStore defines the interface for managing accounts.
type AccountStore interface {
	AccountAdjuster

	// CreateAccount creates a new account.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetAccount retrieves an account by its ID. Returns ErrAccountNotFound
	// if absent.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// ListAccountsByOwner retrieves all of an owner's accounts.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]models.Account, error)

	// DeleteAccount deletes an account.
	DeleteAccount(ctx context.Context, accountID string) error
}
