package storage

import (
	"context"

	"github.com/mika/debt-ledger/pkg/models"
)

// TransactionRecorder appends entries to the audit trail. Entries are
// append-only; nothing in the ledger ever updates or deletes one.
type TransactionRecorder interface {
	RecordTransaction(ctx context.Context, entry *models.Transaction) (*models.Transaction, error)
}

// TransactionReader defines the interface for reading the audit trail.
type TransactionReader interface {
	// ListTransactionsByOwner retrieves all of an owner's entries, ordered
	// by Date descending.
	ListTransactionsByOwner(ctx context.Context, ownerID string) ([]models.Transaction, error)
}

// TransactionStore combines the recorder and reader interfaces.
type TransactionStore interface {
	TransactionRecorder
	TransactionReader
}
