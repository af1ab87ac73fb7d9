package storage

import (
	"context"

	"github.com/mika/debt-ledger/pkg/models"
)

// SettlementStore defines the privileged interface for applying a debt
// event's full financial effect. Each method writes the debt record, the
// account balance delta, and the audit trail entry in a single atomic
// multi-table transaction, so no partially-applied settlement can be
// observed.
//
// The caller (the ledger service) computes the delta and the entry; the
// store only applies them. A nil entry with a zero delta means the debt
// record alone changes (deleting a fully paid debt).
type SettlementStore interface {
	// SettleCreate persists a new debt, applies delta to its account, and
	// appends entry.
	SettleCreate(ctx context.Context, debt *models.Debt, entry *models.Transaction, delta int64) error

	// SettlePayment replaces the debt's amounts and status, appends payment
	// to its payment list under an optimistic version check, applies delta,
	// and appends entry. The debt carries the recomputed amounts and the
	// version observed at read time.
	SettlePayment(ctx context.Context, debt *models.Debt, payment models.Payment, entry *models.Transaction, delta int64) error

	// SettleDelete removes the debt, applies delta, and appends entry.
	SettleDelete(ctx context.Context, debt *models.Debt, entry *models.Transaction, delta int64) error
}
