package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mika/debt-ledger/pkg/models"
)

// WatchedDebtStore decorates a DebtLedgerStore with change notification.
// After every successful mutation it re-reads the owner's full ordered debt
// list and hands the snapshot to each subscriber. Subscribers always see
// whole-snapshot replacements, never incremental diffs.
type WatchedDebtStore struct {
	inner DebtLedgerStore

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func([]models.Debt)
}

// NewWatchedDebtStore creates a new WatchedDebtStore around inner.
func NewWatchedDebtStore(inner DebtLedgerStore) *WatchedDebtStore {
	return &WatchedDebtStore{
		inner: inner,
		subs:  make(map[string]map[int]func([]models.Debt)),
	}
}

// Make sure we conform to the interfaces
var _ DebtLedgerStore = (*WatchedDebtStore)(nil)
var _ DebtWatcher = (*WatchedDebtStore)(nil)

// Subscribe registers onChange for the owner and immediately delivers the
// current snapshot. The returned func detaches the subscription; calling it
// more than once is a no-op.
func (w *WatchedDebtStore) Subscribe(ctx context.Context, ownerID string, onChange func([]models.Debt)) (func(), error) {
	snapshot, err := w.inner.ListDebtsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	id := w.nextID
	w.nextID++
	if w.subs[ownerID] == nil {
		w.subs[ownerID] = make(map[int]func([]models.Debt))
	}
	w.subs[ownerID][id] = onChange
	w.mu.Unlock()

	onChange(snapshot)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs[ownerID], id)
			w.mu.Unlock()
		})
	}
	return cancel, nil
}

// notify re-reads the owner's debts and fans the snapshot out. A read
// failure is logged rather than surfaced: the mutation that triggered the
// notification has already committed.
func (w *WatchedDebtStore) notify(ctx context.Context, ownerID string) {
	w.mu.Lock()
	listeners := make([]func([]models.Debt), 0, len(w.subs[ownerID]))
	for _, fn := range w.subs[ownerID] {
		listeners = append(listeners, fn)
	}
	w.mu.Unlock()

	if len(listeners) == 0 {
		return
	}

	snapshot, err := w.inner.ListDebtsByOwner(ctx, ownerID)
	if err != nil {
		slog.Error("failed to load debt snapshot for notification", "ownerId", ownerID, "error", err)
		return
	}

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (w *WatchedDebtStore) GetDebt(ctx context.Context, debtID string) (*models.Debt, error) {
	return w.inner.GetDebt(ctx, debtID)
}

func (w *WatchedDebtStore) ListDebtsByOwner(ctx context.Context, ownerID string) ([]models.Debt, error) {
	return w.inner.ListDebtsByOwner(ctx, ownerID)
}

func (w *WatchedDebtStore) ListDebtsByOwnerAndAccount(ctx context.Context, ownerID, accountID string) ([]models.Debt, error) {
	return w.inner.ListDebtsByOwnerAndAccount(ctx, ownerID, accountID)
}

func (w *WatchedDebtStore) ListOverdueDebts(ctx context.Context, asOf time.Time) ([]models.Debt, error) {
	return w.inner.ListOverdueDebts(ctx, asOf)
}

func (w *WatchedDebtStore) UpdateDebtFields(ctx context.Context, debtID string, update DebtFieldUpdate) (*models.Debt, error) {
	debt, err := w.inner.UpdateDebtFields(ctx, debtID, update)
	if err != nil {
		return nil, err
	}
	w.notify(ctx, debt.OwnerId)
	return debt, nil
}

func (w *WatchedDebtStore) SettleCreate(ctx context.Context, debt *models.Debt, entry *models.Transaction, delta int64) error {
	if err := w.inner.SettleCreate(ctx, debt, entry, delta); err != nil {
		return err
	}
	w.notify(ctx, debt.OwnerId)
	return nil
}

func (w *WatchedDebtStore) SettlePayment(ctx context.Context, debt *models.Debt, payment models.Payment, entry *models.Transaction, delta int64) error {
	if err := w.inner.SettlePayment(ctx, debt, payment, entry, delta); err != nil {
		return err
	}
	w.notify(ctx, debt.OwnerId)
	return nil
}

func (w *WatchedDebtStore) SettleDelete(ctx context.Context, debt *models.Debt, entry *models.Transaction, delta int64) error {
	if err := w.inner.SettleDelete(ctx, debt, entry, delta); err != nil {
		return err
	}
	w.notify(ctx, debt.OwnerId)
	return nil
}
