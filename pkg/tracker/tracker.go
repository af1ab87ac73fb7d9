package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mika/debt-ledger/pkg/ledger"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

// Commander is the slice of the ledger service the tracker issues commands
// through.
type Commander interface {
	CreateDebt(ctx context.Context, req ledger.NewDebt) (*models.Debt, error)
	AddPayment(ctx context.Context, debtID string, amount int64, description string) (*models.Debt, error)
	DeleteDebt(ctx context.Context, debtID string) error
}

// Summary holds the derived aggregates over one debt snapshot.
type Summary struct {
	TotalLentOutstanding     int64
	TotalBorrowedOutstanding int64
	ActiveCount              int
	PaidCount                int
}

// Summarize computes the outstanding totals and partition counts for a
// snapshot. Pure function: the snapshot is never mutated.
func Summarize(debts []models.Debt) Summary {
	var s Summary
	for _, d := range debts {
		if d.Status == models.PAID {
			s.PaidCount++
			continue
		}
		s.ActiveCount++
		switch d.Kind {
		case models.LENT:
			s.TotalLentOutstanding += d.Outstanding()
		case models.BORROWED:
			s.TotalBorrowedOutstanding += d.Outstanding()
		}
	}
	return s
}

// Active returns the debts that still carry an outstanding amount.
func Active(debts []models.Debt) []models.Debt {
	var out []models.Debt
	for _, d := range debts {
		if d.Status != models.PAID {
			out = append(out, d)
		}
	}
	return out
}

// Paid returns the fully settled debts.
func Paid(debts []models.Debt) []models.Debt {
	var out []models.Debt
	for _, d := range debts {
		if d.Status == models.PAID {
			out = append(out, d)
		}
	}
	return out
}

// Tracker maintains a live view of one owner's debts. It holds only the
// latest snapshot delivered by the store subscription; every delivery
// replaces the previous snapshot wholesale, and all aggregates are
// recomputed from it on demand.
type Tracker struct {
	ownerID string
	ledger  Commander
	watcher storage.DebtWatcher
	logger  *slog.Logger

	lifecycleMu sync.Mutex
	cancel      func()

	mu       sync.RWMutex
	snapshot []models.Debt
}

// New creates a Tracker for ownerID. Call Start to begin listening.
func New(ownerID string, ledger Commander, watcher storage.DebtWatcher, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{ownerID: ownerID, ledger: ledger, watcher: watcher, logger: logger}
}

// Start attaches the debt subscription and loads the initial snapshot.
// Calling it again while listening is a no-op.
func (t *Tracker) Start(ctx context.Context) error {
	t.lifecycleMu.Lock()
	defer t.lifecycleMu.Unlock()

	if t.cancel != nil {
		return nil
	}

	cancel, err := t.watcher.Subscribe(ctx, t.ownerID, t.replaceSnapshot)
	if err != nil {
		return fmt.Errorf("failed to subscribe to debt changes: %w", err)
	}
	t.cancel = cancel
	return nil
}

// Stop detaches the subscription. Safe to call repeatedly, including before
// Start.
func (t *Tracker) Stop() {
	t.lifecycleMu.Lock()
	defer t.lifecycleMu.Unlock()

	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
}

func (t *Tracker) replaceSnapshot(debts []models.Debt) {
	t.mu.Lock()
	t.snapshot = debts
	t.mu.Unlock()
	t.logger.Debug("debt snapshot replaced", "ownerId", t.ownerID, "debts", len(debts))
}

// Snapshot returns a copy of the latest debt snapshot.
func (t *Tracker) Snapshot() []models.Debt {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.Debt, len(t.snapshot))
	copy(out, t.snapshot)
	return out
}

// Summary recomputes the aggregates from the current snapshot.
func (t *Tracker) Summary() Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Summarize(t.snapshot)
}

// ActiveDebts returns the unpaid portion of the current snapshot.
func (t *Tracker) ActiveDebts() []models.Debt {
	return Active(t.Snapshot())
}

// PaidDebts returns the settled portion of the current snapshot.
func (t *Tracker) PaidDebts() []models.Debt {
	return Paid(t.Snapshot())
}

// CreateDebt issues the command through the ledger service. The snapshot
// converges through the active subscription.
func (t *Tracker) CreateDebt(ctx context.Context, req ledger.NewDebt) (*models.Debt, error) {
	req.OwnerID = t.ownerID
	return t.ledger.CreateDebt(ctx, req)
}

// AddPayment issues the command through the ledger service.
func (t *Tracker) AddPayment(ctx context.Context, debtID string, amount int64, description string) (*models.Debt, error) {
	return t.ledger.AddPayment(ctx, debtID, amount, description)
}

// DeleteDebt issues the command through the ledger service.
func (t *Tracker) DeleteDebt(ctx context.Context, debtID string) error {
	return t.ledger.DeleteDebt(ctx, debtID)
}
