package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

// Audit entries produced by the debt ledger all land in one category.
const (
	debtCategory     = "Debts"
	debtCategoryIcon = "handshake"
)

// Service enforces the debt's numeric invariants and keeps the linked
// account balance and the audit trail synchronized with every financial
// event. It is the trust boundary: all validation happens here, regardless
// of what callers checked.
type Service struct {
	store  storage.DebtLedgerStore
	locks  keyedMutex
	logger *slog.Logger
}

// New creates a new Service.
func New(store storage.DebtLedgerStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// NewDebt carries the caller-supplied fields for opening a debt.
type NewDebt struct {
	OwnerID          string
	Kind             models.DebtKind
	CounterpartyName string
	Amount           int64
	AccountID        string
	Currency         string
	Description      string
	DueDate          *time.Time
}

func (n *NewDebt) validate() error {
	if n.OwnerID == "" {
		return &ValidationError{Field: "owner_id", Reason: "required"}
	}
	if n.Kind != models.LENT && n.Kind != models.BORROWED {
		return &ValidationError{Field: "kind", Reason: fmt.Sprintf("must be %s or %s", models.LENT, models.BORROWED)}
	}
	if strings.TrimSpace(n.CounterpartyName) == "" {
		return &ValidationError{Field: "counterparty_name", Reason: "required"}
	}
	if n.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if n.AccountID == "" {
		return &ValidationError{Field: "account_id", Reason: "required"}
	}
	return nil
}

// settlementEvent identifies which financial event is being settled.
type settlementEvent int

const (
	debtOpened settlementEvent = iota
	paymentSettled
	debtCancelled
)

// settlementEffect returns the signed account delta and the audit entry kind
// for a debt event.
//
// Opening a LENT debt means cash left the account now and returns through
// payments; a BORROWED debt is the mirror image. Cancellation neutralizes
// only the remaining outstanding exposure, never the history already
// recorded.
func settlementEffect(kind models.DebtKind, event settlementEvent, amount int64) (int64, models.TransactionKind) {
	// Payments and cancellations flow money back towards the account for a
	// LENT debt and away from it for a BORROWED one; opening is the mirror.
	inflow := kind == models.LENT
	if event == debtOpened {
		inflow = !inflow
	}
	if inflow {
		return amount, models.INCOME
	}
	return -amount, models.EXPENSE
}

func newAuditEntry(debt *models.Debt, kind models.TransactionKind, amount int64, description string, now time.Time) *models.Transaction {
	return &models.Transaction{
		Id:           uuid.New().String(),
		OwnerId:      debt.OwnerId,
		Amount:       amount,
		Description:  description,
		Kind:         kind,
		Category:     debtCategory,
		CategoryIcon: debtCategoryIcon,
		AccountId:    debt.AccountId,
		Date:         now,
		CreatedAt:    now,
	}
}

// CreateDebt validates the request, persists the new debt, and applies its
// opening financial effect to the linked account and the audit trail in one
// atomic settlement.
func (s *Service) CreateDebt(ctx context.Context, req NewDebt) (*models.Debt, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	debt := &models.Debt{
		Id:               uuid.New().String(),
		OwnerId:          req.OwnerID,
		Kind:             req.Kind,
		CounterpartyName: req.CounterpartyName,
		OriginalAmount:   req.Amount,
		PaidAmount:       0,
		CurrentAmount:    req.Amount,
		AccountId:        req.AccountID,
		Status:           models.ACTIVE,
		Currency:         currency,
		DueDate:          req.DueDate,
		Description:      req.Description,
		Payments:         []models.Payment{},
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	description := fmt.Sprintf("Lent to %s", debt.CounterpartyName)
	if debt.Kind == models.BORROWED {
		description = fmt.Sprintf("Borrowed from %s", debt.CounterpartyName)
	}

	delta, txKind := settlementEffect(debt.Kind, debtOpened, debt.OriginalAmount)
	entry := newAuditEntry(debt, txKind, debt.OriginalAmount, description, now)

	if err := s.store.SettleCreate(ctx, debt, entry, delta); err != nil {
		return nil, fmt.Errorf("failed to settle debt creation: %w", err)
	}

	s.logger.Info("debt created",
		"debtId", debt.Id, "kind", debt.Kind, "amount", debt.OriginalAmount, "accountId", debt.AccountId)
	return debt, nil
}

// AddPayment records a repayment against the debt: it recomputes the paid
// and outstanding amounts and the derived status, appends the payment, and
// applies the payment's financial effect, all in one atomic settlement.
//
// The payment must not exceed the outstanding amount; a fully paid debt
// therefore rejects every further payment.
func (s *Service) AddPayment(ctx context.Context, debtID string, amount int64, description string) (*models.Debt, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	unlock := s.locks.lock(debtID)
	defer unlock()

	debt, err := s.store.GetDebt(ctx, debtID)
	if err != nil {
		return nil, err
	}

	if amount > debt.CurrentAmount {
		return nil, &ValidationError{
			Field:  "amount",
			Reason: fmt.Sprintf("payment of %d exceeds outstanding amount %d", amount, debt.CurrentAmount),
		}
	}

	now := time.Now()
	payment := models.Payment{
		Id:          uuid.New().String(),
		Amount:      amount,
		Date:        now,
		Description: description,
		CreatedAt:   now,
	}

	updated := *debt
	updated.PaidAmount = debt.PaidAmount + amount
	updated.CurrentAmount = debt.OriginalAmount - updated.PaidAmount
	if updated.CurrentAmount < 0 {
		updated.CurrentAmount = 0
	}
	updated.Status = models.ComputeStatus(updated.PaidAmount, updated.CurrentAmount)
	updated.UpdatedAt = now

	paymentDescription := fmt.Sprintf("Debt payment from %s", debt.CounterpartyName)
	if debt.Kind == models.BORROWED {
		paymentDescription = fmt.Sprintf("Debt payment to %s", debt.CounterpartyName)
	}

	delta, txKind := settlementEffect(debt.Kind, paymentSettled, amount)
	entry := newAuditEntry(debt, txKind, amount, paymentDescription, now)

	if err := s.store.SettlePayment(ctx, &updated, payment, entry, delta); err != nil {
		return nil, fmt.Errorf("failed to settle payment: %w", err)
	}

	updated.Payments = append(append([]models.Payment{}, debt.Payments...), payment)
	updated.Version = debt.Version + 1

	s.logger.Info("payment settled",
		"debtId", debt.Id, "paymentId", payment.Id, "amount", amount, "status", updated.Status)
	return &updated, nil
}

// DeleteDebt removes the debt and neutralizes its remaining outstanding
// effect on the account. The already-recorded creation and payments stay in
// the audit trail; only the unpaid remainder is compensated. Deleting a
// fully paid debt has no balance effect.
func (s *Service) DeleteDebt(ctx context.Context, debtID string) error {
	unlock := s.locks.lock(debtID)
	defer unlock()

	debt, err := s.store.GetDebt(ctx, debtID)
	if err != nil {
		return err
	}

	var entry *models.Transaction
	var delta int64
	if remaining := debt.Outstanding(); remaining > 0 {
		var txKind models.TransactionKind
		delta, txKind = settlementEffect(debt.Kind, debtCancelled, remaining)
		entry = newAuditEntry(debt, txKind, remaining,
			fmt.Sprintf("Debt cancelled: %s", debt.CounterpartyName), time.Now())
	}

	if err := s.store.SettleDelete(ctx, debt, entry, delta); err != nil {
		return fmt.Errorf("failed to settle debt deletion: %w", err)
	}

	s.logger.Info("debt deleted", "debtId", debt.Id, "compensated", delta)
	return nil
}

// UpdateDebt edits the debt's non-financial fields. Amounts and status are
// not reachable from here.
func (s *Service) UpdateDebt(ctx context.Context, debtID string, update storage.DebtFieldUpdate) (*models.Debt, error) {
	if update.CounterpartyName != nil && strings.TrimSpace(*update.CounterpartyName) == "" {
		return nil, &ValidationError{Field: "counterparty_name", Reason: "required"}
	}

	unlock := s.locks.lock(debtID)
	defer unlock()

	return s.store.UpdateDebtFields(ctx, debtID, update)
}

// ListByAccount is a read-only query for the owner's debts settled against
// one account.
func (s *Service) ListByAccount(ctx context.Context, ownerID, accountID string) ([]models.Debt, error) {
	return s.store.ListDebtsByOwnerAndAccount(ctx, ownerID, accountID)
}
