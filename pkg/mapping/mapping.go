package mapping

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/mika/debt-ledger/pkg/api"
	"github.com/mika/debt-ledger/pkg/ledger"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
	"github.com/mika/debt-ledger/pkg/tracker"
)

// ToDomainNewDebt converts an API NewDebt request to the ledger's input
// model. The amount string is parsed into minor units.
func ToDomainNewDebt(newDebt *api.NewDebt) (ledger.NewDebt, error) {
	amount, err := ParseAmount(newDebt.Amount)
	if err != nil {
		return ledger.NewDebt{}, err
	}

	req := ledger.NewDebt{
		OwnerID:          newDebt.OwnerId,
		Kind:             models.DebtKind(newDebt.Kind),
		CounterpartyName: newDebt.CounterpartyName,
		Amount:           amount,
		AccountID:        newDebt.AccountId,
	}
	if newDebt.Currency != nil {
		req.Currency = *newDebt.Currency
	}
	if newDebt.Description != nil {
		req.Description = *newDebt.Description
	}
	if newDebt.DueDate != nil {
		due := newDebt.DueDate.Time
		req.DueDate = &due
	}
	return req, nil
}

// ToDomainFieldUpdate converts an API DebtUpdate to the store's partial
// update model.
func ToDomainFieldUpdate(update *api.DebtUpdate) storage.DebtFieldUpdate {
	out := storage.DebtFieldUpdate{
		CounterpartyName: update.CounterpartyName,
		Description:      update.Description,
	}
	if update.DueDate != nil {
		due := update.DueDate.Time
		out.DueDate = &due
	}
	return out
}

// ToApiPayment converts a domain Payment to its API model.
func ToApiPayment(p *models.Payment) api.Payment {
	out := api.Payment{
		Id:        p.Id,
		Amount:    FormatAmount(p.Amount),
		Date:      p.Date,
		CreatedAt: p.CreatedAt,
	}
	if p.Description != "" {
		out.Description = &p.Description
	}
	return out
}

// ToApiDebt converts a domain Debt to its API model.
func ToApiDebt(d *models.Debt) *api.Debt {
	out := &api.Debt{
		Id:               d.Id,
		OwnerId:          d.OwnerId,
		Kind:             string(d.Kind),
		CounterpartyName: d.CounterpartyName,
		OriginalAmount:   FormatAmount(d.OriginalAmount),
		PaidAmount:       FormatAmount(d.PaidAmount),
		CurrentAmount:    FormatAmount(d.CurrentAmount),
		AccountId:        d.AccountId,
		Status:           string(d.Status),
		Currency:         d.Currency,
		Payments:         make([]api.Payment, len(d.Payments)),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	for i := range d.Payments {
		out.Payments[i] = ToApiPayment(&d.Payments[i])
	}
	if d.DueDate != nil {
		out.DueDate = &openapi_types.Date{Time: *d.DueDate}
	}
	if d.Description != "" {
		out.Description = &d.Description
	}
	return out
}

// ToApiSummary converts the tracker aggregates to their API model.
func ToApiSummary(s tracker.Summary) *api.DebtSummary {
	return &api.DebtSummary{
		TotalLentOutstanding:     FormatAmount(s.TotalLentOutstanding),
		TotalBorrowedOutstanding: FormatAmount(s.TotalBorrowedOutstanding),
		ActiveCount:              s.ActiveCount,
		PaidCount:                s.PaidCount,
	}
}

// ToDomainNewAccount converts an API NewAccount request to a domain Account.
// Server-side fields (ID, timestamps, version) are left for the caller.
func ToDomainNewAccount(newAccount *api.NewAccount) (*models.Account, error) {
	account := &models.Account{
		OwnerId:  newAccount.OwnerId,
		Name:     newAccount.Name,
		Currency: "USD",
	}
	if newAccount.Currency != nil {
		account.Currency = *newAccount.Currency
	}
	if newAccount.InitialBalance != nil {
		balance, err := ParseAmount(*newAccount.InitialBalance)
		if err != nil {
			return nil, err
		}
		account.Balance = balance
	}
	return account, nil
}

// ToApiAccount converts a domain Account to its API model.
func ToApiAccount(a *models.Account) *api.Account {
	return &api.Account{
		Id:        a.Id,
		OwnerId:   a.OwnerId,
		Name:      a.Name,
		Balance:   FormatAmount(a.Balance),
		Currency:  a.Currency,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToDomainNewTransaction converts an API NewTransaction request to a domain
// Transaction. Server-side fields (ID, CreatedAt) are left for the caller;
// a missing date defaults to now.
func ToDomainNewTransaction(newTx *api.NewTransaction) (*models.Transaction, error) {
	amount, err := ParseAmount(newTx.Amount)
	if err != nil {
		return nil, err
	}

	entry := &models.Transaction{
		OwnerId:   newTx.OwnerId,
		Amount:    amount,
		Kind:      models.TransactionKind(newTx.Kind),
		Category:  newTx.Category,
		AccountId: newTx.AccountId,
		Date:      time.Now(),
	}
	if newTx.Description != nil {
		entry.Description = *newTx.Description
	}
	if newTx.CategoryIcon != nil {
		entry.CategoryIcon = *newTx.CategoryIcon
	}
	if newTx.Date != nil {
		entry.Date = *newTx.Date
	}
	return entry, nil
}

// ToApiTransaction converts a domain Transaction to its API model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	out := &api.Transaction{
		Id:        tx.Id,
		OwnerId:   tx.OwnerId,
		Amount:    FormatAmount(tx.Amount),
		Kind:      string(tx.Kind),
		Category:  tx.Category,
		AccountId: tx.AccountId,
		Date:      tx.Date,
		CreatedAt: tx.CreatedAt,
	}
	if tx.Description != "" {
		out.Description = &tx.Description
	}
	if tx.CategoryIcon != "" {
		out.CategoryIcon = &tx.CategoryIcon
	}
	return out
}
