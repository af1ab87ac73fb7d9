package models

import (
	"time"
)

// DebtKind says which direction the money moved when the debt was opened.
type DebtKind string

const (
	// LENT means the owner gave money away and expects it back.
	LENT DebtKind = "LENT"
	// BORROWED means the owner received money and owes it back.
	BORROWED DebtKind = "BORROWED"
)

// DebtStatus defines the possible states of a debt. It is derived from the
// paid and outstanding amounts and is never trusted as stored.
type DebtStatus string

const (
	ACTIVE  DebtStatus = "ACTIVE"
	PARTIAL DebtStatus = "PARTIAL"
	PAID    DebtStatus = "PAID"
)

// TransactionKind defines the direction of an audit trail entry.
type TransactionKind string

const (
	INCOME  TransactionKind = "INCOME"
	EXPENSE TransactionKind = "EXPENSE"
)

// Payment is a single repayment recorded against a debt. Payments are
// immutable once appended and are owned exclusively by their debt.
type Payment struct {
	Id          string    `json:"id" dynamodbav:"id"`
	Amount      int64     `json:"amount" dynamodbav:"amount"`
	Date        time.Time `json:"date" dynamodbav:"date"`
	Description string    `json:"description,omitempty" dynamodbav:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Debt represents money lent to or borrowed from a counterparty, settled
// against one of the owner's accounts. All monetary fields are minor units
// (cents) in the debt's currency.
type Debt struct {
	Id               string     `json:"id" dynamodbav:"id"`
	OwnerId          string     `json:"owner_id" dynamodbav:"owner_id"`
	Kind             DebtKind   `json:"kind" dynamodbav:"kind"`
	CounterpartyName string     `json:"counterparty_name" dynamodbav:"counterparty_name"`
	OriginalAmount   int64      `json:"original_amount" dynamodbav:"original_amount"`
	PaidAmount       int64      `json:"paid_amount" dynamodbav:"paid_amount"`
	CurrentAmount    int64      `json:"current_amount" dynamodbav:"current_amount"`
	AccountId        string     `json:"account_id" dynamodbav:"account_id"`
	Status           DebtStatus `json:"status" dynamodbav:"status"`
	Currency         string     `json:"currency" dynamodbav:"currency"`
	DueDate          *time.Time `json:"due_date,omitempty" dynamodbav:"due_date,omitempty"`
	Description      string     `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Payments         []Payment  `json:"payments" dynamodbav:"payments"`
	Version          int64      `json:"version" dynamodbav:"version"`
	CreatedAt        time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// ComputeStatus derives the debt status from its amounts.
func ComputeStatus(paidAmount, currentAmount int64) DebtStatus {
	switch {
	case currentAmount <= 0:
		return PAID
	case paidAmount == 0:
		return ACTIVE
	default:
		return PARTIAL
	}
}

// Outstanding returns the unpaid remainder, clamped at zero.
func (d *Debt) Outstanding() int64 {
	if d.CurrentAmount < 0 {
		return 0
	}
	return d.CurrentAmount
}

// PaymentsTotal sums the recorded payments. It must always equal PaidAmount.
func (d *Debt) PaymentsTotal() int64 {
	var total int64
	for _, p := range d.Payments {
		total += p.Amount
	}
	return total
}

// Account is one of the owner's money accounts. The debt ledger only ever
// mutates it through balance deltas; it never rewrites the record wholesale.
type Account struct {
	Id        string    `json:"id" dynamodbav:"id"`
	OwnerId   string    `json:"owner_id" dynamodbav:"owner_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Balance   int64     `json:"balance" dynamodbav:"balance"`
	Currency  string    `json:"currency" dynamodbav:"currency"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Transaction is a single append-only audit trail entry. Every financial
// event (debt created, payment, cancellation, manual income/expense) records
// exactly one. Amount is always positive; Kind carries the direction.
type Transaction struct {
	Id           string          `json:"id" dynamodbav:"id"`
	OwnerId      string          `json:"owner_id" dynamodbav:"owner_id"`
	Amount       int64           `json:"amount" dynamodbav:"amount"`
	Description  string          `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Kind         TransactionKind `json:"kind" dynamodbav:"kind"`
	Category     string          `json:"category" dynamodbav:"category"`
	CategoryIcon string          `json:"category_icon,omitempty" dynamodbav:"category_icon,omitempty"`
	AccountId    string          `json:"account_id" dynamodbav:"account_id"`
	Date         time.Time       `json:"date" dynamodbav:"date"`
	CreatedAt    time.Time       `json:"created_at" dynamodbav:"created_at"`
}
