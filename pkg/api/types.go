// Package api holds the JSON request and response models of the HTTP
// surface. Monetary amounts cross the wire as decimal strings ("120.50");
// the mapping package converts them to and from the minor-unit domain
// representation.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NewDebt is the request body for opening a debt.
type NewDebt struct {
	OwnerId          string              `json:"owner_id"`
	Kind             string              `json:"kind"`
	CounterpartyName string              `json:"counterparty_name"`
	Amount           string              `json:"amount"`
	AccountId        string              `json:"account_id"`
	Currency         *string             `json:"currency,omitempty"`
	Description      *string             `json:"description,omitempty"`
	DueDate          *openapi_types.Date `json:"due_date,omitempty"`
}

// DebtUpdate is the request body for editing a debt's non-financial fields.
type DebtUpdate struct {
	CounterpartyName *string             `json:"counterparty_name,omitempty"`
	Description      *string             `json:"description,omitempty"`
	DueDate          *openapi_types.Date `json:"due_date,omitempty"`
}

// NewPayment is the request body for recording a repayment.
type NewPayment struct {
	Amount      string  `json:"amount"`
	Description *string `json:"description,omitempty"`
}

// Payment is a repayment as rendered to clients.
type Payment struct {
	Id          string    `json:"id"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Debt is a debt as rendered to clients.
type Debt struct {
	Id               string              `json:"id"`
	OwnerId          string              `json:"owner_id"`
	Kind             string              `json:"kind"`
	CounterpartyName string              `json:"counterparty_name"`
	OriginalAmount   string              `json:"original_amount"`
	PaidAmount       string              `json:"paid_amount"`
	CurrentAmount    string              `json:"current_amount"`
	AccountId        string              `json:"account_id"`
	Status           string              `json:"status"`
	Currency         string              `json:"currency"`
	DueDate          *openapi_types.Date `json:"due_date,omitempty"`
	Description      *string             `json:"description,omitempty"`
	Payments         []Payment           `json:"payments"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// DebtSummary carries the derived aggregates for one owner.
type DebtSummary struct {
	TotalLentOutstanding     string `json:"total_lent_outstanding"`
	TotalBorrowedOutstanding string `json:"total_borrowed_outstanding"`
	ActiveCount              int    `json:"active_count"`
	PaidCount                int    `json:"paid_count"`
}

// NewAccount is the request body for creating an account.
type NewAccount struct {
	OwnerId        string  `json:"owner_id"`
	Name           string  `json:"name"`
	InitialBalance *string `json:"initial_balance,omitempty"`
	Currency       *string `json:"currency,omitempty"`
}

// Account is an account as rendered to clients.
type Account struct {
	Id        string    `json:"id"`
	OwnerId   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTransaction is the request body for recording a manual income or
// expense entry.
type NewTransaction struct {
	OwnerId      string     `json:"owner_id"`
	Amount       string     `json:"amount"`
	Description  *string    `json:"description,omitempty"`
	Kind         string     `json:"kind"`
	Category     string     `json:"category"`
	CategoryIcon *string    `json:"category_icon,omitempty"`
	AccountId    string     `json:"account_id"`
	Date         *time.Time `json:"date,omitempty"`
}

// Transaction is an audit trail entry as rendered to clients.
type Transaction struct {
	Id           string    `json:"id"`
	OwnerId      string    `json:"owner_id"`
	Amount       string    `json:"amount"`
	Description  *string   `json:"description,omitempty"`
	Kind         string    `json:"kind"`
	Category     string    `json:"category"`
	CategoryIcon *string   `json:"category_icon,omitempty"`
	AccountId    string    `json:"account_id"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}
