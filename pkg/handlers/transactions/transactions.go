package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mika/debt-ledger/pkg/api"
	"github.com/mika/debt-ledger/pkg/mapping"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

// TransactionsHandler holds the dependencies for audit-trail handlers.
type TransactionsHandler struct {
	Store    storage.TransactionStore
	Accounts storage.AccountAdjuster
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.TransactionStore, accounts storage.AccountAdjuster) *TransactionsHandler {
	return &TransactionsHandler{Store: store, Accounts: accounts}
}

// recordManualEntry appends the audit entry and then adjusts the account
// balance. The two writes are not atomic; if the adjustment fails after the
// entry landed, the caller gets a PartialFailureError so the inconsistency
// is visible instead of silent.
func (h *TransactionsHandler) recordManualEntry(ctx context.Context, entry *models.Transaction) error {
	if _, err := h.Store.RecordTransaction(ctx, entry); err != nil {
		return err
	}

	delta := entry.Amount
	if entry.Kind == models.EXPENSE {
		delta = -delta
	}

	if err := h.Accounts.ApplyDelta(ctx, entry.AccountId, delta); err != nil {
		return &storage.PartialFailureError{
			Completed: "transaction entry recorded",
			Failed:    "account balance adjustment",
			Err:       err,
		}
	}
	return nil
}

// CreateTransaction handles the logic for recording a manual income or
// expense entry against an account.
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var newTx api.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&newTx); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if newTx.Kind != string(models.INCOME) && newTx.Kind != string(models.EXPENSE) {
		http.Error(w, fmt.Sprintf("kind must be %s or %s", models.INCOME, models.EXPENSE), http.StatusBadRequest)
		return
	}

	entry, err := mapping.ToDomainNewTransaction(&newTx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if entry.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}
	if entry.OwnerId == "" || entry.AccountId == "" {
		http.Error(w, "owner_id and account_id are required", http.StatusBadRequest)
		return
	}

	entry.Id = uuid.New().String()
	entry.CreatedAt = time.Now()

	if err := h.recordManualEntry(r.Context(), entry); err != nil {
		var partialErr *storage.PartialFailureError
		switch {
		case errors.As(err, &partialErr):
			slog.Error("manual entry partially applied", "transactionId", entry.Id, "error", partialErr)
			http.Error(w, partialErr.Error(), http.StatusInternalServerError)
		case errors.Is(err, storage.ErrAccountNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Failed to record transaction: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiTransaction(entry)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListTransactions handles the logic for retrieving an owner's audit trail.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id query parameter is required", http.StatusBadRequest)
		return
	}

	entries, err := h.Store.ListTransactionsByOwner(r.Context(), ownerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	apiEntries := make([]*api.Transaction, len(entries))
	for i := range entries {
		apiEntries[i] = mapping.ToApiTransaction(&entries[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiEntries); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
