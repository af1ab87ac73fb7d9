package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mika/debt-ledger/pkg/api"
	"github.com/mika/debt-ledger/pkg/mapping"
	"github.com/mika/debt-ledger/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// CreateAccount handles the logic for creating a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAccount); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if newAccount.OwnerId == "" || strings.TrimSpace(newAccount.Name) == "" {
		http.Error(w, "owner_id and name are required", http.StatusBadRequest)
		return
	}

	account, err := mapping.ToDomainNewAccount(&newAccount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	account.Id = uuid.New().String()
	account.Version = 1
	account.CreatedAt = now
	account.UpdatedAt = now

	created, err := h.Store.CreateAccount(r.Context(), account)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") { // This is a simplistic check.
			http.Error(w, "Account already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiAccount(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetAccountById handles the logic for retrieving an account.
func (h *AccountsHandler) GetAccountById(w http.ResponseWriter, r *http.Request, accountID string) {
	account, err := h.Store.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiAccount(account)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListAccounts handles the logic for retrieving an owner's accounts.
func (h *AccountsHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id query parameter is required", http.StatusBadRequest)
		return
	}

	accounts, err := h.Store.ListAccountsByOwner(r.Context(), ownerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve accounts: %v", err), http.StatusInternalServerError)
		return
	}

	apiAccounts := make([]*api.Account, len(accounts))
	for i := range accounts {
		apiAccounts[i] = mapping.ToApiAccount(&accounts[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccounts); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteAccount handles the logic for deleting an account.
func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request, accountID string) {
	if err := h.Store.DeleteAccount(r.Context(), accountID); err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to delete account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
