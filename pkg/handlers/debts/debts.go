package debts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mika/debt-ledger/pkg/api"
	"github.com/mika/debt-ledger/pkg/ledger"
	"github.com/mika/debt-ledger/pkg/mapping"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
	"github.com/mika/debt-ledger/pkg/tracker"
	"github.com/mika/debt-ledger/pkg/websockets"
)

// DebtsHandler holds the dependencies for debt-related handlers.
type DebtsHandler struct {
	Ledger    *ledger.Service
	Store     storage.DebtReader
	Publisher websockets.Publisher
}

// NewDebtsHandler creates a new DebtsHandler.
func NewDebtsHandler(ledgerService *ledger.Service, store storage.DebtReader, publisher websockets.Publisher) *DebtsHandler {
	return &DebtsHandler{Ledger: ledgerService, Store: store, Publisher: publisher}
}

// writeLedgerError maps ledger and storage failures to HTTP statuses.
func writeLedgerError(w http.ResponseWriter, err error) {
	var validationErr *ledger.ValidationError
	var partialErr *storage.PartialFailureError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrDebtNotFound), errors.Is(err, storage.ErrAccountNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrVersionConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &partialErr):
		slog.Error("ledger write partially applied", "error", partialErr)
		http.Error(w, partialErr.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *DebtsHandler) publishUpdate(ctx context.Context, ownerID, debtID string, action websockets.DebtAction, outstanding int64) {
	msg := websockets.Message{
		Type: websockets.MessageTypeDebtUpdate,
		Payload: websockets.DebtUpdatePayload{
			OwnerID:     ownerID,
			DebtID:      debtID,
			Action:      action,
			Outstanding: outstanding,
		},
	}
	if err := h.Publisher.Publish(ctx, msg); err != nil {
		// Do not fail the request over a notification.
		slog.Error("failed to publish debt update", "debtId", debtID, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateDebt handles the logic for opening a new debt.
func (h *DebtsHandler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	var newDebt api.NewDebt
	if err := json.NewDecoder(r.Body).Decode(&newDebt); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	req, err := mapping.ToDomainNewDebt(&newDebt)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	debt, err := h.Ledger.CreateDebt(r.Context(), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	h.publishUpdate(r.Context(), debt.OwnerId, debt.Id, websockets.DebtActionCreated, debt.Outstanding())
	writeJSON(w, http.StatusCreated, mapping.ToApiDebt(debt))
}

// GetDebtById handles the logic for retrieving a single debt.
func (h *DebtsHandler) GetDebtById(w http.ResponseWriter, r *http.Request, debtID string) {
	debt, err := h.Store.GetDebt(r.Context(), debtID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiDebt(debt))
}

// ListDebts handles the logic for retrieving an owner's debts, optionally
// filtered by account.
func (h *DebtsHandler) ListDebts(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id query parameter is required", http.StatusBadRequest)
		return
	}

	var debts []models.Debt
	var err error
	if accountID := r.URL.Query().Get("account_id"); accountID != "" {
		debts, err = h.Ledger.ListByAccount(r.Context(), ownerID, accountID)
	} else {
		debts, err = h.Store.ListDebtsByOwner(r.Context(), ownerID)
	}
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	apiDebts := make([]*api.Debt, len(debts))
	for i := range debts {
		apiDebts[i] = mapping.ToApiDebt(&debts[i])
	}
	writeJSON(w, http.StatusOK, apiDebts)
}

// GetDebtSummary handles the logic for the owner's derived aggregates.
func (h *DebtsHandler) GetDebtSummary(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id query parameter is required", http.StatusBadRequest)
		return
	}

	debts, err := h.Store.ListDebtsByOwner(r.Context(), ownerID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiSummary(tracker.Summarize(debts)))
}

// AddPayment handles the logic for recording a repayment against a debt.
func (h *DebtsHandler) AddPayment(w http.ResponseWriter, r *http.Request, debtID string) {
	var newPayment api.NewPayment
	if err := json.NewDecoder(r.Body).Decode(&newPayment); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	amount, err := mapping.ParseAmount(newPayment.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	description := ""
	if newPayment.Description != nil {
		description = *newPayment.Description
	}

	debt, err := h.Ledger.AddPayment(r.Context(), debtID, amount, description)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	h.publishUpdate(r.Context(), debt.OwnerId, debt.Id, websockets.DebtActionPayment, debt.Outstanding())
	writeJSON(w, http.StatusCreated, mapping.ToApiDebt(debt))
}

// UpdateDebt handles the logic for editing a debt's non-financial fields.
func (h *DebtsHandler) UpdateDebt(w http.ResponseWriter, r *http.Request, debtID string) {
	var update api.DebtUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	debt, err := h.Ledger.UpdateDebt(r.Context(), debtID, mapping.ToDomainFieldUpdate(&update))
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	h.publishUpdate(r.Context(), debt.OwnerId, debt.Id, websockets.DebtActionUpdated, debt.Outstanding())
	writeJSON(w, http.StatusOK, mapping.ToApiDebt(debt))
}

// DeleteDebt handles the logic for removing a debt. The ledger reverses the
// remaining outstanding effect on the linked account before the record goes.
func (h *DebtsHandler) DeleteDebt(w http.ResponseWriter, r *http.Request, debtID string) {
	debt, err := h.Store.GetDebt(r.Context(), debtID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	if err := h.Ledger.DeleteDebt(r.Context(), debtID); err != nil {
		writeLedgerError(w, err)
		return
	}

	h.publishUpdate(r.Context(), debt.OwnerId, debt.Id, websockets.DebtActionDeleted, 0)
	w.WriteHeader(http.StatusNoContent)
}
