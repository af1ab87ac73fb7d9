package transactions_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mika/debt-ledger/pkg/api"
	"github.com/mika/debt-ledger/pkg/handlers/transactions"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
	"github.com/mika/debt-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTransaction(t *testing.T) {
	newTx := api.NewTransaction{
		OwnerId:   "owner-1",
		Amount:    "25.00",
		Kind:      "EXPENSE",
		Category:  "Groceries",
		AccountId: "acct-1",
	}

	t.Run("Success debits the account", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockAccounts := new(mocks.AccountAdjuster)

		mockStore.On("RecordTransaction", mock.Anything, mock.Anything).Return(&models.Transaction{}, nil)
		mockAccounts.On("ApplyDelta", mock.Anything, "acct-1", int64(-2500)).Return(nil)

		h := transactions.NewTransactionsHandler(mockStore, mockAccounts)

		body, _ := json.Marshal(newTx)
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockStore.AssertExpectations(t)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("Income credits the account", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockAccounts := new(mocks.AccountAdjuster)

		mockStore.On("RecordTransaction", mock.Anything, mock.Anything).Return(&models.Transaction{}, nil)
		mockAccounts.On("ApplyDelta", mock.Anything, "acct-1", int64(2500)).Return(nil)

		h := transactions.NewTransactionsHandler(mockStore, mockAccounts)

		income := newTx
		income.Kind = "INCOME"
		body, _ := json.Marshal(income)
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("Bad kind is rejected", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockAccounts := new(mocks.AccountAdjuster)
		h := transactions.NewTransactionsHandler(mockStore, mockAccounts)

		bad := newTx
		bad.Kind = "TRANSFER"
		body, _ := json.Marshal(bad)
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "RecordTransaction", mock.Anything, mock.Anything)
	})

	t.Run("Partial failure surfaces as 500", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockAccounts := new(mocks.AccountAdjuster)

		// The entry lands but the balance adjustment fails; the handler must
		// report the inconsistency rather than a clean success.
		mockStore.On("RecordTransaction", mock.Anything, mock.Anything).Return(&models.Transaction{}, nil)
		mockAccounts.On("ApplyDelta", mock.Anything, "acct-1", mock.Anything).Return(errors.New("update failed"))

		h := transactions.NewTransactionsHandler(mockStore, mockAccounts)

		body, _ := json.Marshal(newTx)
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "partial failure")
		mockStore.AssertExpectations(t)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("Missing account maps to 404", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockAccounts := new(mocks.AccountAdjuster)

		mockStore.On("RecordTransaction", mock.Anything, mock.Anything).
			Return(nil, storage.ErrAccountNotFound)

		h := transactions.NewTransactionsHandler(mockStore, mockAccounts)

		body, _ := json.Marshal(newTx)
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockAccounts := new(mocks.AccountAdjuster)

		mockStore.On("ListTransactionsByOwner", mock.Anything, "owner-1").
			Return([]models.Transaction{{Id: "tx-1", Amount: 400, Kind: models.INCOME}}, nil)

		h := transactions.NewTransactionsHandler(mockStore, mockAccounts)

		req := httptest.NewRequest(http.MethodGet, "/transactions?owner_id=owner-1", nil)
		rr := httptest.NewRecorder()

		h.ListTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var entries []api.Transaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&entries))
		assert.Len(t, entries, 1)
		assert.Equal(t, "4.00", entries[0].Amount)
		mockStore.AssertExpectations(t)
	})

	t.Run("Requires owner_id", func(t *testing.T) {
		h := transactions.NewTransactionsHandler(new(mocks.TransactionStore), new(mocks.AccountAdjuster))

		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		rr := httptest.NewRecorder()

		h.ListTransactions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
