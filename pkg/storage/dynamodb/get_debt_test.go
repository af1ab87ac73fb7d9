package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
	"github.com/mika/debt-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetDebt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts"}

		stored := &models.Debt{Id: "debt-1", OwnerId: "owner-1", PaidAmount: 400, CurrentAmount: 600, Status: models.PARTIAL}
		item, _ := attributevalue.MarshalMap(stored)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil)

		debt, err := store.GetDebt(context.Background(), "debt-1")

		assert.NoError(t, err)
		assert.Equal(t, "debt-1", debt.Id)
		assert.Equal(t, models.PARTIAL, debt.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Stale stored status is recomputed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts"}

		// Stored status says ACTIVE but the amounts say otherwise.
		stored := &models.Debt{Id: "debt-1", PaidAmount: 1000, CurrentAmount: 0, Status: models.ACTIVE}
		item, _ := attributevalue.MarshalMap(stored)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil)

		debt, err := store.GetDebt(context.Background(), "debt-1")

		assert.NoError(t, err)
		assert.Equal(t, models.PAID, debt.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		_, err := store.GetDebt(context.Background(), "debt-x")

		assert.ErrorIs(t, err, storage.ErrDebtNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Client failure surfaces", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		_, err := store.GetDebt(context.Background(), "debt-1")

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}
