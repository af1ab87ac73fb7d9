package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func marshalDebts(t *testing.T, debts []models.Debt) []map[string]types.AttributeValue {
	t.Helper()
	items := make([]map[string]types.AttributeValue, len(debts))
	for i := range debts {
		item, err := attributevalue.MarshalMap(debts[i])
		assert.NoError(t, err)
		items[i] = item
	}
	return items
}

func TestListDebtsByOwner(t *testing.T) {
	t.Run("Orders newest first client-side", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts"}

		older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		newer := older.Add(48 * time.Hour)
		items := marshalDebts(t, []models.Debt{
			{Id: "debt-old", OwnerId: "owner-1", CreatedAt: older},
			{Id: "debt-new", OwnerId: "owner-1", CreatedAt: newer},
		})

		var input *dynamodb.QueryInput
		mockClient.On("Query", mock.Anything, mock.AnythingOfType("*dynamodb.QueryInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*dynamodb.QueryInput)
			}).Return(&dynamodb.QueryOutput{Items: items}, nil)

		debts, err := store.ListDebtsByOwner(context.Background(), "owner-1")

		assert.NoError(t, err)
		assert.Equal(t, ownerIDIndex, *input.IndexName)
		assert.Len(t, debts, 2)
		assert.Equal(t, "debt-new", debts[0].Id)
		assert.Equal(t, "debt-old", debts[1].Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty result", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)

		debts, err := store.ListDebtsByOwner(context.Background(), "owner-1")

		assert.NoError(t, err)
		assert.Empty(t, debts)
		mockClient.AssertExpectations(t)
	})
}

func TestListDebtsByOwnerAndAccount(t *testing.T) {
	t.Run("Filters on the account attribute", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts"}

		var input *dynamodb.QueryInput
		mockClient.On("Query", mock.Anything, mock.AnythingOfType("*dynamodb.QueryInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*dynamodb.QueryInput)
			}).Return(&dynamodb.QueryOutput{}, nil)

		_, err := store.ListDebtsByOwnerAndAccount(context.Background(), "owner-1", "acct-1")

		assert.NoError(t, err)
		assert.Equal(t, "account_id = :accountID", *input.FilterExpression)
		accountID := input.ExpressionAttributeValues[":accountID"].(*types.AttributeValueMemberS)
		assert.Equal(t, "acct-1", accountID.Value)
		mockClient.AssertExpectations(t)
	})
}

func TestListOverdueDebts(t *testing.T) {
	t.Run("Scans for unpaid debts past their due date", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts"}

		due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		items := marshalDebts(t, []models.Debt{
			{Id: "debt-1", OwnerId: "owner-1", CurrentAmount: 600, Status: models.PARTIAL, PaidAmount: 400, DueDate: &due},
		})

		var input *dynamodb.ScanInput
		mockClient.On("Scan", mock.Anything, mock.AnythingOfType("*dynamodb.ScanInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*dynamodb.ScanInput)
			}).Return(&dynamodb.ScanOutput{Items: items}, nil)

		debts, err := store.ListOverdueDebts(context.Background(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		assert.NoError(t, err)
		assert.Contains(t, *input.FilterExpression, "due_date < :asOf")
		assert.Contains(t, *input.FilterExpression, "current_amount > :zero")
		assert.Len(t, debts, 1)
		assert.Equal(t, "debt-1", debts[0].Id)
		mockClient.AssertExpectations(t)
	})
}
