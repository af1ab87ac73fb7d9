package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
	"github.com/mika/debt-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSettleDelete(t *testing.T) {
	debt := &models.Debt{
		Id:             "debt-1",
		OwnerId:        "owner-1",
		Kind:           models.BORROWED,
		OriginalAmount: 200,
		CurrentAmount:  200,
		AccountId:      "acct-1",
		Status:         models.ACTIVE,
		Version:        1,
	}

	t.Run("Outstanding debt compensates the account", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts", AccountsTableName: "accounts", TransactionsTableName: "transactions"}

		entry := &models.Transaction{Id: "tx-1", OwnerId: "owner-1", Amount: 200, Kind: models.EXPENSE}

		var input *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.SettleDelete(context.Background(), debt, entry, -200)

		assert.NoError(t, err)
		assert.Len(t, input.TransactItems, 3)

		del := input.TransactItems[0].Delete
		assert.Equal(t, "debts", *del.TableName)
		assert.Equal(t, "attribute_exists(id) AND version = :version", *del.ConditionExpression)

		delta := input.TransactItems[1].Update.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN)
		assert.Equal(t, "-200", delta.Value)

		assert.Equal(t, "transactions", *input.TransactItems[2].Put.TableName)
		mockClient.AssertExpectations(t)
	})

	t.Run("Paid debt removes only the debt record", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts", AccountsTableName: "accounts", TransactionsTableName: "transactions"}

		var input *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.SettleDelete(context.Background(), debt, nil, 0)

		assert.NoError(t, err)
		assert.Len(t, input.TransactItems, 1)
		assert.NotNil(t, input.TransactItems[0].Delete)
		mockClient.AssertExpectations(t)
	})

	t.Run("Stale version maps to conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DebtsTableName: "debts", AccountsTableName: "accounts", TransactionsTableName: "transactions"}

		cancelErr := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelErr)

		err := store.SettleDelete(context.Background(), debt, nil, 0)

		assert.ErrorIs(t, err, storage.ErrVersionConflict)
		mockClient.AssertExpectations(t)
	})
}
