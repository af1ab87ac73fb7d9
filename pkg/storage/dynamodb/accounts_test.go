package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
	"github.com/mika/debt-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateAccount(t *testing.T) {
	account := &models.Account{Id: "acct-1", OwnerId: "owner-1", Name: "Checking", Balance: 5000, Version: 1}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AccountsTableName: "accounts"}

		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).
			Return(&dynamodb.PutItemOutput{}, nil)

		created, err := store.CreateAccount(context.Background(), account)

		assert.NoError(t, err)
		assert.Equal(t, account, created)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate ID fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AccountsTableName: "accounts"}

		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.CreateAccount(context.Background(), account)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		mockClient.AssertExpectations(t)
	})
}

func TestGetAccount(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AccountsTableName: "accounts"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetAccount(context.Background(), "acct-x")

		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AccountsTableName: "accounts"}

		item, _ := attributevalue.MarshalMap(&models.Account{Id: "acct-1", Balance: 5000})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil)

		account, err := store.GetAccount(context.Background(), "acct-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(5000), account.Balance)
		mockClient.AssertExpectations(t)
	})
}

func TestApplyDelta(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AccountsTableName: "accounts"}

		var input *dynamodb.UpdateItemInput
		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*dynamodb.UpdateItemInput)
			}).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.ApplyDelta(context.Background(), "acct-1", -450)

		assert.NoError(t, err)
		assert.Contains(t, *input.UpdateExpression, "balance = balance + :delta")
		delta := input.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN)
		assert.Equal(t, "-450", delta.Value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing account maps to not found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AccountsTableName: "accounts"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})

		err := store.ApplyDelta(context.Background(), "acct-x", 100)

		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
		mockClient.AssertExpectations(t)
	})
}
