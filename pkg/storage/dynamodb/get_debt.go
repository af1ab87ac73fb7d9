package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

// GetDebt retrieves a debt from DynamoDB by its ID.
func (s *Store) GetDebt(ctx context.Context, debtID string) (*models.Debt, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": debtID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal debt ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.DebtsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrDebtNotFound
	}

	var debt models.Debt
	if err := attributevalue.UnmarshalMap(result.Item, &debt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal debt: %w", err)
	}

	normalizeDebt(&debt)
	return &debt, nil
}
