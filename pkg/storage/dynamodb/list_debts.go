package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mika/debt-ledger/pkg/models"
)

// ListDebtsByOwner retrieves all debts for an owner, ordered by CreatedAt
// descending.
func (s *Store) ListDebtsByOwner(ctx context.Context, ownerID string) ([]models.Debt, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.DebtsTableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :ownerID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ownerID": &types.AttributeValueMemberS{Value: ownerID},
		},
	}

	return s.queryDebts(ctx, input)
}

// ListDebtsByOwnerAndAccount retrieves the owner's debts settled against a
// specific account, ordered by CreatedAt descending.
func (s *Store) ListDebtsByOwnerAndAccount(ctx context.Context, ownerID, accountID string) ([]models.Debt, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.DebtsTableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :ownerID"),
		FilterExpression:       aws.String("account_id = :accountID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ownerID":   &types.AttributeValueMemberS{Value: ownerID},
			":accountID": &types.AttributeValueMemberS{Value: accountID},
		},
	}

	return s.queryDebts(ctx, input)
}

func (s *Store) queryDebts(ctx context.Context, input *dynamodb.QueryInput) ([]models.Debt, error) {
	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}

	var debts []models.Debt
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &debts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal debts: %w", err)
	}

	// The GSI has no sort key; order client-side.
	sort.Slice(debts, func(i, j int) bool {
		return debts[i].CreatedAt.After(debts[j].CreatedAt)
	})

	for i := range debts {
		normalizeDebt(&debts[i])
	}

	return debts, nil
}

// ListOverdueDebts retrieves unpaid debts whose due date has passed.
func (s *Store) ListOverdueDebts(ctx context.Context, asOf time.Time) ([]models.Debt, error) {
	asOfText, err := asOf.UTC().MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.DebtsTableName),
		FilterExpression: aws.String("attribute_exists(due_date) AND due_date < :asOf AND current_amount > :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":asOf": &types.AttributeValueMemberS{Value: string(asOfText)},
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for overdue debts: %w", err)
	}

	var debts []models.Debt
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &debts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overdue debts: %w", err)
	}

	for i := range debts {
		normalizeDebt(&debts[i])
	}

	return debts, nil
}
