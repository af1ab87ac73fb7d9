package dynamodb

import (
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mika/debt-ledger/pkg/models"
)

// accountDeltaItem builds the transact item applying a signed balance delta
// to an account record.
func (s *Store) accountDeltaItem(accountID string, delta int64, now time.Time) (types.TransactWriteItem, error) {
	deltaAV, err := attributevalue.Marshal(delta)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal balance delta: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(s.AccountsTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: accountID},
			},
			UpdateExpression:    aws.String("SET balance = balance + :delta, version = version + :inc, updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(id)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":delta": deltaAV,
				":inc":   &types.AttributeValueMemberN{Value: "1"},
				":now":   nowAV,
			},
		},
	}, nil
}

// auditEntryItem builds the transact item appending an audit trail entry.
func (s *Store) auditEntryItem(entry *models.Transaction) (types.TransactWriteItem, error) {
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.TransactionsTableName),
			Item:                entryAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		},
	}, nil
}

// failedConditionIndex returns the position of the transact item whose
// conditional check failed, or -1 when the error is not a cancellation with
// a failed condition.
func failedConditionIndex(err error) int {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return -1
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return i
		}
	}
	return -1
}
