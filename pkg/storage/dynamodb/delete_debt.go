package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

// SettleDelete atomically removes the debt record and, when the debt still
// carries an unpaid remainder, applies the compensating balance delta and
// appends the cancellation audit entry. Deleting a fully paid debt touches
// only the debt record (nil entry, zero delta).
func (s *Store) SettleDelete(ctx context.Context, debt *models.Debt, entry *models.Transaction, delta int64) error {
	items := []types.TransactWriteItem{
		{
			// Operation 1: Remove the debt record.
			Delete: &types.Delete{
				TableName: aws.String(s.DebtsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: debt.Id},
				},
				ConditionExpression: aws.String("attribute_exists(id) AND version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", debt.Version)},
				},
			},
		},
	}

	if delta != 0 {
		accountItem, err := s.accountDeltaItem(debt.AccountId, delta, time.Now())
		if err != nil {
			return err
		}
		items = append(items, accountItem)
	}
	if entry != nil {
		entryItem, err := s.auditEntryItem(entry)
		if err != nil {
			return err
		}
		items = append(items, entryItem)
	}

	slog.Log(ctx, slog.LevelDebug, "settling debt deletion", "debtId", debt.Id, "delta", delta)

	input := &dynamodb.TransactWriteItemsInput{TransactItems: items}
	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		switch failedConditionIndex(err) {
		case 0:
			return storage.ErrVersionConflict
		case 1:
			return storage.ErrAccountNotFound
		}
		return fmt.Errorf("failed to execute debt deletion transaction: %w", err)
	}

	return nil
}
