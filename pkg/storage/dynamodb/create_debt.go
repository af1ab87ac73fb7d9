package dynamodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

// SettleCreate atomically persists a new debt, applies the opening balance
// delta to the linked account, and appends the audit entry. Either all three
// records change or none do.
func (s *Store) SettleCreate(ctx context.Context, debt *models.Debt, entry *models.Transaction, delta int64) error {
	debtAV, err := attributevalue.MarshalMap(debt)
	if err != nil {
		return fmt.Errorf("failed to marshal debt: %w", err)
	}

	accountItem, err := s.accountDeltaItem(debt.AccountId, delta, debt.CreatedAt)
	if err != nil {
		return err
	}
	entryItem, err := s.auditEntryItem(entry)
	if err != nil {
		return err
	}

	slog.Log(ctx, slog.LevelDebug, "settling debt creation", "debtId", debt.Id, "delta", delta)

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the new debt record.
				Put: &types.Put{
					TableName:           aws.String(s.DebtsTableName),
					Item:                debtAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			// Operation 2: Apply the opening delta to the account.
			accountItem,
			// Operation 3: Append the audit entry.
			entryItem,
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		// Item 1 is the account update; its condition is attribute_exists.
		if failedConditionIndex(err) == 1 {
			return storage.ErrAccountNotFound
		}
		return fmt.Errorf("failed to execute debt creation transaction: %w", err)
	}

	return nil
}
