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

// SettlePayment atomically appends a payment to the debt, replaces its
// recomputed amounts and status, applies the balance delta to the linked
// account, and appends the audit entry.
//
// The debt's Version field must hold the version observed when the debt was
// read; a concurrent writer bumps it and fails the conditional check, which
// surfaces as ErrVersionConflict.
func (s *Store) SettlePayment(ctx context.Context, debt *models.Debt, payment models.Payment, entry *models.Transaction, delta int64) error {
	paymentAV, err := attributevalue.Marshal([]models.Payment{payment})
	if err != nil {
		return fmt.Errorf("failed to marshal payment: %w", err)
	}
	paidAV, err := attributevalue.Marshal(debt.PaidAmount)
	if err != nil {
		return fmt.Errorf("failed to marshal paid amount: %w", err)
	}
	currentAV, err := attributevalue.Marshal(debt.CurrentAmount)
	if err != nil {
		return fmt.Errorf("failed to marshal current amount: %w", err)
	}
	statusAV, err := attributevalue.Marshal(debt.Status)
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	nowAV, err := attributevalue.Marshal(debt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	accountItem, err := s.accountDeltaItem(debt.AccountId, delta, debt.UpdatedAt)
	if err != nil {
		return err
	}
	entryItem, err := s.auditEntryItem(entry)
	if err != nil {
		return err
	}

	slog.Log(ctx, slog.LevelDebug, "settling debt payment",
		"debtId", debt.Id, "paymentId", payment.Id, "delta", delta)

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Append the payment and replace the derived amounts.
				Update: &types.Update{
					TableName: aws.String(s.DebtsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: debt.Id},
					},
					UpdateExpression: aws.String("SET paid_amount = :paid, current_amount = :current, " +
						"#status = :status, payments = list_append(payments, :payment), " +
						"updated_at = :now, version = version + :inc"),
					ConditionExpression: aws.String("attribute_exists(id) AND version = :version"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":    paidAV,
						":current": currentAV,
						":status":  statusAV,
						":payment": paymentAV,
						":now":     nowAV,
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", debt.Version)},
					},
				},
			},
			// Operation 2: Apply the payment delta to the account.
			accountItem,
			// Operation 3: Append the audit entry.
			entryItem,
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		switch failedConditionIndex(err) {
		case 0:
			return storage.ErrVersionConflict
		case 1:
			return storage.ErrAccountNotFound
		}
		return fmt.Errorf("failed to execute payment transaction: %w", err)
	}

	return nil
}
