package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

// UpdateDebtFields applies a partial update to a debt's editable fields and
// returns the updated record. Amounts, payments, and status are not
// reachable from here; they only move through settlements.
func (s *Store) UpdateDebtFields(ctx context.Context, debtID string, update storage.DebtFieldUpdate) (*models.Debt, error) {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	sets := []string{"updated_at = :now", "version = version + :inc"}
	names := map[string]string{}
	values := map[string]types.AttributeValue{
		":now": nowAV,
		":inc": &types.AttributeValueMemberN{Value: "1"},
	}

	if update.CounterpartyName != nil {
		sets = append(sets, "#cn = :cn")
		names["#cn"] = "counterparty_name"
		values[":cn"] = &types.AttributeValueMemberS{Value: *update.CounterpartyName}
	}
	if update.Description != nil {
		sets = append(sets, "#desc = :desc")
		names["#desc"] = "description"
		values[":desc"] = &types.AttributeValueMemberS{Value: *update.Description}
	}
	if update.DueDate != nil {
		dueAV, err := attributevalue.Marshal(*update.DueDate)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal due date: %w", err)
		}
		sets = append(sets, "#due = :due")
		names["#due"] = "due_date"
		values[":due"] = dueAV
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.DebtsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: debtID},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrDebtNotFound
		}
		return nil, fmt.Errorf("failed to update debt fields: %w", err)
	}

	var debt models.Debt
	if err := attributevalue.UnmarshalMap(result.Attributes, &debt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated debt: %w", err)
	}

	normalizeDebt(&debt)
	return &debt, nil
}
