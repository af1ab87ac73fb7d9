package reminder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/mika/debt-ledger/pkg/models"
)

// SQSAPI defines the subset of the SQS client used by the notifier.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier implements the Notifier interface using AWS SQS.
type SQSNotifier struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSNotifier creates a new SQSNotifier.
func NewSQSNotifier(client SQSAPI, queueURL string) *SQSNotifier {
	return &SQSNotifier{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Notifier = (*SQSNotifier)(nil)

// reminderText renders the human-readable reminder line. The direction of
// the sentence follows who owes whom.
func reminderText(debt *models.Debt) string {
	amount := money.New(debt.Outstanding(), debt.Currency).Display()
	if debt.Kind == models.LENT {
		return fmt.Sprintf("%s still owes you %s (due %s)", debt.CounterpartyName, amount, debt.DueDate.Format("2006-01-02"))
	}
	return fmt.Sprintf("You still owe %s %s (due %s)", debt.CounterpartyName, amount, debt.DueDate.Format("2006-01-02"))
}

// NotifyOverdue sends the reminder to an SQS queue for downstream delivery.
func (n *SQSNotifier) NotifyOverdue(ctx context.Context, debt *models.Debt) error {
	if debt.DueDate == nil {
		return fmt.Errorf("debt %s has no due date", debt.Id)
	}

	msg := Message{
		DebtId:           debt.Id,
		OwnerId:          debt.OwnerId,
		CounterpartyName: debt.CounterpartyName,
		Kind:             string(debt.Kind),
		Outstanding:      money.New(debt.Outstanding(), debt.Currency).Display(),
		DueDate:          *debt.DueDate,
		Text:             reminderText(debt),
	}

	// Marshal the reminder to JSON.
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder for SQS: %w", err)
	}

	// Send the message to SQS.
	_, err = n.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send reminder to SQS: %w", err)
	}

	return nil
}
