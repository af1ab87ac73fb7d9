package reminder_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/reminder"
	"github.com/mika/debt-ledger/pkg/reminder/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func overdueDebt() *models.Debt {
	due := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return &models.Debt{
		Id:               "debt-1",
		OwnerId:          "owner-1",
		Kind:             models.LENT,
		CounterpartyName: "Alice",
		OriginalAmount:   1000,
		PaidAmount:       400,
		CurrentAmount:    600,
		Currency:         "USD",
		Status:           models.PARTIAL,
		DueDate:          &due,
	}
}

func TestNotifyOverdue(t *testing.T) {
	t.Run("Lent reminder names who owes whom", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		notifier := reminder.NewSQSNotifier(mockClient, "https://queue.example/reminders")

		var input *sqs.SendMessageInput
		mockClient.On("SendMessage", mock.Anything, mock.AnythingOfType("*sqs.SendMessageInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*sqs.SendMessageInput)
			}).Return(&sqs.SendMessageOutput{}, nil)

		err := notifier.NotifyOverdue(context.Background(), overdueDebt())

		assert.NoError(t, err)
		assert.Equal(t, "https://queue.example/reminders", *input.QueueUrl)

		var msg reminder.Message
		assert.NoError(t, json.Unmarshal([]byte(*input.MessageBody), &msg))
		assert.Equal(t, "debt-1", msg.DebtId)
		assert.Equal(t, "$6.00", msg.Outstanding)
		assert.Contains(t, msg.Text, "Alice still owes you $6.00")
		assert.Contains(t, msg.Text, "2026-08-01")
		mockClient.AssertExpectations(t)
	})

	t.Run("Borrowed reminder flips the direction", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		notifier := reminder.NewSQSNotifier(mockClient, "queue-url")

		var input *sqs.SendMessageInput
		mockClient.On("SendMessage", mock.Anything, mock.AnythingOfType("*sqs.SendMessageInput")).
			Run(func(args mock.Arguments) {
				input = args.Get(1).(*sqs.SendMessageInput)
			}).Return(&sqs.SendMessageOutput{}, nil)

		debt := overdueDebt()
		debt.Kind = models.BORROWED
		debt.CounterpartyName = "Bob"

		err := notifier.NotifyOverdue(context.Background(), debt)

		assert.NoError(t, err)

		var msg reminder.Message
		assert.NoError(t, json.Unmarshal([]byte(*input.MessageBody), &msg))
		assert.Contains(t, msg.Text, "You still owe Bob $6.00")
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing due date fails", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		notifier := reminder.NewSQSNotifier(mockClient, "queue-url")

		debt := overdueDebt()
		debt.DueDate = nil

		err := notifier.NotifyOverdue(context.Background(), debt)

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	})

	t.Run("Send failure surfaces", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		notifier := reminder.NewSQSNotifier(mockClient, "queue-url")

		mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("queue unavailable"))

		err := notifier.NotifyOverdue(context.Background(), overdueDebt())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send reminder")
		mockClient.AssertExpectations(t)
	})
}
