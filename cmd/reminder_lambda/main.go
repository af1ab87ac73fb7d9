package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/mika/debt-ledger/pkg/reminder"
	"github.com/mika/debt-ledger/pkg/storage"
	dydbstore "github.com/mika/debt-ledger/pkg/storage/dynamodb"
)

var store storage.Storage
var notifier reminder.Notifier

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	// Initialize dependencies.
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	notifier = reminder.NewSQSNotifier(sqsClient, sqsQueueURL)

	debtsTable := os.Getenv("DYNAMODB_DEBTS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	store = dydbstore.New(dbClient, debtsTable, accountsTable, transactionsTable, connectionsTable)
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting overdue debt reminder sweep...")

	overdue, err := store.ListOverdueDebts(ctx, time.Now())
	if err != nil {
		log.Printf("ERROR: failed to list overdue debts: %v", err)
		return err
	}

	if len(overdue) == 0 {
		log.Println("No overdue debts found.")
		return nil
	}

	log.Printf("Found %d overdue debts. Enqueuing reminders...", len(overdue))

	for _, debt := range overdue {
		if err := notifier.NotifyOverdue(ctx, &debt); err != nil {
			log.Printf("ERROR: failed to enqueue reminder for debt %s: %v", debt.Id, err)
			// Continue to the next debt, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully enqueued reminder for debt %s", debt.Id)
	}

	log.Println("Reminder sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
