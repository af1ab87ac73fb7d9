package dynamodb

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

// DynamoDBAPI captures the subset of the DynamoDB client the store uses.
// Having an interface here lets tests substitute a mock client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                DynamoDBAPI
	DebtsTableName        string
	AccountsTableName     string
	TransactionsTableName string
	ConnectionsTableName  string
}

// New creates a new Store.
func New(client DynamoDBAPI, debtsTable, accountsTable, transactionsTable, connectionsTable string) *Store {
	return &Store{
		Client:                client,
		DebtsTableName:        debtsTable,
		AccountsTableName:     accountsTable,
		TransactionsTableName: transactionsTable,
		ConnectionsTableName:  connectionsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// ownerIDIndex is a single-attribute GSI shared by the debts and
// transactions tables. Ordering is applied client-side after the query, so
// no composite sort-key index is required.
const ownerIDIndex = "owner_id-index"

// normalizeDebt recomputes the derived status from the stored amounts.
// Storage is never trusted for status; a mismatch is logged and corrected.
func normalizeDebt(d *models.Debt) {
	derived := models.ComputeStatus(d.PaidAmount, d.CurrentAmount)
	if d.Status != derived {
		slog.Warn("stored debt status out of sync, recomputed",
			"debtId", d.Id, "stored", d.Status, "derived", derived)
		d.Status = derived
	}
}
