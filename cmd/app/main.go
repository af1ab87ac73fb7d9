package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/mika/debt-ledger/pkg/handlers/accounts"
	"github.com/mika/debt-ledger/pkg/handlers/debts"
	"github.com/mika/debt-ledger/pkg/handlers/livefeed"
	"github.com/mika/debt-ledger/pkg/handlers/transactions"
	"github.com/mika/debt-ledger/pkg/ledger"
	"github.com/mika/debt-ledger/pkg/middleware"
	"github.com/mika/debt-ledger/pkg/storage"
	dydbstore "github.com/mika/debt-ledger/pkg/storage/dynamodb"
	"github.com/mika/debt-ledger/pkg/websockets"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	debtsTable := os.Getenv("DYNAMODB_DEBTS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if debtsTable == "" || accountsTable == "" || transactionsTable == "" || connectionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// Create our storage implementation and wrap the debt side with change
	// notification for the live feed.
	store := dydbstore.New(dbClient, debtsTable, accountsTable, transactionsTable, connectionsTable)
	watchedDebts := storage.NewWatchedDebtStore(store)

	ledgerService := ledger.New(watchedDebts, logger)

	// The API Gateway publisher is optional; without an endpoint configured
	// the handlers fall back to a no-op and only the local feed is live.
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); apiEndpoint != "" {
		publisher, err = websockets.NewPublisher(store, store, apiEndpoint)
		if err != nil {
			log.Fatalf("unable to create websocket publisher: %v", err)
		}
	}

	// Create our handlers
	debtsHandler := debts.NewDebtsHandler(ledgerService, watchedDebts, publisher)
	accountsHandler := accounts.NewAccountsHandler(store)
	transactionsHandler := transactions.NewTransactionsHandler(store, store)
	feedHandler := livefeed.NewFeedHandler(watchedDebts)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))

	router.Route("/debts", func(r chi.Router) {
		r.Post("/", debtsHandler.CreateDebt)
		r.Get("/", debtsHandler.ListDebts)
		r.Get("/summary", debtsHandler.GetDebtSummary)
		r.Handle("/feed", feedHandler)
		r.Get("/{debtId}", func(w http.ResponseWriter, r *http.Request) {
			debtsHandler.GetDebtById(w, r, chi.URLParam(r, "debtId"))
		})
		r.Patch("/{debtId}", func(w http.ResponseWriter, r *http.Request) {
			debtsHandler.UpdateDebt(w, r, chi.URLParam(r, "debtId"))
		})
		r.Delete("/{debtId}", func(w http.ResponseWriter, r *http.Request) {
			debtsHandler.DeleteDebt(w, r, chi.URLParam(r, "debtId"))
		})
		r.Post("/{debtId}/payments", func(w http.ResponseWriter, r *http.Request) {
			debtsHandler.AddPayment(w, r, chi.URLParam(r, "debtId"))
		})
	})

	router.Route("/accounts", func(r chi.Router) {
		r.Post("/", accountsHandler.CreateAccount)
		r.Get("/", accountsHandler.ListAccounts)
		r.Get("/{accountId}", func(w http.ResponseWriter, r *http.Request) {
			accountsHandler.GetAccountById(w, r, chi.URLParam(r, "accountId"))
		})
		r.Delete("/{accountId}", func(w http.ResponseWriter, r *http.Request) {
			accountsHandler.DeleteAccount(w, r, chi.URLParam(r, "accountId"))
		})
	})

	router.Route("/transactions", func(r chi.Router) {
		r.Post("/", transactionsHandler.CreateTransaction)
		r.Get("/", transactionsHandler.ListTransactions)
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
