package storage

// DebtLedgerStore is the set of operations the ledger service and the watch
// decorator need: debt reads/writes plus the privileged settlements.
type DebtLedgerStore interface {
	DebtStore
	SettlementStore
}

// Storage defines the root interface for the entire data layer. Components
// should depend on the more granular interfaces instead of this one.
type Storage interface {
	DebtLedgerStore
	AccountStore
	TransactionStore
	ConnectionStore
}
