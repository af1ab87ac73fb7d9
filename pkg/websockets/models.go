package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeDebtUpdate is for messages that report a debt ledger change.
	MessageTypeDebtUpdate MessageType = "debtUpdate"
)

// DebtAction says which ledger command produced a debt update.
type DebtAction string

const (
	DebtActionCreated DebtAction = "created"
	DebtActionPayment DebtAction = "payment"
	DebtActionUpdated DebtAction = "updated"
	DebtActionDeleted DebtAction = "deleted"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// DebtUpdatePayload is the payload for a debtUpdate message. Outstanding is
// the debt's unpaid remainder in minor units after the change; zero for a
// deleted or fully paid debt.
type DebtUpdatePayload struct {
	OwnerID     string     `json:"owner_id"`
	DebtID      string     `json:"debt_id"`
	Action      DebtAction `json:"action"`
	Outstanding int64      `json:"outstanding"`
}
