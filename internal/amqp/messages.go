package amqp

import (
	"encoding/json"
	"time"
)

// Loan change operations carried on the stream.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// LoanChangedMessage is a lightweight notification that the portfolio
// changed. It carries only the loan ID and the operation; consumers
// read the current collection from the store.
type LoanChangedMessage struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	Timestamp time.Time `json:"timestamp"`
}

func NewLoanChangedMessage(id, op string) *LoanChangedMessage {
	return &LoanChangedMessage{
		ID:        id,
		Op:        op,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LoanChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LoanChangedMessageFromJSON creates a message from JSON bytes
func LoanChangedMessageFromJSON(data []byte) (*LoanChangedMessage, error) {
	var msg LoanChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
