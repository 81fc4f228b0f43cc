package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"lezioni/internal/core"
)

// Event names carried by ledger messages.
const (
	EventPaymentRecorded = "payment.recorded"
	EventPaymentDeleted  = "payment.deleted"
)

// PaymentLedgerMessage mirrors one payment mutation to the ledger worker.
// The full payment travels with the message so the worker never has to read
// the store, which may be a plain file on another host.
type PaymentLedgerMessage struct {
	Event     string       `json:"event"`
	Payment   core.Payment `json:"payment"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewPaymentLedgerMessage creates a ledger message for the given event.
func NewPaymentLedgerMessage(event string, payment core.Payment) *PaymentLedgerMessage {
	return &PaymentLedgerMessage{
		Event:     event,
		Payment:   payment,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *PaymentLedgerMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// PaymentLedgerMessageFromJSON creates a message from JSON bytes and checks
// the event name is one the worker knows how to handle.
func PaymentLedgerMessageFromJSON(data []byte) (*PaymentLedgerMessage, error) {
	var msg PaymentLedgerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	switch msg.Event {
	case EventPaymentRecorded, EventPaymentDeleted:
	default:
		return nil, fmt.Errorf("unknown ledger event %q", msg.Event)
	}
	return &msg, nil
}
