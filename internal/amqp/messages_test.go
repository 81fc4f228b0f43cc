package amqp

import (
	"testing"
	"time"

	"lezioni/internal/core"
)

func TestNewPaymentLedgerMessage(t *testing.T) {
	payment := core.Payment{
		ID:        "a1b2c3d4",
		StudentID: "e5f6a7b8",
		Amount:    40,
		Date:      "2024-01-15",
	}

	msg := NewPaymentLedgerMessage(EventPaymentRecorded, payment)

	if msg.Event != EventPaymentRecorded {
		t.Errorf("Event = %q, want %q", msg.Event, EventPaymentRecorded)
	}
	if msg.Payment.ID != payment.ID {
		t.Errorf("Payment.ID = %q, want %q", msg.Payment.ID, payment.ID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestPaymentLedgerMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	msg := &PaymentLedgerMessage{
		Event: EventPaymentDeleted,
		Payment: core.Payment{
			ID:        "a1b2c3d4",
			StudentID: "e5f6a7b8",
			Amount:    25.5,
			Date:      "2024-01-15",
			Notes:     "acconto",
		},
		Timestamp: timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := PaymentLedgerMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("PaymentLedgerMessageFromJSON() error = %v", err)
	}

	if parsed.Event != msg.Event {
		t.Errorf("Parsed Event = %q, want %q", parsed.Event, msg.Event)
	}
	if parsed.Payment != msg.Payment {
		t.Errorf("Parsed Payment = %+v, want %+v", parsed.Payment, msg.Payment)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestPaymentLedgerMessageFromJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"event": `},
		{"unknown event", `{"event":"payment.exploded","payment":{}}`},
		{"missing event", `{"payment":{"id":"a1b2c3d4"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PaymentLedgerMessageFromJSON([]byte(tt.data)); err == nil {
				t.Error("PaymentLedgerMessageFromJSON() should fail")
			}
		})
	}
}
