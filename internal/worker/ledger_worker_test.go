package worker

import (
	"context"
	"errors"
	"testing"

	"lezioni/internal/amqp"
	"lezioni/internal/core"
	"lezioni/internal/sheets"
	"lezioni/internal/sheets/memory"
)

func TestLedgerWorkerHandleMessage(t *testing.T) {
	store := memory.New()
	w := NewLedgerWorker(store)
	ctx := context.Background()

	payment := core.Payment{
		ID:        "a1b2c3d4",
		StudentID: "e5f6a7b8",
		Amount:    40,
		Date:      "2024-01-15",
	}

	if err := w.HandleMessage(ctx, amqp.NewPaymentLedgerMessage(amqp.EventPaymentRecorded, payment)); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if err := w.HandleMessage(ctx, amqp.NewPaymentLedgerMessage(amqp.EventPaymentDeleted, payment)); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}

	entries := store.Entries()
	if len(entries) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(entries))
	}
	if entries[0].Event != amqp.EventPaymentRecorded || entries[0].Payment.Amount != 40 {
		t.Errorf("recorded entry = %+v, want amount 40", entries[0])
	}
	if entries[1].Event != amqp.EventPaymentDeleted || entries[1].Payment.Amount != -40 {
		t.Errorf("deleted entry = %+v, want storno amount -40", entries[1])
	}
}

type failingLedger struct{ err error }

func (f *failingLedger) Append(context.Context, sheets.Entry) (string, error) {
	return "", f.err
}

func TestLedgerWorkerHandleMessagePropagatesAppendError(t *testing.T) {
	wantErr := errors.New("sheet unavailable")
	w := NewLedgerWorker(&failingLedger{err: wantErr})

	msg := amqp.NewPaymentLedgerMessage(amqp.EventPaymentRecorded, core.Payment{ID: "a1b2c3d4"})
	err := w.HandleMessage(context.Background(), msg)
	if !errors.Is(err, wantErr) {
		t.Errorf("HandleMessage() error = %v, want wrapped %v", err, wantErr)
	}
}
