// Package worker mirrors payment events onto the bookkeeping ledger.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"lezioni/internal/amqp"
	"lezioni/internal/sheets"
)

// LedgerWorker consumes payment ledger messages and appends them to the
// ledger sheet. The ledger is append-only: a deleted payment becomes a
// storno line, never a removed row.
type LedgerWorker struct {
	ledger sheets.LedgerAppender
}

func NewLedgerWorker(ledger sheets.LedgerAppender) *LedgerWorker {
	return &LedgerWorker{ledger: ledger}
}

// HandleMessage processes a single payment ledger message from AMQP.
// Returning an error requeues the message.
func (w *LedgerWorker) HandleMessage(ctx context.Context, msg *amqp.PaymentLedgerMessage) error {
	entry := sheets.Entry{
		Event:   msg.Event,
		Payment: msg.Payment,
	}
	if msg.Event == amqp.EventPaymentDeleted {
		// Storno line: negate the amount so sheet sums stay correct.
		entry.Payment.Amount = -entry.Payment.Amount
	}

	ref, err := w.ledger.Append(ctx, entry)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}

	slog.InfoContext(ctx, "Mirrored payment to ledger",
		"event", msg.Event,
		"payment_id", msg.Payment.ID,
		"sheets_ref", ref)
	return nil
}
