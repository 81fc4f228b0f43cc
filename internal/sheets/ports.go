package sheets

import (
	"context"

	"lezioni/internal/core"
)

// Entry is one ledger line: the payment plus the event that produced it.
// Deletions are appended as storno lines rather than removed from the sheet,
// the ledger stays append-only.
type Entry struct {
	Event   string
	Payment core.Payment
}

// Ports for outbound adapters.
type (
	LedgerAppender interface {
		Append(ctx context.Context, e Entry) (rowRef string, err error)
	}
)
