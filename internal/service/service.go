// Package service implements the tuition tracker's operations over the
// record store: per-entity CRUD with referential side effects, payroll and
// balance reports, and the dashboard snapshot.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

// createdAtLayout mirrors the timestamps already present in existing data
// files (local time, microsecond precision, no zone).
const createdAtLayout = "2006-01-02T15:04:05.000000"

type (
	clock func() time.Time
	idgen func() string
)

// newShortID returns an 8-character id derived from a v4 UUID. Short ids are
// what the collections have always held; uniqueness within a collection of a
// few thousand records is all that's asked of them.
func newShortID() string {
	return uuid.NewString()[:8]
}

// LedgerPublisher pushes payment bookkeeping events to the external ledger
// pipeline. Implementations must be safe to skip: a nil publisher disables
// the ledger without affecting the API.
type LedgerPublisher interface {
	PublishPaymentRecorded(ctx context.Context, p core.Payment) error
	PublishPaymentDeleted(ctx context.Context, p core.Payment) error
}

// Registry wires every service over one store backend.
type Registry struct {
	Students   *StudentService
	Classes    *ClassService
	Sessions   *SessionService
	Attendance *AttendanceService
	Payments   *PaymentService
	Reports    *ReportService
	Dashboard  *DashboardService
}

// NewRegistry builds the service graph. ledger may be nil.
func NewRegistry(backend store.Backend, ledger LedgerPublisher) *Registry {
	students := store.NewCollection[core.Student](backend, store.Students)
	classes := store.NewCollection[core.Class](backend, store.Classes)
	sessions := store.NewCollection[core.Session](backend, store.Sessions)
	attendance := store.NewCollection[core.Attendance](backend, store.Attendance)
	payments := store.NewCollection[core.Payment](backend, store.Payments)

	now := time.Now
	newID := newShortID

	return &Registry{
		Students:   &StudentService{students: students, now: now, newID: newID},
		Classes:    &ClassService{classes: classes, students: students, now: now, newID: newID},
		Sessions:   &SessionService{sessions: sessions, attendance: attendance, now: now, newID: newID},
		Attendance: &AttendanceService{attendance: attendance, now: now, newID: newID},
		Payments:   &PaymentService{payments: payments, ledger: ledger, now: now, newID: newID},
		Reports:    &ReportService{sessions: sessions, attendance: attendance, students: students, payments: payments},
		Dashboard:  &DashboardService{students: students, classes: classes, sessions: sessions, payments: payments, now: now},
	}
}

func stamp(now clock) string {
	return now().Format(createdAtLayout)
}
