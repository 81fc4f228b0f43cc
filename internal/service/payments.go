package service

import (
	"context"
	"fmt"
	"log/slog"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

// PaymentService owns the payments collection. Each create/delete also
// publishes a ledger event so the worker can mirror the bookkeeping sheet;
// publishing failures are logged and never fail the request, the payment is
// already saved locally.
type PaymentService struct {
	payments *store.Collection[core.Payment]
	ledger   LedgerPublisher
	now      clock
	newID    idgen
}

func (s *PaymentService) List(ctx context.Context, studentID string) ([]core.Payment, error) {
	items, err := s.payments.Load(ctx)
	if err != nil {
		return nil, err
	}
	if studentID == "" {
		return items, nil
	}
	out := make([]core.Payment, 0, len(items))
	for _, p := range items {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (core.Payment, error) {
	items, err := s.payments.Load(ctx)
	if err != nil {
		return core.Payment{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return core.Payment{}, core.NotFound("Payment")
}

func (s *PaymentService) Create(ctx context.Context, in core.PaymentCreate) (core.Payment, error) {
	if err := in.Validate(); err != nil {
		return core.Payment{}, err
	}

	items, err := s.payments.Load(ctx)
	if err != nil {
		return core.Payment{}, err
	}

	payment := core.Payment{
		ID:        s.newID(),
		StudentID: in.StudentID,
		Amount:    in.Amount,
		Date:      in.Date,
		Notes:     in.Notes,
		CreatedAt: stamp(s.now),
	}
	items = append(items, payment)
	if err := s.payments.Save(ctx, items); err != nil {
		return core.Payment{}, err
	}

	s.publishRecorded(ctx, payment)

	slog.InfoContext(ctx, "Payment recorded",
		"payment_id", payment.ID, "student_id", payment.StudentID,
		"amount", payment.Amount, "date", payment.Date)
	return payment, nil
}

func (s *PaymentService) Update(ctx context.Context, id string, patch core.PaymentPatch) (core.Payment, error) {
	items, err := s.payments.Load(ctx)
	if err != nil {
		return core.Payment{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if err := s.payments.Save(ctx, items); err != nil {
			return core.Payment{}, err
		}
		return items[i], nil
	}
	return core.Payment{}, core.NotFound("Payment")
}

func (s *PaymentService) Delete(ctx context.Context, id string) (core.Payment, error) {
	items, err := s.payments.Load(ctx)
	if err != nil {
		return core.Payment{}, err
	}
	for i, p := range items {
		if p.ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := s.payments.Save(ctx, items); err != nil {
			return core.Payment{}, fmt.Errorf("save after delete: %w", err)
		}
		s.publishDeleted(ctx, p)
		slog.InfoContext(ctx, "Payment deleted", "payment_id", p.ID)
		return p, nil
	}
	return core.Payment{}, core.NotFound("Payment")
}

func (s *PaymentService) publishRecorded(ctx context.Context, p core.Payment) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.PublishPaymentRecorded(ctx, p); err != nil {
		slog.ErrorContext(ctx, "Failed to publish payment ledger event",
			"payment_id", p.ID, "error", err)
	}
}

func (s *PaymentService) publishDeleted(ctx context.Context, p core.Payment) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.PublishPaymentDeleted(ctx, p); err != nil {
		slog.ErrorContext(ctx, "Failed to publish payment delete event",
			"payment_id", p.ID, "error", err)
	}
}
