package service

import (
	"context"
	"fmt"
	"log/slog"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

// SessionFilter narrows List results; empty fields match everything and
// multiple fields combine with AND.
type SessionFilter struct {
	Date    string
	ClassID string
}

// SessionService owns the sessions collection and the cascade into
// attendance on delete.
type SessionService struct {
	sessions   *store.Collection[core.Session]
	attendance *store.Collection[core.Attendance]
	now        clock
	newID      idgen
}

func (s *SessionService) List(ctx context.Context, filter SessionFilter) ([]core.Session, error) {
	items, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]core.Session, 0, len(items))
	for _, sess := range items {
		if filter.Date != "" && sess.Date != filter.Date {
			continue
		}
		if filter.ClassID != "" && sess.ClassID != filter.ClassID {
			continue
		}
		out = append(out, sess)
	}
	return out, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (core.Session, error) {
	items, err := s.sessions.Load(ctx)
	if err != nil {
		return core.Session{}, err
	}
	for _, sess := range items {
		if sess.ID == id {
			return sess, nil
		}
	}
	return core.Session{}, core.NotFound("Session")
}

func (s *SessionService) Create(ctx context.Context, in core.SessionCreate) (core.Session, error) {
	if err := in.Validate(); err != nil {
		return core.Session{}, err
	}

	hours, err := core.HoursBetween(in.StartTime, in.EndTime)
	if err != nil {
		return core.Session{}, err
	}

	items, err := s.sessions.Load(ctx)
	if err != nil {
		return core.Session{}, err
	}

	session := core.Session{
		ID:          s.newID(),
		ClassID:     in.ClassID,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		HoursWorked: hours,
		CreatedAt:   stamp(s.now),
	}

	items = append(items, session)
	if err := s.sessions.Save(ctx, items); err != nil {
		return core.Session{}, err
	}

	slog.InfoContext(ctx, "Session created",
		"session_id", session.ID, "class_id", session.ClassID,
		"date", session.Date, "hours_worked", session.HoursWorked)
	return session, nil
}

// Update merges the supplied time fields over the stored ones and recomputes
// hoursWorked from the result. The derived value can never be set directly.
func (s *SessionService) Update(ctx context.Context, id string, patch core.SessionPatch) (core.Session, error) {
	items, err := s.sessions.Load(ctx)
	if err != nil {
		return core.Session{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		start, end := patch.Times(items[i])
		hours, err := core.HoursBetween(start, end)
		if err != nil {
			return core.Session{}, err
		}
		items[i].StartTime = start
		items[i].EndTime = end
		items[i].HoursWorked = hours
		if err := s.sessions.Save(ctx, items); err != nil {
			return core.Session{}, err
		}
		return items[i], nil
	}
	return core.Session{}, core.NotFound("Session")
}

// Delete removes the session and every attendance row that references it.
// The two collection saves are sequential, not atomic.
func (s *SessionService) Delete(ctx context.Context, id string) (core.Session, error) {
	items, err := s.sessions.Load(ctx)
	if err != nil {
		return core.Session{}, err
	}
	for i, sess := range items {
		if sess.ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := s.sessions.Save(ctx, items); err != nil {
			return core.Session{}, fmt.Errorf("save after delete: %w", err)
		}
		if err := s.cascadeAttendance(ctx, id); err != nil {
			return core.Session{}, fmt.Errorf("cascade attendance: %w", err)
		}
		slog.InfoContext(ctx, "Session deleted", "session_id", sess.ID)
		return sess, nil
	}
	return core.Session{}, core.NotFound("Session")
}

func (s *SessionService) cascadeAttendance(ctx context.Context, sessionID string) error {
	rows, err := s.attendance.Load(ctx)
	if err != nil {
		return err
	}
	kept := rows[:0]
	removed := 0
	for _, a := range rows {
		if a.SessionID == sessionID {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	if removed == 0 {
		return nil
	}
	slog.InfoContext(ctx, "Cascaded attendance delete",
		"session_id", sessionID, "removed", removed)
	return s.attendance.Save(ctx, kept)
}
