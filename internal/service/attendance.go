package service

import (
	"context"
	"fmt"
	"log/slog"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

type AttendanceFilter struct {
	SessionID string
	StudentID string
}

// AttendanceService owns the attendance collection and enforces the one
// record per (sessionId, studentId) invariant.
type AttendanceService struct {
	attendance *store.Collection[core.Attendance]
	now        clock
	newID      idgen
}

func (s *AttendanceService) List(ctx context.Context, filter AttendanceFilter) ([]core.Attendance, error) {
	items, err := s.attendance.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]core.Attendance, 0, len(items))
	for _, a := range items {
		if filter.SessionID != "" && a.SessionID != filter.SessionID {
			continue
		}
		if filter.StudentID != "" && a.StudentID != filter.StudentID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// Create rejects a duplicate (sessionId, studentId) pair with
// core.ErrAttendanceExists.
func (s *AttendanceService) Create(ctx context.Context, in core.AttendanceCreate) (core.Attendance, error) {
	if err := in.Validate(); err != nil {
		return core.Attendance{}, err
	}

	items, err := s.attendance.Load(ctx)
	if err != nil {
		return core.Attendance{}, err
	}
	for _, a := range items {
		if a.SessionID == in.SessionID && a.StudentID == in.StudentID {
			return core.Attendance{}, core.ErrAttendanceExists
		}
	}

	row := core.Attendance{
		ID:        s.newID(),
		SessionID: in.SessionID,
		StudentID: in.StudentID,
		Status:    in.Status,
		CreatedAt: stamp(s.now),
	}
	items = append(items, row)
	if err := s.attendance.Save(ctx, items); err != nil {
		return core.Attendance{}, err
	}

	slog.InfoContext(ctx, "Attendance recorded",
		"attendance_id", row.ID, "session_id", row.SessionID,
		"student_id", row.StudentID, "status", row.Status)
	return row, nil
}

// CreateBulk records many rows in one save. Pairs that already exist — in
// the collection or earlier in the same batch — are skipped silently; the
// returned slice holds only the rows actually created. Invalid entries fail
// the whole batch before anything is written.
func (s *AttendanceService) CreateBulk(ctx context.Context, ins []core.AttendanceCreate) ([]core.Attendance, error) {
	for i, in := range ins {
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	items, err := s.attendance.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[[2]string]bool, len(items))
	for _, a := range items {
		seen[[2]string{a.SessionID, a.StudentID}] = true
	}

	created := []core.Attendance{}
	for _, in := range ins {
		key := [2]string{in.SessionID, in.StudentID}
		if seen[key] {
			continue
		}
		seen[key] = true
		row := core.Attendance{
			ID:        s.newID(),
			SessionID: in.SessionID,
			StudentID: in.StudentID,
			Status:    in.Status,
			CreatedAt: stamp(s.now),
		}
		items = append(items, row)
		created = append(created, row)
	}

	if err := s.attendance.Save(ctx, items); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Bulk attendance recorded",
		"requested", len(ins), "created", len(created), "skipped", len(ins)-len(created))
	return created, nil
}

// Update only ever changes the status.
func (s *AttendanceService) Update(ctx context.Context, id string, patch core.AttendancePatch) (core.Attendance, error) {
	if !patch.Status.Valid() {
		return core.Attendance{}, fmt.Errorf("%w: %q", core.ErrInvalidStatus, patch.Status)
	}
	items, err := s.attendance.Load(ctx)
	if err != nil {
		return core.Attendance{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Status = patch.Status
		if err := s.attendance.Save(ctx, items); err != nil {
			return core.Attendance{}, err
		}
		return items[i], nil
	}
	return core.Attendance{}, core.NotFound("Attendance")
}
