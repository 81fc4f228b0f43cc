package service

import (
	"context"
	"fmt"
	"log/slog"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

// StudentService owns the students collection.
type StudentService struct {
	students *store.Collection[core.Student]
	now      clock
	newID    idgen
}

func (s *StudentService) List(ctx context.Context) ([]core.Student, error) {
	return s.students.Load(ctx)
}

func (s *StudentService) Get(ctx context.Context, id string) (core.Student, error) {
	items, err := s.students.Load(ctx)
	if err != nil {
		return core.Student{}, err
	}
	for _, st := range items {
		if st.ID == id {
			return st, nil
		}
	}
	return core.Student{}, core.NotFound("Student")
}

func (s *StudentService) Create(ctx context.Context, in core.StudentCreate) (core.Student, error) {
	if err := in.Validate(); err != nil {
		return core.Student{}, err
	}

	items, err := s.students.Load(ctx)
	if err != nil {
		return core.Student{}, err
	}

	student := core.Student{
		ID:              s.newID(),
		Name:            in.Name,
		Phone:           in.Phone,
		Email:           in.Email,
		HourlyRate:      in.HourlyRate,
		Active:          true,
		EnrolledClasses: []string{},
		CreatedAt:       stamp(s.now),
	}

	items = append(items, student)
	if err := s.students.Save(ctx, items); err != nil {
		return core.Student{}, err
	}

	slog.InfoContext(ctx, "Student created", "student_id", student.ID, "name", student.Name)
	return student, nil
}

func (s *StudentService) Update(ctx context.Context, id string, patch core.StudentPatch) (core.Student, error) {
	items, err := s.students.Load(ctx)
	if err != nil {
		return core.Student{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if items[i].HourlyRate < 0 {
			return core.Student{}, core.ErrNegativeRate
		}
		if err := s.students.Save(ctx, items); err != nil {
			return core.Student{}, err
		}
		return items[i], nil
	}
	return core.Student{}, core.NotFound("Student")
}

// Delete removes the student record only. Enrollment lists, attendance rows
// and payments that reference the id are left behind on purpose; see
// DESIGN.md on dangling references.
func (s *StudentService) Delete(ctx context.Context, id string) (core.Student, error) {
	items, err := s.students.Load(ctx)
	if err != nil {
		return core.Student{}, err
	}
	for i, st := range items {
		if st.ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := s.students.Save(ctx, items); err != nil {
			return core.Student{}, fmt.Errorf("save after delete: %w", err)
		}
		slog.InfoContext(ctx, "Student deleted", "student_id", st.ID)
		return st, nil
	}
	return core.Student{}, core.NotFound("Student")
}
