package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

// ClassService owns the classes collection and, on create, the enrollment
// side effect on students.
type ClassService struct {
	classes  *store.Collection[core.Class]
	students *store.Collection[core.Student]
	now      clock
	newID    idgen
}

func (s *ClassService) List(ctx context.Context) ([]core.Class, error) {
	return s.classes.Load(ctx)
}

func (s *ClassService) Get(ctx context.Context, id string) (core.Class, error) {
	items, err := s.classes.Load(ctx)
	if err != nil {
		return core.Class{}, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return core.Class{}, core.NotFound("Class")
}

// Create appends the class, then enrolls every referenced student by adding
// the new class id to their enrolledClasses (idempotent union). The two
// saves are sequential and not atomic; a crash in between leaves the class
// without enrollments, matching the store's documented consistency model.
func (s *ClassService) Create(ctx context.Context, in core.ClassCreate) (core.Class, error) {
	if err := in.Validate(); err != nil {
		return core.Class{}, err
	}

	items, err := s.classes.Load(ctx)
	if err != nil {
		return core.Class{}, err
	}

	class := core.Class{
		ID:         s.newID(),
		Name:       in.Name,
		DayOfWeek:  in.DayOfWeek,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		StudentIDs: in.StudentIDs,
		CreatedAt:  stamp(s.now),
	}
	if class.StudentIDs == nil {
		class.StudentIDs = []string{}
	}

	items = append(items, class)
	if err := s.classes.Save(ctx, items); err != nil {
		return core.Class{}, err
	}

	if len(class.StudentIDs) > 0 {
		if err := s.enrollStudents(ctx, class.ID, class.StudentIDs); err != nil {
			return core.Class{}, fmt.Errorf("enroll students: %w", err)
		}
	}

	slog.InfoContext(ctx, "Class created",
		"class_id", class.ID, "name", class.Name, "enrolled", len(class.StudentIDs))
	return class, nil
}

func (s *ClassService) enrollStudents(ctx context.Context, classID string, studentIDs []string) error {
	students, err := s.students.Load(ctx)
	if err != nil {
		return err
	}
	for i := range students {
		if !slices.Contains(studentIDs, students[i].ID) {
			continue
		}
		if !slices.Contains(students[i].EnrolledClasses, classID) {
			students[i].EnrolledClasses = append(students[i].EnrolledClasses, classID)
		}
	}
	return s.students.Save(ctx, students)
}

// Update patches the class record only. Changing studentIds here does not
// touch any student's enrolledClasses; there is no symmetric cleanup.
func (s *ClassService) Update(ctx context.Context, id string, patch core.ClassPatch) (core.Class, error) {
	items, err := s.classes.Load(ctx)
	if err != nil {
		return core.Class{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if patch.DayOfWeek != nil && !core.ValidDayOfWeek(items[i].DayOfWeek) {
			return core.Class{}, fmt.Errorf("%w: %q", core.ErrInvalidDayOfWeek, items[i].DayOfWeek)
		}
		if err := s.classes.Save(ctx, items); err != nil {
			return core.Class{}, err
		}
		return items[i], nil
	}
	return core.Class{}, core.NotFound("Class")
}

func (s *ClassService) Delete(ctx context.Context, id string) (core.Class, error) {
	items, err := s.classes.Load(ctx)
	if err != nil {
		return core.Class{}, err
	}
	for i, c := range items {
		if c.ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := s.classes.Save(ctx, items); err != nil {
			return core.Class{}, fmt.Errorf("save after delete: %w", err)
		}
		slog.InfoContext(ctx, "Class deleted", "class_id", c.ID)
		return c, nil
	}
	return core.Class{}, core.NotFound("Class")
}
