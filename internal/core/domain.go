package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// AttendanceStatus is the recorded presence of a student at a session.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
)

type (
	// Student is a tutored student. HourlyRate is the rate currently charged;
	// reports always use the current rate, never a historical one.
	Student struct {
		ID              string   `json:"id"`
		Name            string   `json:"name"`
		Phone           string   `json:"phone"`
		Email           string   `json:"email"`
		HourlyRate      float64  `json:"hourlyRate"`
		Active          bool     `json:"active"`
		EnrolledClasses []string `json:"enrolledClasses"`
		CreatedAt       string   `json:"createdAt"`
	}

	// Class is a recurring weekly slot students enroll into.
	Class struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		DayOfWeek  string   `json:"dayOfWeek"`
		StartTime  string   `json:"startTime"`
		EndTime    string   `json:"endTime"`
		StudentIDs []string `json:"studentIds"`
		CreatedAt  string   `json:"createdAt"`
	}

	// Session is one held occurrence of a class on a calendar date.
	// HoursWorked is derived from StartTime/EndTime and never set directly.
	Session struct {
		ID          string  `json:"id"`
		ClassID     string  `json:"classId"`
		Date        string  `json:"date"`
		StartTime   string  `json:"startTime"`
		EndTime     string  `json:"endTime"`
		HoursWorked float64 `json:"hoursWorked"`
		CreatedAt   string  `json:"createdAt"`
	}

	// Attendance links one student to one session. At most one record may
	// exist per (sessionId, studentId) pair.
	Attendance struct {
		ID        string           `json:"id"`
		SessionID string           `json:"sessionId"`
		StudentID string           `json:"studentId"`
		Status    AttendanceStatus `json:"status"`
		CreatedAt string           `json:"createdAt"`
	}

	// Payment is money received from a student.
	Payment struct {
		ID        string  `json:"id"`
		StudentID string  `json:"studentId"`
		Amount    float64 `json:"amount"`
		Date      string  `json:"date"`
		Notes     string  `json:"notes"`
		CreatedAt string  `json:"createdAt"`
	}
)

// UnmarshalJSON defaults the active flag to true when the key is absent,
// matching records written before the flag existed.
func (s *Student) UnmarshalJSON(data []byte) error {
	type alias Student
	aux := struct {
		*alias
		Active *bool `json:"active"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Active = aux.Active == nil || *aux.Active
	return nil
}

var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyDate        = errors.New("date cannot be empty")
	ErrNegativeRate     = errors.New("hourly rate cannot be negative")
	ErrInvalidDayOfWeek = errors.New("invalid day of week")
	ErrInvalidStatus    = errors.New("invalid attendance status")
	ErrMissingReference = errors.New("missing record reference")

	// ErrAttendanceExists signals a duplicate (sessionId, studentId) pair.
	ErrAttendanceExists = errors.New("attendance already recorded")
)

// NotFoundError reports a lookup of an id that is not in its collection.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// NotFound builds the canonical not-found error for an entity name.
func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Valid reports whether the status is one of the three known values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// Qualifies reports whether the status counts toward hours and earnings.
// Absent sessions are excluded from payroll and balances.
func (s AttendanceStatus) Qualifies() bool {
	return s == StatusPresent || s == StatusLate
}

type (
	// StudentCreate carries the caller-supplied fields for a new student.
	// Everything else is defaulted: active=true, no enrolled classes.
	StudentCreate struct {
		Name       string  `json:"name"`
		Phone      string  `json:"phone"`
		Email      string  `json:"email"`
		HourlyRate float64 `json:"hourlyRate"`
	}

	ClassCreate struct {
		Name       string   `json:"name"`
		DayOfWeek  string   `json:"dayOfWeek"`
		StartTime  string   `json:"startTime"`
		EndTime    string   `json:"endTime"`
		StudentIDs []string `json:"studentIds"`
	}

	SessionCreate struct {
		ClassID   string `json:"classId"`
		Date      string `json:"date"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}

	AttendanceCreate struct {
		SessionID string           `json:"sessionId"`
		StudentID string           `json:"studentId"`
		Status    AttendanceStatus `json:"status"`
	}

	PaymentCreate struct {
		StudentID string  `json:"studentId"`
		Amount    float64 `json:"amount"`
		Date      string  `json:"date"`
		Notes     string  `json:"notes"`
	}
)

func (c StudentCreate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if c.HourlyRate < 0 {
		return ErrNegativeRate
	}
	return nil
}

func (c ClassCreate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !ValidDayOfWeek(c.DayOfWeek) {
		return fmt.Errorf("%w: %q", ErrInvalidDayOfWeek, c.DayOfWeek)
	}
	if _, err := HoursBetween(c.StartTime, c.EndTime); err != nil {
		return err
	}
	return nil
}

func (c SessionCreate) Validate() error {
	if c.ClassID == "" {
		return fmt.Errorf("%w: classId", ErrMissingReference)
	}
	if c.Date == "" {
		return ErrEmptyDate
	}
	if _, err := HoursBetween(c.StartTime, c.EndTime); err != nil {
		return err
	}
	return nil
}

func (c AttendanceCreate) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("%w: sessionId", ErrMissingReference)
	}
	if c.StudentID == "" {
		return fmt.Errorf("%w: studentId", ErrMissingReference)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
	}
	return nil
}

func (c PaymentCreate) Validate() error {
	if c.StudentID == "" {
		return fmt.Errorf("%w: studentId", ErrMissingReference)
	}
	if c.Date == "" {
		return ErrEmptyDate
	}
	return nil
}
