package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStudentUnmarshalActiveDefault(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"key absent defaults to true", `{"id":"a1b2c3d4","name":"Anna"}`, true},
		{"explicit true", `{"id":"a1b2c3d4","active":true}`, true},
		{"explicit false", `{"id":"a1b2c3d4","active":false}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Student
			if err := json.Unmarshal([]byte(tt.data), &s); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if s.Active != tt.want {
				t.Errorf("Active = %v, want %v", s.Active, tt.want)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NotFound("Student")
	if err.Error() != "Student not found" {
		t.Errorf("Error() = %q, want %q", err.Error(), "Student not found")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
	if IsNotFound(errors.New("Student not found")) {
		t.Error("IsNotFound() should not match arbitrary errors")
	}
}

func TestAttendanceStatus(t *testing.T) {
	for _, s := range []AttendanceStatus{StatusPresent, StatusAbsent, StatusLate} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if AttendanceStatus("sick").Valid() {
		t.Error("unknown status should be invalid")
	}

	if !StatusPresent.Qualifies() || !StatusLate.Qualifies() {
		t.Error("present and late should qualify for payroll")
	}
	if StatusAbsent.Qualifies() {
		t.Error("absent should not qualify for payroll")
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{ Validate() error }
		wantErr error
	}{
		{"student ok", StudentCreate{Name: "Anna", HourlyRate: 20}, nil},
		{"student empty name", StudentCreate{Name: "  "}, ErrEmptyName},
		{"student negative rate", StudentCreate{Name: "Anna", HourlyRate: -5}, ErrNegativeRate},
		{"class ok", ClassCreate{Name: "Mat", DayOfWeek: "Monday", StartTime: "10:00", EndTime: "11:00"}, nil},
		{"class bad day", ClassCreate{Name: "Mat", DayOfWeek: "Lunedì", StartTime: "10:00", EndTime: "11:00"}, ErrInvalidDayOfWeek},
		{"class bad time", ClassCreate{Name: "Mat", DayOfWeek: "Monday", StartTime: "x", EndTime: "11:00"}, ErrInvalidTime},
		{"session ok", SessionCreate{ClassID: "c1", Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00"}, nil},
		{"session missing class", SessionCreate{Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00"}, ErrMissingReference},
		{"session empty date", SessionCreate{ClassID: "c1", StartTime: "10:00", EndTime: "11:00"}, ErrEmptyDate},
		{"attendance ok", AttendanceCreate{SessionID: "s1", StudentID: "a1", Status: StatusPresent}, nil},
		{"attendance bad status", AttendanceCreate{SessionID: "s1", StudentID: "a1", Status: "sick"}, ErrInvalidStatus},
		{"attendance missing student", AttendanceCreate{SessionID: "s1", Status: StatusPresent}, ErrMissingReference},
		{"payment ok", PaymentCreate{StudentID: "a1", Amount: 10, Date: "2024-01-01"}, nil},
		{"payment missing student", PaymentCreate{Amount: 10, Date: "2024-01-01"}, ErrMissingReference},
		{"payment empty date", PaymentCreate{StudentID: "a1", Amount: 10}, ErrEmptyDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
