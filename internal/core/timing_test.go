package core

import (
	"errors"
	"testing"
	"time"
)

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"one hour", "10:00", "11:00", 1.0},
		{"ninety minutes", "10:00", "11:30", 1.5},
		{"rounded to cents of hours", "09:00", "09:50", 0.83},
		{"zero length", "14:00", "14:00", 0},
		{"end before start is negative", "11:00", "10:00", -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoursBetween(tt.start, tt.end)
			if err != nil {
				t.Fatalf("HoursBetween(%q, %q) error = %v", tt.start, tt.end, err)
			}
			if got != tt.want {
				t.Errorf("HoursBetween(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestHoursBetweenInvalidInput(t *testing.T) {
	for _, tc := range [][2]string{
		{"", "11:00"},
		{"10:00", ""},
		{"10am", "11:00"},
		{"10:00", "25:99"},
	} {
		if _, err := HoursBetween(tc[0], tc[1]); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("HoursBetween(%q, %q) error = %v, want ErrInvalidTime", tc[0], tc[1], err)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.006, 1.01},
		{0.8333333, 0.83},
		{-1.006, -1.01},
		{2, 2},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidDayOfWeek(t *testing.T) {
	for _, day := range []string{"Sunday", "Monday", "Saturday"} {
		if !ValidDayOfWeek(day) {
			t.Errorf("ValidDayOfWeek(%q) = false, want true", day)
		}
	}
	for _, day := range []string{"monday", "Lunedì", "", "Mon"} {
		if ValidDayOfWeek(day) {
			t.Errorf("ValidDayOfWeek(%q) = true, want false", day)
		}
	}
}

func TestMonthStartOf(t *testing.T) {
	ts := time.Date(2024, time.February, 29, 18, 30, 0, 0, time.Local)
	if got := MonthStartOf(ts); got != "2024-02-01" {
		t.Errorf("MonthStartOf() = %q, want 2024-02-01", got)
	}
	if got := DateOf(ts); got != "2024-02-29" {
		t.Errorf("DateOf() = %q, want 2024-02-29", got)
	}
}
