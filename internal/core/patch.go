package core

// Patch types model partial updates: only fields present in the request body
// are applied, everything else keeps its stored value. Pointer fields
// distinguish "absent" from "set to zero value".

type StudentPatch struct {
	Name            *string   `json:"name"`
	Phone           *string   `json:"phone"`
	Email           *string   `json:"email"`
	HourlyRate      *float64  `json:"hourlyRate"`
	Active          *bool     `json:"active"`
	EnrolledClasses *[]string `json:"enrolledClasses"`
}

func (p StudentPatch) Apply(s *Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.HourlyRate != nil {
		s.HourlyRate = *p.HourlyRate
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	if p.EnrolledClasses != nil {
		s.EnrolledClasses = *p.EnrolledClasses
	}
}

type ClassPatch struct {
	Name       *string   `json:"name"`
	DayOfWeek  *string   `json:"dayOfWeek"`
	StartTime  *string   `json:"startTime"`
	EndTime    *string   `json:"endTime"`
	StudentIDs *[]string `json:"studentIds"`
}

func (p ClassPatch) Apply(c *Class) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.DayOfWeek != nil {
		c.DayOfWeek = *p.DayOfWeek
	}
	if p.StartTime != nil {
		c.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		c.EndTime = *p.EndTime
	}
	if p.StudentIDs != nil {
		c.StudentIDs = *p.StudentIDs
	}
}

// SessionPatch only exposes the time fields; date and class binding are
// fixed at creation, and hoursWorked is always recomputed, never patched.
type SessionPatch struct {
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// Times returns the effective start/end pair after merging the patch over
// the stored session.
func (p SessionPatch) Times(s Session) (start, end string) {
	start, end = s.StartTime, s.EndTime
	if p.StartTime != nil {
		start = *p.StartTime
	}
	if p.EndTime != nil {
		end = *p.EndTime
	}
	return start, end
}

type AttendancePatch struct {
	Status AttendanceStatus `json:"status"`
}

type PaymentPatch struct {
	Amount *float64 `json:"amount"`
	Date   *string  `json:"date"`
	Notes  *string  `json:"notes"`
}

func (p PaymentPatch) Apply(pay *Payment) {
	if p.Amount != nil {
		pay.Amount = *p.Amount
	}
	if p.Date != nil {
		pay.Date = *p.Date
	}
	if p.Notes != nil {
		pay.Notes = *p.Notes
	}
}
