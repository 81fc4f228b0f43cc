package service

import (
	"context"
	"sort"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

const recentPaymentsLimit = 5

// DashboardService computes the today/this-month snapshot. now is injected
// so tests can pin the wall clock.
type DashboardService struct {
	students *store.Collection[core.Student]
	classes  *store.Collection[core.Class]
	sessions *store.Collection[core.Session]
	payments *store.Collection[core.Payment]
	now      clock
}

func (s *DashboardService) Summary(ctx context.Context) (core.DashboardSummary, error) {
	now := s.now()
	summary := core.DashboardSummary{
		Today:          core.DateOf(now),
		DayOfWeek:      now.Weekday().String(),
		TodaysClasses:  []core.Class{},
		TodaysSessions: []core.Session{},
		RecentPayments: []core.Payment{},
	}

	students, err := s.students.Load(ctx)
	if err != nil {
		return summary, err
	}
	classes, err := s.classes.Load(ctx)
	if err != nil {
		return summary, err
	}
	sessions, err := s.sessions.Load(ctx)
	if err != nil {
		return summary, err
	}
	payments, err := s.payments.Load(ctx)
	if err != nil {
		return summary, err
	}

	for _, st := range students {
		if st.Active {
			summary.ActiveStudents++
		}
	}

	summary.TotalClasses = len(classes)
	for _, c := range classes {
		if c.DayOfWeek == summary.DayOfWeek {
			summary.TodaysClasses = append(summary.TodaysClasses, c)
		}
	}

	monthStart := core.MonthStartOf(now)
	for _, sess := range sessions {
		if sess.Date == summary.Today {
			summary.TodaysSessions = append(summary.TodaysSessions, sess)
		}
		if sess.Date >= monthStart {
			summary.TotalHoursMonth += sess.HoursWorked
		}
	}

	// Stable sort: payments sharing a date keep their collection order, the
	// tie-break is deliberately left order-dependent.
	recent := make([]core.Payment, len(payments))
	copy(recent, payments)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > recentPaymentsLimit {
		recent = recent[:recentPaymentsLimit]
	}
	summary.RecentPayments = recent

	return summary, nil
}
