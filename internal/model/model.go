// Package model contains the domain models shared across layers.
// Models carry JSON tags only; persistence details stay in the repositories.
package model

import "time"

// WeekStart returns midnight UTC of the Sunday that starts t's week.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
