package entity

import "time"

// dateOnly truncates a timestamp to its calendar date, discarding
// time-of-day and normalizing the location to UTC so that day arithmetic
// is stable across zones.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ageOn computes full years of age at the reference date.
func ageOn(birthDate, on time.Time) int {
	age := on.Year() - birthDate.Year()
	if dateOnly(birthDate).After(dateOnly(on).AddDate(-age, 0, 0)) {
		age--
	}

	return age
}

// daysBetween returns the number of whole calendar days from a to b,
// negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
