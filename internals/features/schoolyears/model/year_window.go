package model

import "time"

// AcademicStartYear returns the calendar year the academic year containing
// today started in (academic years run July 1 through June 30).
func AcademicStartYear(today time.Time) int {
	if today.Month() >= time.July {
		return today.Year()
	}
	return today.Year() - 1
}

// CreationWindow classifies a proposed date range against the only two
// ranges an admin may create: the previous academic year (for backfilled
// records) and the next academic year.
func CreationWindow(today, start, end time.Time) (isLastYear, isNextYear bool) {
	currentYear := AcademicStartYear(today)

	lastStart := time.Date(currentYear-1, time.July, 1, 0, 0, 0, 0, time.UTC)
	lastEnd := time.Date(currentYear, time.June, 30, 0, 0, 0, 0, time.UTC)
	nextStart := time.Date(currentYear+1, time.July, 1, 0, 0, 0, 0, time.UTC)
	nextEnd := time.Date(currentYear+2, time.June, 30, 0, 0, 0, 0, time.UTC)

	isLastYear = start.Equal(lastStart) && end.Equal(lastEnd)
	isNextYear = start.Equal(nextStart) && end.Equal(nextEnd)
	return isLastYear, isNextYear
}
