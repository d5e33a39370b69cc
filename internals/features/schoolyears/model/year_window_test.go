package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcademicStartYear(t *testing.T) {
	assert.Equal(t, 2025, AcademicStartYear(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, AcademicStartYear(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, AcademicStartYear(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2026, AcademicStartYear(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCreationWindow(t *testing.T) {
	today := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC) // inside 2025-2026

	isLast, isNext := CreationWindow(today,
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	assert.True(t, isLast)
	assert.False(t, isNext)

	isLast, isNext = CreationWindow(today,
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC))
	assert.False(t, isLast)
	assert.True(t, isNext)

	// The current year and anything further out are both out of bounds.
	isLast, isNext = CreationWindow(today,
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	assert.False(t, isLast)
	assert.False(t, isNext)

	isLast, isNext = CreationWindow(today,
		time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2028, 6, 30, 0, 0, 0, 0, time.UTC))
	assert.False(t, isLast)
	assert.False(t, isNext)
}

func TestOverlapsAndContains(t *testing.T) {
	year := SchoolYearModel{
		SchoolYearStartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		SchoolYearEndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, year.Contains(time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, year.Contains(year.SchoolYearStartDate))
	assert.True(t, year.Contains(year.SchoolYearEndDate))
	assert.False(t, year.Contains(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))

	// Touching at the boundary counts as overlap.
	assert.True(t, year.Overlaps(
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, year.Overlaps(
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, year.Overlaps(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)))
}
