package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	evModel "ptaweb_backend/internals/features/events/model"
)

func TestUpdateEventDayRequestApplyToModel(t *testing.T) {
	day := evModel.EventDayModel{
		EventDayNumber:            1,
		EventDayDate:              time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
		EventDayTitle:             "Kick-off Day",
		EventDayIsActive:          true,
		EventDayWeatherBackupPlan: "Move to the gym",
	}

	newDate := time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC)
	title := "Day Two"
	backup := "Cancel if lightning"
	inactive := false

	req := UpdateEventDayRequest{
		EventDayDate:              &newDate,
		EventDayTitle:             &title,
		EventDayIsActive:          &inactive,
		EventDayWeatherBackupPlan: &backup,
	}
	req.ApplyToModel(&day)

	assert.Equal(t, newDate, day.EventDayDate)
	assert.Equal(t, "Day Two", day.EventDayTitle)
	assert.False(t, day.EventDayIsActive)
	assert.Equal(t, "Cancel if lightning", day.EventDayWeatherBackupPlan)
	// Untouched fields keep their values.
	assert.Equal(t, 1, day.EventDayNumber)
}

func TestUpdateEventDayRequestEmptyIsNoOp(t *testing.T) {
	start := time.Date(2025, 10, 3, 17, 0, 0, 0, time.UTC)
	day := evModel.EventDayModel{
		EventDayNumber:            2,
		EventDayDate:              time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
		EventDayStartTime:         &start,
		EventDayWeatherBackupPlan: "Move to the gym",
	}
	before := day

	var req UpdateEventDayRequest
	req.ApplyToModel(&day)

	assert.Equal(t, before, day)
}
