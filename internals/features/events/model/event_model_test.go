package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDuration(t *testing.T) {
	start := time.Date(2025, 10, 3, 17, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	ev := EventModel{EventStartTime: start, EventEndTime: end}
	d := ev.EventDuration()
	require.NotNil(t, d)
	assert.Equal(t, 3*time.Hour, *d)

	assert.Nil(t, (&EventModel{EventEndTime: end}).EventDuration())
	assert.Nil(t, (&EventModel{EventStartTime: start}).EventDuration())
}

func TestTotalEventDuration(t *testing.T) {
	setup := time.Date(2025, 10, 3, 15, 0, 0, 0, time.UTC)
	cleanup := setup.Add(7 * time.Hour)

	ev := EventModel{EventSetupStartTime: &setup, EventCleanupEndTime: &cleanup}
	d := ev.TotalEventDuration()
	require.NotNil(t, d)
	assert.Equal(t, 7*time.Hour, *d)

	assert.Nil(t, (&EventModel{EventSetupStartTime: &setup}).TotalEventDuration())
}

func TestMultiDayFallsBackToEventDate(t *testing.T) {
	date := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)
	ev := EventModel{EventDate: date}

	assert.Equal(t, date, ev.MultiDayStartDate())
	assert.Equal(t, date, ev.MultiDayEndDate())
	assert.Equal(t, 1, ev.DayCount())

	// A single attached day still reads as a one-day event.
	ev.EventDays = []EventDayModel{{EventDayNumber: 1, EventDayDate: date.AddDate(0, 0, 5)}}
	assert.Equal(t, date, ev.MultiDayStartDate())
	assert.Equal(t, 1, ev.DayCount())
}

func TestMultiDaySpansDays(t *testing.T) {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	ev := EventModel{
		EventDate: date,
		EventDays: []EventDayModel{
			{EventDayNumber: 2, EventDayDate: date.AddDate(0, 0, 1)},
			{EventDayNumber: 1, EventDayDate: date},
			{EventDayNumber: 3, EventDayDate: date.AddDate(0, 0, 2)},
		},
	}

	assert.Equal(t, date, ev.MultiDayStartDate())
	assert.Equal(t, date.AddDate(0, 0, 2), ev.MultiDayEndDate())
	assert.Equal(t, 3, ev.DayCount())
}

func TestEventDayEffectiveFallbacks(t *testing.T) {
	parent := EventModel{
		EventDate:     time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
		EventLocation: "School Gym",
	}
	dayDate := time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC)
	day := EventDayModel{EventDayNumber: 2, EventDayDate: dayDate}

	assert.Equal(t, dayDate, day.EffectiveStartTime(&parent))
	assert.Equal(t, dayDate.Add(2*time.Hour), day.EffectiveEndTime(&parent))
	assert.Equal(t, "School Gym", day.EffectiveLocation(&parent))

	start := dayDate.Add(17 * time.Hour)
	end := dayDate.Add(20 * time.Hour)
	day.EventDayStartTime = &start
	day.EventDayEndTime = &end
	day.EventDayLocation = "Cafeteria"

	assert.Equal(t, start, day.EffectiveStartTime(&parent))
	assert.Equal(t, end, day.EffectiveEndTime(&parent))
	assert.Equal(t, "Cafeteria", day.EffectiveLocation(&parent))
}

func TestAuditStamps(t *testing.T) {
	actor := AuditActor("7f9c2ba4-0000-0000-0000-000000000001", "Jamie Rivera")
	assert.Equal(t, "7f9c2ba4-0000-0000-0000-000000000001|Jamie Rivera", actor)
	assert.Equal(t, "System", AuditActor("", ""))

	var meta AuditMeta
	meta.StampCreate(actor)
	assert.Equal(t, actor, meta.CreatedBy)
	assert.Equal(t, actor, meta.LastEditedBy)
	assert.Equal(t, "Initial creation", meta.ChangeNotes)
	assert.False(t, meta.CreatedOn.IsZero())

	meta.StampUpdate(actor, "")
	assert.Equal(t, "Updated", meta.ChangeNotes)
	meta.StampUpdate(actor, "Moved to the gym")
	assert.Equal(t, "Moved to the gym", meta.ChangeNotes)

	assert.Equal(t, "Jamie Rivera", ActorDisplayName(actor))
	assert.Equal(t, "7f9c2ba4-0000-0000-0000-000000000001", ActorUserID(actor))
	assert.Equal(t, "", ActorUserID("System"))
}
