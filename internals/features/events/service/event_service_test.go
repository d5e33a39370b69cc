package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	evModel "ptaweb_backend/internals/features/events/model"
	syModel "ptaweb_backend/internals/features/schoolyears/model"
)

func serviceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&syModel.SchoolYearModel{},
		&evModel.EventModel{},
		&evModel.EventDayModel{},
	))
	return db
}

func makeYear(t *testing.T, db *gorm.DB, name string, startYear int) *syModel.SchoolYearModel {
	t.Helper()
	year := &syModel.SchoolYearModel{
		SchoolYearName:      name,
		SchoolYearStartDate: time.Date(startYear, 7, 1, 0, 0, 0, 0, time.UTC),
		SchoolYearEndDate:   time.Date(startYear+1, 6, 30, 0, 0, 0, 0, time.UTC),
		SchoolYearStatus:    syModel.SchoolYearCurrent,
	}
	require.NoError(t, db.Create(year).Error)
	return year
}

func makeEvent(t *testing.T, db *gorm.DB, svc *EventService, year *syModel.SchoolYearModel, title string, date time.Time) *evModel.EventModel {
	t.Helper()
	ev := &evModel.EventModel{
		EventTitle:        title,
		EventDate:         date,
		EventStartTime:    date.Add(17 * time.Hour),
		EventEndTime:      date.Add(20 * time.Hour),
		EventSchoolYearID: year.SchoolYearID,
		EventCategoryID:   uuid.New(),
	}
	require.NoError(t, svc.CreateWithUniqueSlug(ev, year))
	return ev
}

func TestCreateSlugFallsBackToYearSuffix(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)
	year := makeYear(t, db, "2025-2026", 2025)
	date := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)

	first := makeEvent(t, db, svc, year, "Fall Festival", date)
	assert.Equal(t, "fall-festival", first.EventSlug)

	second := makeEvent(t, db, svc, year, "Fall Festival", date.AddDate(0, 0, 7))
	assert.Equal(t, "fall-festival-20252026", second.EventSlug)
}

func TestCreateSlugFreeInOtherYear(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)
	thisYear := makeYear(t, db, "2025-2026", 2025)
	nextYear := makeYear(t, db, "2026-2027", 2026)

	a := makeEvent(t, db, svc, thisYear, "Fall Festival", time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC))
	b := makeEvent(t, db, svc, nextYear, "Fall Festival", time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "fall-festival", a.EventSlug)
	assert.Equal(t, "fall-festival", b.EventSlug)
}

func TestApprove(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)
	year := makeYear(t, db, "2025-2026", 2025)
	ev := makeEvent(t, db, svc, year, "Bingo Night", time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC))

	approver := uuid.New()

	// Straight from Planning the approval must fail and change nothing.
	_, err := svc.Approve(ev.EventID, approver, "")
	assert.ErrorIs(t, err, ErrNotSubmitted)

	var unchanged evModel.EventModel
	require.NoError(t, db.First(&unchanged, "event_id = ?", ev.EventID).Error)
	assert.Equal(t, evModel.StatusPlanning, unchanged.EventStatus)
	assert.Nil(t, unchanged.EventApprovedByUserID)

	require.NoError(t, db.Model(&evModel.EventModel{}).
		Where("event_id = ?", ev.EventID).
		Update("event_status", evModel.StatusSubmittedForApproval).Error)

	approved, err := svc.Approve(ev.EventID, approver, "Looks good")
	require.NoError(t, err)
	assert.Equal(t, evModel.StatusActive, approved.EventStatus)
	require.NotNil(t, approved.EventApprovedByUserID)
	assert.Equal(t, approver, *approved.EventApprovedByUserID)
	require.NotNil(t, approved.EventApprovedDate)
	assert.WithinDuration(t, time.Now().UTC(), *approved.EventApprovedDate, time.Minute)
	assert.Equal(t, "Looks good", approved.EventApprovalNotes)
}

func TestApproveMissingEvent(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)

	_, err := svc.Approve(uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCopyShiftsTimesAndDays(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)
	srcYear := makeYear(t, db, "2025-2026", 2025)
	dstYear := makeYear(t, db, "2026-2027", 2026)

	srcDate := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)
	src := makeEvent(t, db, svc, srcYear, "Book Fair", srcDate)
	src.EventStatus = evModel.StatusCompleted
	setup := srcDate.Add(15 * time.Hour)
	cleanup := srcDate.Add(22 * time.Hour)
	src.EventSetupStartTime = &setup
	src.EventCleanupEndTime = &cleanup
	require.NoError(t, db.Save(src).Error)

	for i := 1; i <= 3; i++ {
		day := evModel.EventDayModel{
			EventDayEventID: src.EventID,
			EventDayNumber:  i,
			EventDayDate:    srcDate.AddDate(0, 0, i-1),
		}
		require.NoError(t, db.Create(&day).Error)
	}

	newStart := srcDate.AddDate(0, 0, 400)
	clone, err := svc.Copy(CopyRequest{
		SourceEventID:      src.EventID,
		TargetSchoolYearID: dstYear.SchoolYearID,
		NewStartDate:       &newStart,
		CopyEventDays:      true,
	}, "System")
	require.NoError(t, err)

	// Status resets, lineage is recorded, whole-day offset preserves
	// time-of-day on every timestamp.
	assert.Equal(t, evModel.StatusPlanning, clone.EventStatus)
	require.NotNil(t, clone.EventSourceEventID)
	assert.Equal(t, src.EventID, *clone.EventSourceEventID)
	assert.Equal(t, 1, clone.EventCopyGeneration)

	assert.Equal(t, newStart, clone.EventDate)
	assert.Equal(t, src.EventStartTime.AddDate(0, 0, 400), clone.EventStartTime)
	assert.Equal(t, src.EventEndTime.AddDate(0, 0, 400), clone.EventEndTime)
	require.NotNil(t, clone.EventSetupStartTime)
	assert.Equal(t, setup.AddDate(0, 0, 400), *clone.EventSetupStartTime)
	require.NotNil(t, clone.EventCleanupEndTime)
	assert.Equal(t, cleanup.AddDate(0, 0, 400), *clone.EventCleanupEndTime)

	// All three days shift by the same offset, keeping their spacing.
	require.Len(t, clone.EventDays, 3)
	for _, day := range clone.EventDays {
		want := srcDate.AddDate(0, 0, 400+day.EventDayNumber-1)
		assert.Equal(t, want, day.EventDayDate, "day %d", day.EventDayNumber)
	}

	// Source stays untouched.
	var after evModel.EventModel
	require.NoError(t, db.First(&after, "event_id = ?", src.EventID).Error)
	assert.Equal(t, evModel.StatusCompleted, after.EventStatus)
	assert.Equal(t, src.EventDate, after.EventDate)
	assert.Equal(t, 0, after.EventCopyGeneration)
}

func TestCopyDefaultsToOneYearLater(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)
	srcYear := makeYear(t, db, "2025-2026", 2025)
	dstYear := makeYear(t, db, "2026-2027", 2026)

	srcDate := time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)
	src := makeEvent(t, db, svc, srcYear, "Holiday Shop", srcDate)

	clone, err := svc.Copy(CopyRequest{
		SourceEventID:      src.EventID,
		TargetSchoolYearID: dstYear.SchoolYearID,
	}, "System")
	require.NoError(t, err)
	assert.Equal(t, srcDate.AddDate(1, 0, 0), clone.EventDate)
}

func TestCopyIntoCollidingYearGetsDifferentSlug(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)
	srcYear := makeYear(t, db, "2025-2026", 2025)
	dstYear := makeYear(t, db, "2026-2027", 2026)

	src := makeEvent(t, db, svc, srcYear, "Fall Festival", time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC))
	// The base slug is already taken in the target year.
	makeEvent(t, db, svc, dstYear, "Fall Festival", time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC))

	clone, err := svc.Copy(CopyRequest{
		SourceEventID:      src.EventID,
		TargetSchoolYearID: dstYear.SchoolYearID,
	}, "System")
	require.NoError(t, err)
	assert.NotEqual(t, "fall-festival", clone.EventSlug)
	assert.Equal(t, "fall-festival-20262027", clone.EventSlug)

	// A second copy probes numeric suffixes past the year-suffixed form.
	clone2, err := svc.Copy(CopyRequest{
		SourceEventID:      src.EventID,
		TargetSchoolYearID: dstYear.SchoolYearID,
	}, "System")
	require.NoError(t, err)
	assert.Equal(t, "fall-festival-20262027-1", clone2.EventSlug)
}

func TestCopyMissingTargets(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)
	year := makeYear(t, db, "2025-2026", 2025)
	src := makeEvent(t, db, svc, year, "Trivia Night", time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC))

	_, err := svc.Copy(CopyRequest{SourceEventID: uuid.New(), TargetSchoolYearID: year.SchoolYearID}, "System")
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.Copy(CopyRequest{SourceEventID: src.EventID, TargetSchoolYearID: uuid.New()}, "System")
	assert.ErrorIs(t, err, ErrSchoolYearNotFound)
}

func TestSummarizeCountsPartitionTotal(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	events := []evModel.EventModel{
		{EventStatus: evModel.StatusPlanning, EventDate: now.AddDate(0, 0, 3)},
		{EventStatus: evModel.StatusSubmittedForApproval, EventDate: now.AddDate(0, 0, 10)},
		{EventStatus: evModel.StatusActive, EventDate: now.AddDate(0, 0, 5), EventRequiresVolunteers: true},
		{EventStatus: evModel.StatusActive, EventDate: now.AddDate(0, 0, 20)},
		{EventStatus: evModel.StatusInProgress, EventDate: now.AddDate(0, 0, -1), EventEndTime: now.Add(-2 * time.Hour)},
		{EventStatus: evModel.StatusWrapUp, EventDate: now.AddDate(0, 0, -10)},
		{EventStatus: evModel.StatusCompleted, EventDate: now.AddDate(0, 0, -30)},
		{EventStatus: evModel.StatusCancelled, EventDate: now.AddDate(0, 0, 40)},
	}

	sum := SummarizeEvents(events, now)

	assert.Equal(t, 8, sum.TotalEvents)
	partition := sum.PlanningEvents + sum.PendingApproval + sum.ActiveEvents +
		sum.InProgressEvents + sum.WrapUpEvents + sum.CompletedEvents + sum.CancelledEvents
	assert.Equal(t, sum.TotalEvents, partition)

	assert.Equal(t, 1, sum.PlanningEvents)
	assert.Equal(t, 1, sum.PendingApproval)
	assert.Equal(t, 2, sum.ActiveEvents)
	assert.Equal(t, 1, sum.InProgressEvents)
	assert.Equal(t, 1, sum.WrapUpEvents)
	assert.Equal(t, 1, sum.CompletedEvents)
	assert.Equal(t, 1, sum.CancelledEvents)

	assert.Equal(t, 2, sum.UpcomingNext7Days)  // planning +3d, active +5d
	assert.Equal(t, 4, sum.UpcomingNext30Days) // +3, +10, +5, +20
	assert.Equal(t, 1, sum.RequiringVolunteers)

	// pending approval + stale in-progress + under-volunteered active
	assert.Equal(t, 3, sum.NeedsAttention)
}

func TestSummarizeMissingYear(t *testing.T) {
	db := serviceTestDB(t)
	svc := NewEventService(db)

	_, err := svc.Summarize(uuid.New(), time.Now().UTC())
	assert.ErrorIs(t, err, ErrSchoolYearNotFound)
}
