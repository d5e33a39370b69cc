package controller

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	evModel "ptaweb_backend/internals/features/events/model"
	syModel "ptaweb_backend/internals/features/schoolyears/model"
	helperAuth "ptaweb_backend/internals/helpers/auth"
)

func dayTestDB(t *testing.T) *gorm.DB {
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

// dayTestApp mounts the day routes behind a stub that hydrates the locals the
// JWT middleware would normally set.
func dayTestApp(db *gorm.DB, uid uuid.UUID, roles ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, uid.String())
		c.Locals(helperAuth.LocRoles, roles)
		return c.Next()
	})

	ctl := NewEventDayController(db)
	grp := app.Group("/events/:eventId/days")
	grp.Get("/", ctl.GetAll)
	grp.Get("/:dayId", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:dayId", ctl.Update)
	grp.Delete("/:dayId", ctl.Delete)
	grp.Post("/:dayId/copy", ctl.CopyToEvent)
	return app
}

func seedDayTestEvent(t *testing.T, db *gorm.DB, title, slug string, coordinator *uuid.UUID) *evModel.EventModel {
	t.Helper()
	year := &syModel.SchoolYearModel{
		SchoolYearName:      "2025-2026",
		SchoolYearStartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		SchoolYearEndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		SchoolYearStatus:    syModel.SchoolYearCurrent,
	}
	require.NoError(t, db.Create(year).Error)

	ev := &evModel.EventModel{
		EventTitle:         title,
		EventSlug:          slug,
		EventDate:          time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
		EventSchoolYearID:  year.SchoolYearID,
		EventCategoryID:    uuid.New(),
		EventCoordinatorID: coordinator,
	}
	require.NoError(t, db.Create(ev).Error)
	require.NotEqual(t, uuid.Nil, ev.EventID)
	return ev
}

func seedDay(t *testing.T, db *gorm.DB, ev *evModel.EventModel, number int, date time.Time) *evModel.EventDayModel {
	t.Helper()
	day := &evModel.EventDayModel{
		EventDayEventID:           ev.EventID,
		EventDayNumber:            number,
		EventDayDate:              date,
		EventDayTitle:             "Kick-off Day",
		EventDayLocation:          "Gym",
		EventDayWeatherBackupPlan: "Move indoors",
	}
	require.NoError(t, db.Create(day).Error)
	require.NotEqual(t, uuid.Nil, day.EventDayID)
	return day
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCopyEventDayDefaultsToNextYearAndAppend(t *testing.T) {
	db := dayTestDB(t)
	app := dayTestApp(db, uuid.New(), "Admin")

	src := seedDayTestEvent(t, db, "Fall Festival", "fall-festival", nil)
	srcDate := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)
	day := seedDay(t, db, src, 1, srcDate)

	target := seedDayTestEvent(t, db, "Fall Festival", "fall-festival-2", nil)
	seedDay(t, db, target, 1, srcDate.AddDate(1, 0, 0))

	code := postJSON(t, app,
		fmt.Sprintf("/events/%s/days/%s/copy", src.EventID, day.EventDayID),
		fmt.Sprintf(`{"target_event_id":%q}`, target.EventID))
	assert.Equal(t, fiber.StatusCreated, code)

	var clone evModel.EventDayModel
	require.NoError(t, db.
		Where("event_day_event_id = ? AND event_day_number = ?", target.EventID, 2).
		First(&clone).Error)
	assert.Equal(t, srcDate.AddDate(1, 0, 0), clone.EventDayDate.UTC())
	assert.Equal(t, "Kick-off Day", clone.EventDayTitle)
	assert.Equal(t, "Move indoors", clone.EventDayWeatherBackupPlan)

	// The source day is untouched.
	var unchanged evModel.EventDayModel
	require.NoError(t, db.First(&unchanged, "event_day_id = ?", day.EventDayID).Error)
	assert.Equal(t, 1, unchanged.EventDayNumber)
	assert.Equal(t, srcDate, unchanged.EventDayDate.UTC())
}

func TestCopyEventDayExplicitDateAndNumber(t *testing.T) {
	db := dayTestDB(t)
	app := dayTestApp(db, uuid.New(), "Admin")

	src := seedDayTestEvent(t, db, "Book Fair", "book-fair", nil)
	day := seedDay(t, db, src, 1, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC))
	target := seedDayTestEvent(t, db, "Book Fair", "book-fair-2", nil)
	seedDay(t, db, target, 1, time.Date(2026, 11, 9, 0, 0, 0, 0, time.UTC))

	path := fmt.Sprintf("/events/%s/days/%s/copy", src.EventID, day.EventDayID)

	code := postJSON(t, app, path, fmt.Sprintf(
		`{"target_event_id":%q,"new_date":"2026-11-12T00:00:00Z","new_day_number":3}`, target.EventID))
	assert.Equal(t, fiber.StatusCreated, code)

	var clone evModel.EventDayModel
	require.NoError(t, db.
		Where("event_day_event_id = ? AND event_day_number = ?", target.EventID, 3).
		First(&clone).Error)
	assert.Equal(t, time.Date(2026, 11, 12, 0, 0, 0, 0, time.UTC), clone.EventDayDate.UTC())

	// A taken day number is rejected and nothing is written.
	code = postJSON(t, app, path, fmt.Sprintf(
		`{"target_event_id":%q,"new_day_number":1}`, target.EventID))
	assert.Equal(t, fiber.StatusBadRequest, code)

	var count int64
	require.NoError(t, db.Model(&evModel.EventDayModel{}).
		Where("event_day_event_id = ?", target.EventID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCopyEventDaySourceScopedToPathEvent(t *testing.T) {
	db := dayTestDB(t)
	app := dayTestApp(db, uuid.New(), "Admin")

	owner := seedDayTestEvent(t, db, "Trivia Night", "trivia-night", nil)
	day := seedDay(t, db, owner, 1, time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC))
	other := seedDayTestEvent(t, db, "Trivia Night", "trivia-night-2", nil)

	// The day id exists, but not under the event in the path.
	code := postJSON(t, app,
		fmt.Sprintf("/events/%s/days/%s/copy", other.EventID, day.EventDayID),
		fmt.Sprintf(`{"target_event_id":%q}`, owner.EventID))
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestEventDayManageLimitedToAssignedCoordinator(t *testing.T) {
	db := dayTestDB(t)
	coordinator := uuid.New()
	ev := seedDayTestEvent(t, db, "Movie Night", "movie-night", &coordinator)

	body := `{"event_day_date":"2026-03-13T00:00:00Z"}`
	path := fmt.Sprintf("/events/%s/days", ev.EventID)

	// A coordinator who is not assigned to this event is rejected.
	stranger := dayTestApp(db, uuid.New(), "EventCoordinator")
	assert.Equal(t, fiber.StatusForbidden, postJSON(t, stranger, path, body))

	// The assigned coordinator may add days.
	assigned := dayTestApp(db, coordinator, "EventCoordinator")
	assert.Equal(t, fiber.StatusCreated, postJSON(t, assigned, path, body))

	var count int64
	require.NoError(t, db.Model(&evModel.EventDayModel{}).
		Where("event_day_event_id = ?", ev.EventID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
