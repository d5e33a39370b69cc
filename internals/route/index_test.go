package routes_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ptaweb_backend/internals/configs"
	catModel "ptaweb_backend/internals/features/eventcats/model"
	evModel "ptaweb_backend/internals/features/events/model"
	syModel "ptaweb_backend/internals/features/schoolyears/model"
	routes "ptaweb_backend/internals/route"
)

const routeTestSecret = "route-test-secret"

func routeTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&syModel.SchoolYearModel{},
		&catModel.EventCategoryModel{},
		&evModel.EventModel{},
		&evModel.EventDayModel{},
	))

	configs.JWTSecret = routeTestSecret
	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func signToken(t *testing.T, sub uuid.UUID, name string, roles ...string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub.String(),
		"name":  name,
		"roles": roles,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(routeTestSecret))
	require.NoError(t, err)
	return signed
}

func apiRequest(t *testing.T, app *fiber.App, method, path, token, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func seedRouteTestYear(t *testing.T, db *gorm.DB) *syModel.SchoolYearModel {
	t.Helper()
	year := &syModel.SchoolYearModel{
		SchoolYearName:      "2025-2026",
		SchoolYearStartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		SchoolYearEndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		SchoolYearStatus:    syModel.SchoolYearCurrent,
	}
	require.NoError(t, db.Create(year).Error)
	return year
}

func seedRouteTestCategory(t *testing.T, db *gorm.DB, slug string, perm catModel.CategoryPermission) *catModel.EventCategoryModel {
	t.Helper()
	cat := &catModel.EventCategoryModel{
		EventCategoryName:                   "Fundraisers",
		EventCategorySlug:                   slug,
		EventCategoryEditingPermission:      perm,
		EventCategoryCoordinatorRequirement: catModel.CoordinatorOptional,
	}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func seedRouteTestEvent(t *testing.T, db *gorm.DB, year *syModel.SchoolYearModel, cat *catModel.EventCategoryModel, coordinator *uuid.UUID) *evModel.EventModel {
	t.Helper()
	ev := &evModel.EventModel{
		EventTitle:         "Fall Festival",
		EventSlug:          "fall-festival",
		EventDate:          time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
		EventStatus:        evModel.StatusPlanning,
		EventSchoolYearID:  year.SchoolYearID,
		EventCategoryID:    cat.EventCategoryID,
		EventCoordinatorID: coordinator,
	}
	require.NoError(t, db.Create(ev).Error)
	return ev
}

func TestAssignedCoordinatorCanUpdateEvent(t *testing.T) {
	app, db := routeTestApp(t)
	year := seedRouteTestYear(t, db)
	cat := seedRouteTestCategory(t, db, "fundraisers", catModel.PermEventCoordinators)
	coordinator := uuid.New()
	ev := seedRouteTestEvent(t, db, year, cat, &coordinator)

	token := signToken(t, coordinator, "Pat Coordinator", "EventCoordinator")
	code := apiRequest(t, app, "PUT", "/api/events/"+ev.EventID.String(), token,
		`{"event_description":"Now with a cake walk"}`)
	assert.Equal(t, fiber.StatusOK, code)

	var updated evModel.EventModel
	require.NoError(t, db.First(&updated, "event_id = ?", ev.EventID).Error)
	assert.Equal(t, "Now with a cake walk", updated.EventDescription)
	assert.Contains(t, updated.LastEditedBy, coordinator.String())
}

func TestUnassignedCoordinatorCannotUpdateEvent(t *testing.T) {
	app, db := routeTestApp(t)
	year := seedRouteTestYear(t, db)
	cat := seedRouteTestCategory(t, db, "fundraisers", catModel.PermEventCoordinators)
	coordinator := uuid.New()
	ev := seedRouteTestEvent(t, db, year, cat, &coordinator)

	token := signToken(t, uuid.New(), "Someone Else", "EventCoordinator")
	code := apiRequest(t, app, "PUT", "/api/events/"+ev.EventID.String(), token,
		`{"event_description":"Hijacked"}`)
	assert.Equal(t, fiber.StatusForbidden, code)

	var unchanged evModel.EventModel
	require.NoError(t, db.First(&unchanged, "event_id = ?", ev.EventID).Error)
	assert.Empty(t, unchanged.EventDescription)
}

func TestUpdateEventRequiresToken(t *testing.T) {
	app, db := routeTestApp(t)
	year := seedRouteTestYear(t, db)
	cat := seedRouteTestCategory(t, db, "fundraisers", catModel.PermEventCoordinators)
	ev := seedRouteTestEvent(t, db, year, cat, nil)

	code := apiRequest(t, app, "PUT", "/api/events/"+ev.EventID.String(), "",
		`{"event_description":"Anonymous edit"}`)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestCoordinatorCreateFollowsCategoryPermission(t *testing.T) {
	app, db := routeTestApp(t)
	year := seedRouteTestYear(t, db)
	open := seedRouteTestCategory(t, db, "fundraisers", catModel.PermEventCoordinators)
	boardOnly := seedRouteTestCategory(t, db, "meetings", catModel.PermBoardMembersAndAdmin)

	coordinator := uuid.New()
	token := signToken(t, coordinator, "Pat Coordinator", "EventCoordinator")

	body := func(cat *catModel.EventCategoryModel) string {
		return fmt.Sprintf(
			`{"event_title":"Bingo Night","event_date":"2025-11-14T00:00:00Z","event_coordinator_id":%q,"event_school_year_id":%q,"event_category_id":%q}`,
			coordinator, year.SchoolYearID, cat.EventCategoryID)
	}

	assert.Equal(t, fiber.StatusCreated,
		apiRequest(t, app, "POST", "/api/events", token, body(open)))
	assert.Equal(t, fiber.StatusForbidden,
		apiRequest(t, app, "POST", "/api/events", token, body(boardOnly)))

	var count int64
	require.NoError(t, db.Model(&evModel.EventModel{}).
		Where("event_title = ?", "Bingo Night").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBoardSurfaceStillRequiresBoardRole(t *testing.T) {
	app, db := routeTestApp(t)
	year := seedRouteTestYear(t, db)
	cat := seedRouteTestCategory(t, db, "fundraisers", catModel.PermEventCoordinators)
	coordinator := uuid.New()
	ev := seedRouteTestEvent(t, db, year, cat, &coordinator)

	token := signToken(t, coordinator, "Pat Coordinator", "EventCoordinator")
	code := apiRequest(t, app, "POST", "/api/events/"+ev.EventID.String()+"/approve", token, "")
	assert.Equal(t, fiber.StatusForbidden, code)
}
