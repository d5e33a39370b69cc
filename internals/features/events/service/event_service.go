package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	evModel "ptaweb_backend/internals/features/events/model"
	syModel "ptaweb_backend/internals/features/schoolyears/model"
	helper "ptaweb_backend/internals/helpers"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrSchoolYearNotFound = errors.New("school year not found")
	ErrNotSubmitted       = errors.New("event must be submitted for approval before it can be approved")
)

// EventService owns the lifecycle logic that is bigger than one handler:
// slug resolution, copying across years, approval, dashboard summaries.
type EventService struct{ DB *gorm.DB }

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

func (s *EventService) slugScope(schoolYearID uuid.UUID) helper.SlugOptions {
	return helper.SlugOptions{
		Table:      "events",
		SlugColumn: "event_slug",
		Filters:    map[string]any{"event_school_year_id": schoolYearID},
	}
}

// ResolveSlugForCreate produces the slug a newly created event gets: the
// title's slug, or the year-suffixed form when that slug is already used in
// the same school year.
func (s *EventService) ResolveSlugForCreate(db *gorm.DB, title string, year *syModel.SchoolYearModel) (string, error) {
	base := helper.Slugify(title)
	taken, err := helper.SlugTaken(db, s.slugScope(year.SchoolYearID), base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + helper.NormalizeYearName(year.SchoolYearName), nil
}

// ResolveSlugForCopy goes further than create: after the year suffix it keeps
// probing numeric suffixes until the slug is free in the target year.
func (s *EventService) ResolveSlugForCopy(db *gorm.DB, title string, year *syModel.SchoolYearModel) (string, error) {
	base := helper.Slugify(title)
	taken, err := helper.SlugTaken(db, s.slugScope(year.SchoolYearID), base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	suffixed := base + "-" + helper.NormalizeYearName(year.SchoolYearName)
	return helper.NextFreeSlug(db, s.slugScope(year.SchoolYearID), suffixed)
}

// CreateWithUniqueSlug inserts the event, resolving the slug first and
// falling back to numeric suffixes when a concurrent insert wins the race to
// the unique index.
func (s *EventService) CreateWithUniqueSlug(ev *evModel.EventModel, year *syModel.SchoolYearModel) error {
	slug, err := s.ResolveSlugForCreate(s.DB, ev.EventTitle, year)
	if err != nil {
		return err
	}
	ev.EventSlug = slug

	if err := s.DB.Create(ev).Error; err == nil {
		return nil
	} else if !helper.IsUniqueViolation(err) {
		return err
	}

	// Lost the check-then-insert race; retry with numeric suffixes against
	// the constraint instead of trusting another pre-check.
	for i := 1; i < 100; i++ {
		ev.EventID = uuid.Nil
		ev.EventSlug = fmt.Sprintf("%s-%d", slug, i)
		err := s.DB.Create(ev).Error
		if err == nil {
			return nil
		}
		if !helper.IsUniqueViolation(err) {
			return err
		}
	}
	return errors.New("could not find a free slug for event")
}

// CopyRequest carries the copy parameters after DTO validation.
type CopyRequest struct {
	SourceEventID      uuid.UUID
	TargetSchoolYearID uuid.UUID
	NewTitle           *string
	NewStartDate       *time.Time
	NewCoordinatorID   *uuid.UUID
	CopyEventDays      bool
}

// Copy clones an event into another school year. Descriptive, capacity and
// flag fields carry over; status resets to Planning; every timestamp moves by
// the whole-day offset between the source date and the new date (default:
// source date + 1 year) so the time-of-day is preserved. Event days shift by
// the same offset. The whole thing commits atomically with a unique target
// slug.
func (s *EventService) Copy(req CopyRequest, actor string) (*evModel.EventModel, error) {
	var src evModel.EventModel
	if err := s.DB.Preload("EventDays").First(&src, "event_id = ?", req.SourceEventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var targetYear syModel.SchoolYearModel
	if err := s.DB.First(&targetYear, "school_year_id = ?", req.TargetSchoolYearID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolYearNotFound
		}
		return nil, err
	}

	title := src.EventTitle
	if req.NewTitle != nil && *req.NewTitle != "" {
		title = *req.NewTitle
	}

	newDate := src.EventDate.AddDate(1, 0, 0)
	if req.NewStartDate != nil {
		newDate = *req.NewStartDate
	}
	dayOffset := wholeDaysBetween(src.EventDate, newDate)

	coordinator := src.EventCoordinatorID
	if req.NewCoordinatorID != nil {
		coordinator = req.NewCoordinatorID
	}

	clone := evModel.EventModel{
		EventTitle:       title,
		EventDate:        shiftDays(src.EventDate, dayOffset),
		EventDescription: src.EventDescription,
		EventLocation:    src.EventLocation,
		EventImageURL:    src.EventImageURL,
		EventLink:        src.EventLink,

		EventCoordinatorID: coordinator,
		EventStatus:        evModel.StatusPlanning,

		EventSetupStartTime: shiftDaysPtr(src.EventSetupStartTime, dayOffset),
		EventStartTime:      shiftDays(src.EventStartTime, dayOffset),
		EventEndTime:        shiftDays(src.EventEndTime, dayOffset),
		EventCleanupEndTime: shiftDaysPtr(src.EventCleanupEndTime, dayOffset),

		EventMaxAttendees:       src.EventMaxAttendees,
		EventEstimatedAttendees: src.EventEstimatedAttendees,

		EventRequiresVolunteers: src.EventRequiresVolunteers,
		EventRequiresSetup:      src.EventRequiresSetup,
		EventRequiresCleanup:    src.EventRequiresCleanup,

		EventNotes:              src.EventNotes,
		EventPublicInstructions: src.EventPublicInstructions,
		EventWeatherBackupPlan:  src.EventWeatherBackupPlan,

		EventSourceEventID:  &src.EventID,
		EventCopyGeneration: src.EventCopyGeneration + 1,

		EventSchoolYearID:  targetYear.SchoolYearID,
		EventCategoryID:    src.EventCategoryID,
		EventSubcategoryID: src.EventSubcategoryID,
	}
	clone.StampCreate(actor)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := s.ResolveSlugForCopy(tx, title, &targetYear)
		if err != nil {
			return err
		}
		clone.EventSlug = slug

		if err := tx.Create(&clone).Error; err != nil {
			return err
		}

		if !req.CopyEventDays {
			return nil
		}
		for _, d := range src.EventDays {
			day := evModel.EventDayModel{
				EventDayEventID: clone.EventID,
				EventDayNumber:  d.EventDayNumber,
				EventDayDate:    shiftDays(d.EventDayDate, dayOffset),

				EventDayTitle:       d.EventDayTitle,
				EventDayDescription: d.EventDayDescription,
				EventDayLocation:    d.EventDayLocation,

				EventDayStartTime: shiftDaysPtr(d.EventDayStartTime, dayOffset),
				EventDayEndTime:   shiftDaysPtr(d.EventDayEndTime, dayOffset),

				EventDayIsActive:            d.EventDayIsActive,
				EventDaySpecialInstructions: d.EventDaySpecialInstructions,

				EventDayMaxAttendees:       d.EventDayMaxAttendees,
				EventDayEstimatedAttendees: d.EventDayEstimatedAttendees,

				EventDayWeatherBackupPlan: d.EventDayWeatherBackupPlan,
			}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Hand back the clone with its days loaded.
	if req.CopyEventDays {
		if err := s.DB.Preload("EventDays").First(&clone, "event_id = ?", clone.EventID).Error; err != nil {
			return nil, err
		}
	}
	return &clone, nil
}

// Approve moves a submitted event to Active, stamping who approved it and
// when. Any other starting status is rejected without a state change.
func (s *EventService) Approve(eventID, approverID uuid.UUID, notes string) (*evModel.EventModel, error) {
	var ev evModel.EventModel
	if err := s.DB.First(&ev, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if !evModel.CanApprove(ev.EventStatus) {
		return nil, ErrNotSubmitted
	}

	now := time.Now().UTC()
	ev.EventStatus = evModel.StatusActive
	ev.EventApprovedByUserID = &approverID
	ev.EventApprovedDate = &now
	ev.EventApprovalNotes = notes

	if err := s.DB.Save(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// DashboardSummary holds the admin dashboard counters for one school year.
type DashboardSummary struct {
	TotalEvents         int `json:"total_events"`
	PlanningEvents      int `json:"planning_events"`
	PendingApproval     int `json:"pending_approval"`
	ActiveEvents        int `json:"active_events"`
	InProgressEvents    int `json:"in_progress_events"`
	WrapUpEvents        int `json:"wrap_up_events"`
	CompletedEvents     int `json:"completed_events"`
	CancelledEvents     int `json:"cancelled_events"`
	UpcomingNext7Days   int `json:"upcoming_next_7_days"`
	UpcomingNext30Days  int `json:"upcoming_next_30_days"`
	NeedsAttention      int `json:"needs_attention"`
	RequiringVolunteers int `json:"requiring_volunteers"`
}

// Summarize loads the year's events once and counts in memory.
func (s *EventService) Summarize(schoolYearID uuid.UUID, now time.Time) (*DashboardSummary, error) {
	var exists int64
	if err := s.DB.Model(&syModel.SchoolYearModel{}).
		Where("school_year_id = ?", schoolYearID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrSchoolYearNotFound
	}

	var events []evModel.EventModel
	if err := s.DB.Where("event_school_year_id = ?", schoolYearID).Find(&events).Error; err != nil {
		return nil, err
	}
	sum := SummarizeEvents(events, now)
	return &sum, nil
}

// SummarizeEvents is the pure counting core, kept separate from the query.
func SummarizeEvents(events []evModel.EventModel, now time.Time) DashboardSummary {
	var sum DashboardSummary
	in7 := now.AddDate(0, 0, 7)
	in30 := now.AddDate(0, 0, 30)

	for i := range events {
		e := &events[i]
		sum.TotalEvents++

		switch e.EventStatus {
		case evModel.StatusPlanning:
			sum.PlanningEvents++
		case evModel.StatusSubmittedForApproval:
			sum.PendingApproval++
		case evModel.StatusActive:
			sum.ActiveEvents++
		case evModel.StatusInProgress:
			sum.InProgressEvents++
		case evModel.StatusWrapUp:
			sum.WrapUpEvents++
		case evModel.StatusCompleted:
			sum.CompletedEvents++
		case evModel.StatusCancelled:
			sum.CancelledEvents++
		}

		upcoming := !e.EventDate.Before(now)
		if upcoming && !e.EventDate.After(in7) {
			sum.UpcomingNext7Days++
		}
		if upcoming && !e.EventDate.After(in30) {
			sum.UpcomingNext30Days++
		}
		if e.EventRequiresVolunteers {
			sum.RequiringVolunteers++
		}

		// Three independent predicates, plain OR; no severity ranking.
		pendingApproval := e.EventStatus == evModel.StatusSubmittedForApproval
		staleInProgress := e.EventStatus == evModel.StatusInProgress &&
			!e.EventEndTime.IsZero() && e.EventEndTime.Before(now)
		underVolunteered := e.EventRequiresVolunteers &&
			e.EventStatus == evModel.StatusActive &&
			upcoming && !e.EventDate.After(in7)
		if pendingApproval || staleInProgress || underVolunteered {
			sum.NeedsAttention++
		}
	}
	return sum
}

// wholeDaysBetween truncates both ends to their dates so partial days never
// skew the shift.
func wholeDaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func shiftDays(t time.Time, days int) time.Time {
	if t.IsZero() {
		return t
	}
	return t.AddDate(0, 0, days)
}

func shiftDaysPtr(t *time.Time, days int) *time.Time {
	if t == nil {
		return nil
	}
	shifted := shiftDays(*t, days)
	return &shifted
}
