package database

import (
	"log"

	"gorm.io/gorm"

	bpModel "ptaweb_backend/internals/features/boardpositions/model"
	catModel "ptaweb_backend/internals/features/eventcats/model"
	evModel "ptaweb_backend/internals/features/events/model"
	syModel "ptaweb_backend/internals/features/schoolyears/model"
	spModel "ptaweb_backend/internals/features/sponsors/model"
	userModel "ptaweb_backend/internals/features/users/model"
)

// AutoMigrate keeps the schema in step with the models. Referenced tables
// migrate before the tables that point at them.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&syModel.SchoolYearModel{},
		&catModel.EventCategoryModel{},
		&catModel.EventSubcategoryModel{},
		&evModel.EventModel{},
		&evModel.EventDayModel{},
		&bpModel.BoardPositionTitleModel{},
		&bpModel.BoardPositionModel{},
		&spModel.SponsorModel{},
		&spModel.SponsorLevelModel{},
		&spModel.SponsorAssignmentModel{},
	)
	if err != nil {
		return err
	}
	log.Println("✅ database schema migrated")
	return nil
}
