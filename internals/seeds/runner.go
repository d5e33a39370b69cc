package seeds

import (
	"gorm.io/gorm"

	bpSeed "ptaweb_backend/internals/seeds/boardpositions"
	catSeed "ptaweb_backend/internals/seeds/eventcats"
)

// RunAllSeeds loads the default reference data. Every seeder is idempotent,
// so running on an already seeded database is a no-op.
func RunAllSeeds(db *gorm.DB) {
	catSeed.SeedEventCategoriesFromJSON(db, "internals/seeds/eventcats/data_event_categories.json")
	bpSeed.SeedBoardPositionTitlesFromJSON(db, "internals/seeds/boardpositions/data_board_position_titles.json")
}
