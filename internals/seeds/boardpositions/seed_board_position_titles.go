package boardpositions

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	bpModel "ptaweb_backend/internals/features/boardpositions/model"
)

type seedTitle struct {
	Name        string `json:"name"`
	RoleType    string `json:"role_type"`
	SortOrder   int    `json:"sort_order"`
	Description string `json:"description"`
	IsRequired  bool   `json:"is_required"`
	IsElected   bool   `json:"is_elected"`
}

// SeedBoardPositionTitlesFromJSON inserts the default title catalog, skipping
// names that already exist.
func SeedBoardPositionTitlesFromJSON(db *gorm.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("❌ cannot read board title seed file %s: %v", path, err)
		return
	}

	var rows []seedTitle
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		log.Printf("❌ cannot parse board title seed file %s: %v", path, err)
		return
	}

	inserted := 0
	for _, row := range rows {
		var existing int64
		if err := db.Model(&bpModel.BoardPositionTitleModel{}).
			Where("board_position_title_name = ?", row.Name).
			Count(&existing).Error; err != nil {
			log.Printf("❌ board title seed lookup failed for %q: %v", row.Name, err)
			continue
		}
		if existing > 0 {
			continue
		}

		title := bpModel.BoardPositionTitleModel{
			BoardPositionTitleName:        row.Name,
			BoardPositionTitleRoleType:    row.RoleType,
			BoardPositionTitleSortOrder:   row.SortOrder,
			BoardPositionTitleDescription: row.Description,
			BoardPositionTitleIsRequired:  row.IsRequired,
			BoardPositionTitleIsElected:   row.IsElected,
		}
		if err := db.Create(&title).Error; err != nil {
			log.Printf("❌ board title seed insert failed for %q: %v", row.Name, err)
			continue
		}
		inserted++
	}
	log.Printf("✅ board position title seed done (%d inserted)", inserted)
}
