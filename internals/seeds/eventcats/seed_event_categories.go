package eventcats

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	catModel "ptaweb_backend/internals/features/eventcats/model"
	helper "ptaweb_backend/internals/helpers"
)

type seedCategory struct {
	Name                   string `json:"name"`
	Description            string `json:"description"`
	DisplayOrder           int    `json:"display_order"`
	Icon                   string `json:"icon"`
	ColorClass             string `json:"color_class"`
	DisplayMode            string `json:"display_mode"`
	EditingPermission      int16  `json:"editing_permission"`
	CoordinatorRequirement int16  `json:"coordinator_requirement"`
}

// SeedEventCategoriesFromJSON inserts the default categories. Existing slugs
// are left alone so reseeding is safe.
func SeedEventCategoriesFromJSON(db *gorm.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("❌ cannot read category seed file %s: %v", path, err)
		return
	}

	var rows []seedCategory
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		log.Printf("❌ cannot parse category seed file %s: %v", path, err)
		return
	}

	inserted := 0
	for _, row := range rows {
		slug := helper.Slugify(row.Name)

		var existing int64
		if err := db.Model(&catModel.EventCategoryModel{}).
			Where("event_category_slug = ?", slug).
			Count(&existing).Error; err != nil {
			log.Printf("❌ category seed lookup failed for %q: %v", row.Name, err)
			continue
		}
		if existing > 0 {
			continue
		}

		cat := catModel.EventCategoryModel{
			EventCategoryName:        row.Name,
			EventCategorySlug:        slug,
			EventCategoryDescription: row.Description,

			EventCategoryDisplayOrder: row.DisplayOrder,
			EventCategoryIsActive:     true,

			EventCategoryIcon:       row.Icon,
			EventCategoryColorClass: row.ColorClass,

			EventCategoryDisplayMode:          row.DisplayMode,
			EventCategoryShowViewEventsButton: true,

			EventCategoryEditingPermission:      catModel.CategoryPermission(row.EditingPermission),
			EventCategoryCoordinatorRequirement: catModel.CoordinatorRequirement(row.CoordinatorRequirement),
		}
		if cat.EventCategoryDisplayMode == "" {
			cat.EventCategoryDisplayMode = "list"
		}
		if err := db.Create(&cat).Error; err != nil {
			log.Printf("❌ category seed insert failed for %q: %v", row.Name, err)
			continue
		}
		inserted++
	}
	log.Printf("✅ event category seed done (%d inserted)", inserted)
}
