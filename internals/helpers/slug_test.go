package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Fall Festival", "fall-festival"},
		{"Bingo & Basket Raffle", "bingo-and-basket-raffle"},
		{"Teacher/Staff Luncheon", "teacher-staff-luncheon"},
		{"Donuts with Dad's", "donuts-with-dads"},
		{`Say "Cheese" Photo Day`, "say-cheese-photo-day"},
		{"Back  to  School", "back--to--school"}, // hyphen runs are kept
		{"PTA Meeting #3!", "pta-meeting-3"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{"Fall Festival", "Bingo & Basket Raffle", "Teacher/Staff Luncheon"}
	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestNormalizeYearName(t *testing.T) {
	assert.Equal(t, "20252026", NormalizeYearName("2025-2026"))
	assert.Equal(t, "sy2025", NormalizeYearName("SY 2025"))
	assert.Equal(t, "", NormalizeYearName("-- / --"))
}

type slugRow struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"column:slug"`
	Year string `gorm:"column:year"`
}

func (slugRow) TableName() string { return "slug_rows" }

func slugTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&slugRow{}))
	return db
}

func TestNextFreeSlug(t *testing.T) {
	db := slugTestDB(t)
	opts := SlugOptions{
		Table:      "slug_rows",
		SlugColumn: "slug",
		Filters:    map[string]any{"year": "2025"},
	}

	got, err := NextFreeSlug(db, opts, "fall-festival")
	require.NoError(t, err)
	assert.Equal(t, "fall-festival", got)

	require.NoError(t, db.Create(&slugRow{Slug: "fall-festival", Year: "2025"}).Error)
	require.NoError(t, db.Create(&slugRow{Slug: "fall-festival-1", Year: "2025"}).Error)

	got, err = NextFreeSlug(db, opts, "fall-festival")
	require.NoError(t, err)
	assert.Equal(t, "fall-festival-2", got)
}

func TestSlugTakenScopedByFilters(t *testing.T) {
	db := slugTestDB(t)
	require.NoError(t, db.Create(&slugRow{Slug: "fall-festival", Year: "2025"}).Error)

	opts := SlugOptions{Table: "slug_rows", SlugColumn: "slug", Filters: map[string]any{"year": "2026"}}
	taken, err := SlugTaken(db, opts, "fall-festival")
	require.NoError(t, err)
	assert.False(t, taken, "same slug in a different year scope is free")
}
