package helper

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Slugify turns a free-text title into its URL form: lower-case, spaces to
// "-", "&" to "and", slashes to "-", quotes stripped, then filtered down to
// [a-z0-9-]. Hyphen runs are kept as-is and there is no length cap, so the
// result is a pure function of the title. Not unique on its own.
func Slugify(title string) string {
	if title == "" {
		return ""
	}
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "\"", "")

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeYearName reduces a school-year name like "2025-2026" to a suffix
// token "20252026" (alphanumerics only, lower-case).
func NormalizeYearName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SlugOptions describes where a slug must be unique.
type SlugOptions struct {
	// Table name, e.g. "events"
	Table string
	// Slug column, e.g. "event_slug"
	SlugColumn string
	// Extra scope filters, e.g. map[string]any{"event_school_year_id": yearID}
	Filters map[string]any
}

// SlugTaken checks whether candidate already exists within the scope.
func SlugTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}
	q := db.Table(opts.Table).Where(fmt.Sprintf("%s = ?", opts.SlugColumn), candidate)
	for k, v := range opts.Filters {
		q = q.Where(fmt.Sprintf("%s = ?", k), v)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// NextFreeSlug probes base, base-1, base-2, ... until a free slug is found.
func NextFreeSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	taken, err := SlugTaken(db, opts, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	for i := 1; i < 10000; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err = SlugTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to find a free slug after many attempts")
}

// IsUniqueViolation reports whether err is a unique-constraint conflict.
// Relies on gorm error translation (TranslateError) for both postgres and
// the sqlite test driver.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
