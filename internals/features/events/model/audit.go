package model

import (
	"strings"
	"time"
)

// AuditMeta is embedded in auditable entities and stamped at the mutation
// boundary. The by-fields hold "userID|Display Name" so the admin UI can show
// a name without a join.
type AuditMeta struct {
	CreatedBy    string    `gorm:"column:created_by;type:varchar(200);not null;default:''" json:"created_by"`
	CreatedOn    time.Time `gorm:"column:created_on" json:"created_on"`
	LastEditedBy string    `gorm:"column:last_edited_by;type:varchar(200);not null;default:''" json:"last_edited_by"`
	LastEditedOn time.Time `gorm:"column:last_edited_on" json:"last_edited_on"`
	ChangeNotes  string    `gorm:"column:change_notes;type:text;not null;default:''" json:"change_notes"`
}

// AuditActor formats the stamp for a known user; anonymous mutations (seeds,
// maintenance) record "System".
func AuditActor(userID, displayName string) string {
	if userID == "" {
		return "System"
	}
	if strings.TrimSpace(displayName) == "" {
		return userID
	}
	return userID + "|" + strings.TrimSpace(displayName)
}

func (a *AuditMeta) StampCreate(actor string) {
	now := time.Now().UTC()
	a.CreatedBy = actor
	a.CreatedOn = now
	a.LastEditedBy = actor
	a.LastEditedOn = now
	a.ChangeNotes = "Initial creation"
}

func (a *AuditMeta) StampUpdate(actor, notes string) {
	a.LastEditedBy = actor
	a.LastEditedOn = time.Now().UTC()
	if strings.TrimSpace(notes) == "" {
		notes = "Updated"
	}
	a.ChangeNotes = notes
}

// ActorDisplayName extracts the human part of a stamp.
func ActorDisplayName(stamp string) string {
	if stamp == "" {
		return "Unknown"
	}
	if i := strings.IndexByte(stamp, '|'); i >= 0 {
		return stamp[i+1:]
	}
	return stamp
}

// ActorUserID extracts the id part of a stamp, empty for "System".
func ActorUserID(stamp string) string {
	if stamp == "" || stamp == "System" {
		return ""
	}
	if i := strings.IndexByte(stamp, '|'); i >= 0 {
		return stamp[:i]
	}
	return stamp
}
