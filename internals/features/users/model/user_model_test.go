package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	u := UserModel{UserFirstName: "Katherine", UserLastName: "Nguyen"}
	assert.Equal(t, "Katherine Nguyen", u.DisplayName())

	u.UserPreferredName = "Kat"
	assert.Equal(t, "Kat Nguyen", u.DisplayName())

	u.UserLastName = ""
	assert.Equal(t, "Kat", u.DisplayName())
}

func TestToPublicOmitsSensitiveFields(t *testing.T) {
	u := UserModel{
		UserID:        uuid.New(),
		UserEmail:     "kat@example.org",
		UserFirstName: "Katherine",
		UserLastName:  "Nguyen",
		UserPhone:     "555-0100",
		UserStreet:    "12 Maple Ln",
		UserIsParent:  true,
		UserSkills:    pq.StringArray{"baking", "graphic design"},

		UserBackgroundCheckCompleted: true,
	}

	public := u.ToPublic()
	assert.Equal(t, u.UserID, public.UserID)
	assert.Equal(t, "Katherine", public.UserFirstName)
	assert.True(t, public.UserIsParent)
	assert.Equal(t, pq.StringArray{"baking", "graphic design"}, public.UserSkills)
}
