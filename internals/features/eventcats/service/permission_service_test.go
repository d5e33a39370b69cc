package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	catModel "ptaweb_backend/internals/features/eventcats/model"
)

func TestCanEditCategory(t *testing.T) {
	admin := []string{"Admin"}
	board := []string{"BoardMember"}
	coordinator := []string{"EventCoordinator"}
	user := []string{"User"}
	var anonymous []string

	cases := []struct {
		perm  catModel.CategoryPermission
		roles []string
		want  bool
	}{
		{catModel.PermAdminOnly, admin, true},
		{catModel.PermAdminOnly, board, false},
		{catModel.PermAdminOnly, coordinator, false},
		{catModel.PermAdminOnly, user, false},
		{catModel.PermAdminOnly, anonymous, false},

		{catModel.PermBoardMembersAndAdmin, admin, true},
		{catModel.PermBoardMembersAndAdmin, board, true},
		{catModel.PermBoardMembersAndAdmin, coordinator, false},
		{catModel.PermBoardMembersAndAdmin, user, false},

		{catModel.PermEventCoordinators, admin, true},
		{catModel.PermEventCoordinators, board, true},
		{catModel.PermEventCoordinators, coordinator, true},
		{catModel.PermEventCoordinators, user, false},

		{catModel.PermAllUsers, admin, true},
		{catModel.PermAllUsers, user, true},
		{catModel.PermAllUsers, anonymous, false},
	}
	for _, tc := range cases {
		got := CanEditCategory(tc.perm, tc.roles)
		assert.Equal(t, tc.want, got, "perm=%d roles=%v", tc.perm, tc.roles)
	}
}

func TestCanEditCategoryMultipleRoles(t *testing.T) {
	roles := []string{"User", "EventCoordinator"}
	assert.True(t, CanEditCategory(catModel.PermEventCoordinators, roles))
	assert.False(t, CanEditCategory(catModel.PermBoardMembersAndAdmin, roles))
}

func TestValidateCoordinator(t *testing.T) {
	id := uuid.New()

	assert.NoError(t, ValidateCoordinator(catModel.CoordinatorNotNeeded, nil))
	assert.NoError(t, ValidateCoordinator(catModel.CoordinatorNotNeeded, &id))
	assert.NoError(t, ValidateCoordinator(catModel.CoordinatorOptional, nil))
	assert.NoError(t, ValidateCoordinator(catModel.CoordinatorOptional, &id))
	assert.NoError(t, ValidateCoordinator(catModel.CoordinatorRequired, &id))

	assert.Error(t, ValidateCoordinator(catModel.CoordinatorRequired, nil))
}
