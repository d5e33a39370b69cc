package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catModel "ptaweb_backend/internals/features/eventcats/model"
)

// PermissionService resolves category-level editing rules.
type PermissionService struct{ DB *gorm.DB }

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{DB: db}
}

// CanEditCategory maps the category's editing-permission enum onto the
// requester's role set. Higher roles always satisfy looser permissions.
func CanEditCategory(perm catModel.CategoryPermission, roles []string) bool {
	has := func(wanted ...string) bool {
		for _, r := range roles {
			for _, w := range wanted {
				if r == w {
					return true
				}
			}
		}
		return false
	}

	switch perm {
	case catModel.PermAdminOnly:
		return has("Admin")
	case catModel.PermBoardMembersAndAdmin:
		return has("Admin", "BoardMember")
	case catModel.PermEventCoordinators:
		return has("Admin", "BoardMember", "EventCoordinator")
	case catModel.PermAllUsers:
		return len(roles) > 0 // any authenticated user
	}
	return false
}

// ValidateCoordinator checks the coordinator id against the category's
// requirement. Only Required makes the field mandatory.
func ValidateCoordinator(req catModel.CoordinatorRequirement, coordinatorID *uuid.UUID) error {
	if req == catModel.CoordinatorRequired && coordinatorID == nil {
		return errors.New("a coordinator is required for events in this category")
	}
	return nil
}

// LoadCategory fetches the category an event claims, for rule resolution.
func (s *PermissionService) LoadCategory(id uuid.UUID) (*catModel.EventCategoryModel, error) {
	var cat catModel.EventCategoryModel
	if err := s.DB.First(&cat, "event_category_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}
