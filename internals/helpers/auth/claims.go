package helperAuth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID      = "user_id"
	LocRoles       = "roles"
	LocDisplayName = "display_name"
)

var ErrNoUser = errors.New("no authenticated user in request context")

// GetUserIDFromToken returns the authenticated user's id, or ErrNoUser for
// anonymous requests.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, ErrNoUser
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, ErrNoUser
	}
	return id, nil
}

// GetRolesFromToken returns the role set from the token; empty for anonymous.
func GetRolesFromToken(c *fiber.Ctx) []string {
	switch v := c.Locals(LocRoles).(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, r := range v {
			if s, ok := r.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return strings.Split(v, ",")
	}
	return nil
}

// GetDisplayNameFromToken returns the user's display name from the token,
// or "" when the claim is absent.
func GetDisplayNameFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocDisplayName).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// HasRole reports whether the request carries any of the wanted roles.
func HasRole(c *fiber.Ctx, wanted ...string) bool {
	roles := GetRolesFromToken(c)
	for _, have := range roles {
		for _, w := range wanted {
			if have == w {
				return true
			}
		}
	}
	return false
}
