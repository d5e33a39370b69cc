package constants

// Role names as they appear inside JWT claims.
const (
	RoleAdmin            = "Admin"
	RoleBoardMember      = "BoardMember"
	RoleEventCoordinator = "EventCoordinator"
	RoleUser             = "User"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleEventCoordinator,
		RoleBoardMember,
		RoleAdmin,
	}

	BoardAndAdmin = []string{
		RoleBoardMember,
		RoleAdmin,
	}

	CoordinatorAndAbove = []string{
		RoleEventCoordinator,
		RoleBoardMember,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
