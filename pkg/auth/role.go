package auth

// Role is the session role supplied by the identity service
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEditor    Role = "editor"
	RoleViewer    Role = "viewer"
	RoleAnonymous Role = "anonymous"
)

// CanEdit reports whether the role may target editable sections
func (r Role) CanEdit() bool {
	return r == RoleAdmin || r == RoleEditor
}

// ParseRole normalizes a raw role string, defaulting to viewer for any
// authenticated but unrecognized role
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin
	case RoleEditor:
		return RoleEditor
	case RoleAnonymous:
		return RoleAnonymous
	default:
		return RoleViewer
	}
}
