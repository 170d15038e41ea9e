package domain

import "fmt"

// Role is the closed set of roles a user can hold in the books.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleManager       Role = "Manager"
	RoleAccountant    Role = "Accountant"
)

// ParseRole converts a raw role claim into a Role.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdministrator, RoleManager, RoleAccountant:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// IsPrivileged reports whether the role may approve, reject and post entries.
func (r Role) IsPrivileged() bool {
	return r == RoleAdministrator || r == RoleManager
}

// Actor identifies the user performing an operation.
type Actor struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
