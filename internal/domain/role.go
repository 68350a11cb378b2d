package domain

import "fmt"

// Role is the closed set of account roles. Every authorization decision
// switches exhaustively over these values.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleSuperadmin:
		return RoleSuperadmin, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
