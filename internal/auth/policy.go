package auth

import "github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"

// Operation names a privileged action on the user store.
type Operation string

const (
	OpCreateAnyRole Operation = "create_any_role"
	OpCreateUser    Operation = "create_user"
	OpUpdateAnyUser Operation = "update_any_user"
	OpUpdateDetails Operation = "update_details"
	OpDeleteUser    Operation = "delete_user"
	OpListUsers     Operation = "list_users"
)

// Allowed is the role-matrix decision function: given the actor's role, the
// operation, and the target account's role (zero value when the operation has
// no target), it returns whether the mutation may proceed. It is pure; the
// protected-account and self-mutation invariants are enforced separately by
// the user service.
func Allowed(actor domain.Role, op Operation, target domain.Role) bool {
	switch actor {
	case domain.RoleSuperadmin:
		switch op {
		case OpCreateAnyRole, OpCreateUser, OpUpdateAnyUser, OpUpdateDetails, OpDeleteUser, OpListUsers:
			return true
		default:
			return false
		}
	case domain.RoleAdmin:
		switch op {
		case OpCreateUser:
			return true
		case OpUpdateDetails:
			// Admins may only touch user-role accounts.
			return target == domain.RoleUser
		case OpListUsers:
			return true
		case OpCreateAnyRole, OpUpdateAnyUser, OpDeleteUser:
			return false
		default:
			return false
		}
	case domain.RoleUser:
		return false
	default:
		return false
	}
}
