package constants

// Role names as stored in users.user_role and carried in the JWT "role" claim.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleClient = "client"
)

var AllowedRoles = map[string]struct{}{
	RoleAdmin:  {},
	RoleStaff:  {},
	RoleClient: {},
}
