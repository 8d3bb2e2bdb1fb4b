package models

// Role defines which account table and profile flow apply to a session
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
)

// Valid reports whether the role is one of the known account roles
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleMentor
}
