package models

// Role defines the student role type
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Status defines the account status
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusBanned    Status = "banned"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusSuspended || s == StatusBanned
}
