package domain

import "time"

// Role is the capability level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (e.g., UUID)
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// Identity is the authenticated caller of a request, taken from the validated session token.
// It is passed explicitly to every operation that stamps or authorizes by user.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the identity may perform privileged actions.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Identity returns the request identity for the user.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, Email: u.Email, Role: u.Role}
}
