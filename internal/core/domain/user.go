package domain

import (
	"errors"
	"time"
)

// Role is the access level assigned to a user at registration.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleClient      Role = "client"
	RoleParticipant Role = "participant"
)

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleClient, RoleParticipant:
		return true
	}
	return false
}

var ErrEmailAlreadyRegistered = errors.New("a user with this email already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models a registered identity. PasswordHash is excluded from JSON so
// the stored digest can never leak through a serialized response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

// ClientProfileStatus is the approval state of a client profile.
type ClientProfileStatus string

const (
	ProfilePendingApproval ClientProfileStatus = "pending_approval"
	ProfileApproved        ClientProfileStatus = "approved"
	ProfileSuspended       ClientProfileStatus = "suspended"
)

// ClientProfile is the dependent record created for every client-role user.
// It always starts as pending_approval with no company name; approval happens
// outside this service.
type ClientProfile struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	CompanyName *string             `json:"company_name"`
	Status      ClientProfileStatus `json:"status"`
}
