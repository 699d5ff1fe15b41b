package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names assigned to users. New signups start as students; admins are
// provisioned out of band.
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

// User represents an account holder. PasswordDigest is the encoded argon2id
// digest and is never serialized into responses or session tokens.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	PasswordDigest string    `json:"-" db:"password_digest"`
	Roles          []string  `json:"roles" db:"roles"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// NewUser creates a new User instance with the given email and password digest.
func NewUser(email, passwordDigest string, roles ...string) *User {
	if len(roles) == 0 {
		roles = []string{RoleStudent}
	}
	now := time.Now()
	return &User{
		ID:             uuid.New(),
		Email:          email,
		PasswordDigest: passwordDigest,
		Roles:          roles,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// HasRole returns true if the user holds the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// Profile is the identity summary returned by the auth endpoints and consumed
// by the client auth-state store.
type Profile struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Roles []string  `json:"roles"`
}

// Profile returns the public identity summary for the user.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Roles: u.Roles}
}
