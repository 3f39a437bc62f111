package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash is never serialised; use [User.Public] to build the view that
// may leave the service layer.
type User struct {
	// ID is the opaque unique identifier assigned by the store at creation.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique lookup key. It is compared case-sensitively,
	// exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the salted adaptive hash of the user's password.
	// It MUST never contain plaintext and never be returned to a caller.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// PublicUser is the externally visible projection of a [User].
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the hash-free view of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
