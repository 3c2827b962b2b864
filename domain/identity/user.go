// Package identity provides user and project membership domain types.
package identity

import "errors"

// ErrInvalidUsername indicates a username that fails validation.
var ErrInvalidUsername = errors.New("invalid username")

// User represents an account that can own, play, and modify projects.
type User struct {
	id        int64
	username  string
	createdAt int64
}

// NewUser creates a new User with the given username.
func NewUser(username string, createdAt int64) User {
	return User{
		username:  username,
		createdAt: createdAt,
	}
}

// NewUserWithID creates a User with all fields (used by stores).
func NewUserWithID(id int64, username string, createdAt int64) User {
	return User{
		id:        id,
		username:  username,
		createdAt: createdAt,
	}
}

// ID returns the user ID.
func (u User) ID() int64 { return u.id }

// Username returns the unique handle.
func (u User) Username() string { return u.username }

// CreatedAt returns the creation time in nanoseconds since the epoch.
func (u User) CreatedAt() int64 { return u.createdAt }

// WithID returns a copy of the user with the given ID.
func (u User) WithID(id int64) User {
	u.id = id
	return u
}

// Validate checks the username invariants.
func (u User) Validate() error {
	if u.username == "" {
		return ErrInvalidUsername
	}
	return nil
}
