package user

import (
	"errors"
	"time"
)

// User is the local profile record. Credentials live in the external auth
// service; only the ID it issued plus display names are stored here.
type User struct {
	ID        string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// New creates a user record with the ID issued by the auth service.
func New(authID, firstName, lastName string) (*User, error) {
	if authID == "" {
		return nil, errors.New("auth id cannot be empty")
	}
	if firstName == "" || lastName == "" {
		return nil, errors.New("first and last name are required")
	}
	return &User{
		ID:        authID,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}, nil
}
