package id

import "github.com/google/uuid"

// GenerateID creates a new 36-character UUID string. Entity IDs are stored
// as TEXT primary keys, so the string form is used everywhere.
func GenerateID() string {
	return uuid.NewString()
}
