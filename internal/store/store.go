package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// Stats is the aggregate snapshot served to admins.
type Stats struct {
	Users         int `json:"users"`
	Cases         int `json:"cases"`
	Consultations int `json:"consultations"`
	Shared        int `json:"shared"`
}
