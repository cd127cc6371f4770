package models

import "time"

// Setting is one persisted picker preference.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
