package models

import "time"

// ActivityLogEntry is an append-only audit record.
type ActivityLogEntry struct {
	ID        string
	UserID    string
	Action    string
	Target    string
	Details   *string
	Timestamp time.Time
}
