package models

import "time"

// Credential is a stored secret filed under exactly one category.
// SecretValue is kept verbatim.
type Credential struct {
	ID                string
	UserID            string
	CategoryID        string
	PlatformName      string
	AccountIdentifier string
	SecretValue       string
	URL               *string
	CreatedAt         time.Time
}
