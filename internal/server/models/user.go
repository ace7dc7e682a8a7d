// Package models defines server-side data models persisted in the database.
package models

import "time"

// User owns every other record in the vault.
//
// FingerprintTemplate is not a column: the users table keeps FingerprintKey
// and the bytes live in blob storage. Listings leave the template nil.
type User struct {
	ID                  string
	FirstName           string
	LastName            string
	PinCode             int64
	FingerprintTemplate []byte
	FingerprintKey      string
	CreatedAt           time.Time
}

// HasFingerprint reports whether a template is stored for the user.
func (u *User) HasFingerprint() bool {
	return u.FingerprintKey != ""
}
