package models

import "time"

// OtpChallenge is one issued code. Verified only ever moves false → true;
// expiry is derived from IssuedAt and never stored.
type OtpChallenge struct {
	ID       string
	UserID   string
	Code     string
	IssuedAt time.Time
	Verified bool
}

// Expired reports whether more than validity has elapsed since issuance.
// Exactly validity is still inside the window.
func (c *OtpChallenge) Expired(now time.Time, validity time.Duration) bool {
	return now.Sub(c.IssuedAt) > validity
}
