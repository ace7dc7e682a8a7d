package models

// OtpChannel is the preferred delivery channel for one-time codes.
type OtpChannel string

const (
	OtpChannelNone  OtpChannel = ""
	OtpChannelSMS   OtpChannel = "SMS"
	OtpChannelEmail OtpChannel = "Email"
)

// Valid reports whether c is one of the known channels or unset.
func (c OtpChannel) Valid() bool {
	switch c {
	case OtpChannelNone, OtpChannelSMS, OtpChannelEmail:
		return true
	}
	return false
}

// SecuritySettings is the per-user security profile. At most one exists
// per user.
type SecuritySettings struct {
	ID                  string
	UserID              string
	BiometricEnabled    bool
	OtpEnabled          bool
	PreferredOtpChannel OtpChannel
	BackupEmail         *string
	BackupPhone         *string
}
