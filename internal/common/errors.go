// Package common defines shared sentinel errors and small helpers used across
// the SafeKey server layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal    = errors.New("internal error")
	ErrorValidation  = errors.New("validation error")
	ErrHasDependents = errors.New("entity has dependent records")

	// OTP verification outcomes.
	ErrNoChallenge      = errors.New("no otp challenge for user")
	ErrChallengeExpired = errors.New("otp challenge expired")
	ErrInvalidCode      = errors.New("invalid otp code")
)

// ErrorDomain and the Reason values label FailedPrecondition statuses so a
// remote caller can tell the precondition failures apart.
const (
	ErrorDomain            = "safekey"
	ReasonNoChallenge      = "NO_CHALLENGE"
	ReasonChallengeExpired = "CHALLENGE_EXPIRED"
	ReasonHasDependents    = "HAS_DEPENDENTS"
)

// EntityKind names the kind of record a NotFoundError refers to.
type EntityKind string

const (
	KindUser             EntityKind = "user"
	KindCategory         EntityKind = "category"
	KindCredential       EntityKind = "credential"
	KindSecuritySettings EntityKind = "security_settings"
	KindOtpChallenge     EntityKind = "otp_challenge"
	KindActivityLog      EntityKind = "activity_log"
)

// NotFoundError reports that a referenced entity is absent.
// It unwraps to ErrorNotFound.
type NotFoundError struct {
	Kind EntityKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrorNotFound
}

// NotFound builds a *NotFoundError for the given kind and id.
func NotFound(kind EntityKind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// AsNotFound converts a bare ErrorNotFound coming from a repository into a
// typed NotFoundError; any other error is returned unchanged.
func AsNotFound(err error, kind EntityKind, id string) error {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return err
	}
	if errors.Is(err, ErrorNotFound) {
		return NotFound(kind, id)
	}
	return err
}

// IsNotFoundKind reports whether err is a NotFoundError of the given kind.
func IsNotFoundKind(err error, kind EntityKind) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}
