// Package services implements the vault's domain operations on top of the
// repositories. Every operation takes a context, validates its input, runs
// multi-statement work in one transaction and returns typed errors from
// internal/common.
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/timex"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", field)
	}
	return nil
}

// now reads the clock at the precision both SQL backends can store.
func now(c timex.Clock) time.Time {
	return c.Now().UTC().Truncate(time.Microsecond)
}
