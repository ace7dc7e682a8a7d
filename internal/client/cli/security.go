package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/safekey/internal/client/client"
	pb "github.com/dmitrijs2005/safekey/internal/proto"
)

// Settings prints the selected user's security settings, offering to
// create them when none exist.
func (a *App) Settings(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	st, err := a.api.GetSettings(rctx, a.user.Id)
	cancel()

	if errors.Is(err, client.ErrNotFound) {
		answer, err := GetSimpleText(a.in, "No security settings yet. Create them? (y/n)", a.out)
		if err != nil || !yes(answer) {
			return err
		}
		st, err = a.createSettings(ctx)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	a.printSettings(st)
	return nil
}

func (a *App) createSettings(ctx context.Context) (*pb.SecuritySettings, error) {
	f := &pb.CreateSettingsRequest{UserId: a.user.Id}

	answer, err := GetSimpleText(a.in, "Enable biometric login? (y/n)", a.out)
	if err != nil {
		return nil, err
	}
	f.BiometricEnabled = yes(answer)

	answer, err = GetSimpleText(a.in, "Enable one-time codes? (y/n)", a.out)
	if err != nil {
		return nil, err
	}
	f.OtpEnabled = yes(answer)

	if f.OtpEnabled {
		if f.PreferredOtpChannel, err = GetSimpleText(a.in, "Preferred channel (SMS/Email)", a.out); err != nil {
			return nil, err
		}
	}
	if f.BackupEmail, err = GetOptionalText(a.in, "Backup email", a.out); err != nil {
		return nil, err
	}
	if f.BackupPhone, err = GetOptionalText(a.in, "Backup phone", a.out); err != nil {
		return nil, err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	return a.api.CreateSettings(rctx, f)
}

func (a *App) printSettings(st *pb.SecuritySettings) {
	a.printf("Biometric: %t\nOTP:       %t\n", st.BiometricEnabled, st.OtpEnabled)
	if st.PreferredOtpChannel != "" {
		a.printf("Channel:   %s\n", st.PreferredOtpChannel)
	}
	if st.BackupEmail != nil {
		a.printf("Email:     %s\n", *st.BackupEmail)
	}
	if st.BackupPhone != nil {
		a.printf("Phone:     %s\n", *st.BackupPhone)
	}
}

// Otp issues a new challenge and prints its code; there is no delivery
// channel, the operator passes the code on.
func (a *App) Otp(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	code, err := a.api.GenerateOtp(rctx, a.user.Id)
	if err != nil {
		return err
	}
	a.printf("One-time code: %s\n", code)
	return nil
}

func (a *App) Verify(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	code, err := GetSimpleText(a.in, "Code", a.out)
	if err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	if _, err := a.api.VerifyOtp(rctx, a.user.Id, code); err != nil {
		return err
	}
	a.record(ctx, "verify", "otp")
	a.printf("Code accepted\n")
	return nil
}

func (a *App) Log(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	entries, err := a.api.ListUserActivity(rctx, a.user.Id)
	if err != nil {
		return err
	}
	for _, e := range entries {
		a.printf("%s  %-8s %s\n", e.GetTimestamp().AsTime().Format("2006-01-02 15:04:05"), e.Action, e.Target)
	}
	return nil
}
