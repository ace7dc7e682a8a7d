package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	pb "github.com/dmitrijs2005/safekey/internal/proto"
)

func (a *App) Ping(ctx context.Context) error {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.api.Ping(rctx); err != nil {
		return err
	}
	a.printf("Server %s is up\n", a.config.ServerEndpointAddr)
	return nil
}

func (a *App) Users(ctx context.Context) error {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	users, err := a.api.ListUsers(rctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.printf("No users yet, run 'adduser'\n")
		return nil
	}
	for _, u := range users {
		a.printf("%s  %s %s  created %s\n", u.Id, u.FirstName, u.LastName, u.GetCreatedAt().AsTime().Format("2006-01-02 15:04"))
	}
	return nil
}

// AddUser prompts for a new user and selects it. The PIN is read without
// echo; a fingerprint template can be loaded from a file.
func (a *App) AddUser(ctx context.Context) error {
	first, err := GetSimpleText(a.in, "First name", a.out)
	if err != nil {
		return err
	}
	last, err := GetSimpleText(a.in, "Last name", a.out)
	if err != nil {
		return err
	}

	rawPin, err := GetSecret(a.out, "PIN code")
	if err != nil {
		return err
	}
	pin, err := strconv.ParseInt(strings.TrimSpace(string(rawPin)), 10, 64)
	wipe(rawPin)
	if err != nil {
		return fmt.Errorf("PIN code must be a number")
	}

	path, err := GetOptionalText(a.in, "Fingerprint template file", a.out)
	if err != nil {
		return err
	}
	var template []byte
	if path != nil {
		template, err = os.ReadFile(*path)
		if err != nil {
			return err
		}
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.api.CreateUser(rctx, &pb.CreateUserRequest{
		FirstName:           first,
		LastName:            last,
		PinCode:             pin,
		FingerprintTemplate: template,
	})
	if err != nil {
		return err
	}

	a.user = u
	a.printf("User %s created and selected\n", u.Id)
	return nil
}

func (a *App) Use(ctx context.Context, id string) error {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.api.GetUser(rctx, id)
	if err != nil {
		return err
	}

	a.user = u
	fingerprint := "no fingerprint"
	if len(u.FingerprintTemplate) > 0 {
		fingerprint = fmt.Sprintf("fingerprint %d bytes", len(u.FingerprintTemplate))
	}
	a.printf("Selected %s %s (%s)\n", u.FirstName, u.LastName, fingerprint)
	return nil
}

// DeleteUser removes the selected user. The server refuses while the user
// still owns records.
func (a *App) DeleteUser(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.api.DeleteUser(rctx, a.user.Id); err != nil {
		return err
	}

	a.printf("User %s deleted\n", a.user.Id)
	a.user = nil
	return nil
}
