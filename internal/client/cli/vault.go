package cli

import (
	"context"

	pb "github.com/dmitrijs2005/safekey/internal/proto"
)

func (a *App) Categories(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	cats, err := a.api.ListCategories(rctx, a.user.Id)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		a.printf("No categories, run 'addcat'\n")
	}
	for _, c := range cats {
		a.printf("%s  %s\n", c.Id, c.Name)
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	name, err := GetSimpleText(a.in, "Category name", a.out)
	if err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	c, err := a.api.CreateCategory(rctx, a.user.Id, name)
	if err != nil {
		return err
	}
	a.printf("Category %s created\n", c.Id)
	return nil
}

// DeleteCategory removes the category together with its credentials.
func (a *App) DeleteCategory(ctx context.Context, id string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.api.DeleteCategory(rctx, id); err != nil {
		return err
	}
	a.record(ctx, "delete", "category:"+id)
	a.printf("Category %s and its credentials deleted\n", id)
	return nil
}

func (a *App) Credentials(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	creds, err := a.api.ListCredentials(rctx, a.user.Id)
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		a.printf("No credentials, run 'addcred'\n")
	}
	for _, c := range creds {
		a.printf("%s  %s  %s  ******\n", c.Id, c.PlatformName, c.AccountIdentifier)
	}
	return nil
}

// AddCredential prompts for a credential; the secret is read without echo.
func (a *App) AddCredential(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	f := &pb.CreateCredentialRequest{UserId: a.user.Id}
	var err error

	if f.CategoryId, err = GetSimpleText(a.in, "Category id", a.out); err != nil {
		return err
	}
	if f.PlatformName, err = GetSimpleText(a.in, "Platform", a.out); err != nil {
		return err
	}
	if f.AccountIdentifier, err = GetSimpleText(a.in, "Account", a.out); err != nil {
		return err
	}
	secret, err := GetSecret(a.out, "Secret")
	if err != nil {
		return err
	}
	f.SecretValue = string(secret)
	wipe(secret)
	if f.Url, err = GetOptionalText(a.in, "URL", a.out); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	c, err := a.api.CreateCredential(rctx, f)
	if err != nil {
		return err
	}
	a.record(ctx, "create", "credential:"+c.Id)
	a.printf("Credential %s created\n", c.Id)
	return nil
}

// Show reveals one credential and records the reveal in the activity log.
func (a *App) Show(ctx context.Context, id string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	c, err := a.api.GetCredential(rctx, id)
	if err != nil {
		return err
	}
	a.record(ctx, "reveal", "credential:"+c.Id)

	a.printf("Platform: %s\nAccount:  %s\nSecret:   %s\n", c.PlatformName, c.AccountIdentifier, c.SecretValue)
	if c.Url != nil {
		a.printf("URL:      %s\n", *c.Url)
	}
	return nil
}

func (a *App) DeleteCredential(ctx context.Context, id string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.api.DeleteCredential(rctx, id); err != nil {
		return err
	}
	a.record(ctx, "delete", "credential:"+id)
	a.printf("Credential %s deleted\n", id)
	return nil
}
