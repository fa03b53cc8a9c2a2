package console

import (
	"context"
	"fmt"
)

func (a *App) whoami(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}
	me, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", me.Username, me.Role)
	return nil
}

func (a *App) runAccounts(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "create" {
		return usageError("accounts needs a subcommand: create")
	}
	fs := a.flagSet("accounts create")
	password := fs.String("account-password", "", "password of the new account, at least 8 characters")
	role := fs.String("role", "viewer", "admin or viewer")
	if err := fs.Parse(args[1:]); err != nil {
		return usageError("%v", err)
	}
	if fs.NArg() != 1 {
		return usageError("accounts create takes one username")
	}
	if err := a.login(ctx); err != nil {
		return err
	}
	account, err := a.client.CreateAccount(ctx, fs.Arg(0), *password, *role)
	if err != nil {
		return err
	}
	a.notices.Succeed(fmt.Sprintf("Account %s (%s) created successfully!", account.Username, account.Role))
	return nil
}
