package console

import (
	"context"
	"strings"

	"gamecatalog/admin/internal/categories"
)

func (a *App) categoryManager() *categories.Manager {
	return categories.New(a.client, a.notices, a.log)
}

func (a *App) runCategories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("categories needs a subcommand: list, create, rename or delete")
	}
	m := a.categoryManager()
	switch sub, rest := args[0], args[1:]; sub {
	case "list", "ls":
		if err := m.Reload(ctx); err != nil {
			return err
		}
		a.printCategories(m)
		return nil
	case "create", "add":
		if err := a.login(ctx); err != nil {
			return err
		}
		_, err := m.Create(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		a.printCategories(m)
		return nil
	case "rename", "update":
		if len(rest) < 2 {
			return usageError("categories rename takes a code and a display name")
		}
		if err := a.login(ctx); err != nil {
			return err
		}
		_, err := m.Rename(ctx, rest[0], strings.Join(rest[1:], " "))
		if err != nil {
			return err
		}
		a.printCategories(m)
		return nil
	case "delete", "rm":
		if len(rest) != 1 {
			return usageError("categories delete takes one code")
		}
		if err := a.login(ctx); err != nil {
			return err
		}
		return m.Delete(ctx, rest[0])
	default:
		return usageError("unknown categories subcommand %q", sub)
	}
}

func (a *App) printCategories(m *categories.Manager) {
	list := m.Categories()
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{c.Code, c.DisplayName})
	}
	renderTable(a.out, []string{"CODE", "DISPLAY NAME"}, rows)
}
