package console

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gamecatalog/admin/internal/browser"
	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/editor"
)

func (a *App) runGames(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("games needs a subcommand: list, show, create, edit or delete")
	}
	switch sub, rest := args[0], args[1:]; sub {
	case "list", "ls":
		return a.listGames(ctx, rest)
	case "show", "get":
		return a.showGame(ctx, rest)
	case "create", "add":
		return a.createGame(ctx, rest)
	case "edit", "update":
		return a.editGame(ctx, rest)
	case "delete", "rm":
		return a.deleteGames(ctx, rest)
	default:
		return usageError("unknown games subcommand %q", sub)
	}
}

func (a *App) listGames(ctx context.Context, args []string) error {
	fs := a.flagSet("games list")
	keyword := fs.StringP("keyword", "k", "", "match names containing this text")
	category := fs.StringP("category", "c", "", "only games in this category code")
	page := fs.IntP("page", "p", 1, "page number, starting at 1")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}

	b := browser.New(a.client, a.log)
	b.Dispatch(browser.KeywordChanged{Keyword: *keyword})
	b.Dispatch(browser.CategoryChanged{Category: *category})
	if err := b.Load(ctx, *page-1); err != nil {
		return err
	}

	s := b.State()
	rows := make([][]string, 0, len(s.Games))
	for _, g := range s.Games {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(g.ID), 10),
			browser.DisplayName(g),
			g.Category,
			languagesOf(g),
			g.Image,
		})
	}
	renderTable(a.out, []string{"ID", "NAME", "CATEGORY", "LANGUAGES", "IMAGE"}, rows)
	fmt.Fprintf(a.out, "Page %d of %d (%d games)\n", s.Page+1, s.TotalPages, s.TotalElements)
	return nil
}

func languagesOf(g catalog.Game) string {
	langs := make([]string, 0, len(g.Names))
	for _, n := range g.Names {
		langs = append(langs, n.Language)
	}
	sort.Strings(langs)
	return strings.Join(langs, ",")
}

func (a *App) showGame(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("games show takes one game id")
	}
	id, err := parseGameID(args[0])
	if err != nil {
		return err
	}
	game, err := a.client.GetGame(ctx, id)
	if err != nil {
		return err
	}
	a.printGame(game)
	return nil
}

func (a *App) printGame(g *catalog.Game) {
	fmt.Fprintf(a.out, "Game %d: %s\n", g.ID, browser.DisplayName(*g))
	fmt.Fprintf(a.out, "Category: %s\n", g.Category)
	if g.Image != "" {
		fmt.Fprintf(a.out, "Image:    %s\n", g.Image)
	}
	rows := make([][]string, 0, len(g.Names))
	for _, n := range g.Names {
		def := ""
		if n.DefaultName {
			def = "*"
		}
		rows = append(rows, []string{n.Language, n.Value, def})
	}
	renderTable(a.out, []string{"LANG", "NAME", "DEFAULT"}, rows)
}

// gameFlags are the form fields shared by create and edit.
type gameFlags struct {
	category string
	image    string
	names    []string
	def      string
	remove   []string
}

func (a *App) parseGameFlags(name string, args []string, edit bool) (*gameFlags, []string, error) {
	fs := a.flagSet(name)
	f := &gameFlags{}
	fs.StringVarP(&f.category, "category", "c", "", "category code")
	fs.StringVarP(&f.image, "image", "i", "", "image file to upload")
	fs.StringArrayVarP(&f.names, "name", "n", nil, "name as LANG=TEXT, repeatable")
	fs.StringVarP(&f.def, "default", "d", "", "language of the default name")
	if edit {
		fs.StringArrayVar(&f.remove, "remove-name", nil, "language to remove, repeatable")
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError("%v", err)
	}
	return f, fs.Args(), nil
}

// apply copies the flags into the form. Only flags that were given change it.
func (f *gameFlags) apply(e *editor.Editor) error {
	if f.category != "" {
		e.SetCategory(f.category)
	}
	for _, raw := range f.names {
		lang, text, ok := strings.Cut(raw, "=")
		lang = strings.TrimSpace(lang)
		if !ok || lang == "" {
			return usageError("--name wants LANG=TEXT, got %q", raw)
		}
		e.SetName(lang, text)
	}
	for _, lang := range f.remove {
		e.RemoveName(strings.TrimSpace(lang))
	}
	if f.def != "" {
		e.SetDefault(f.def)
	}
	if f.image != "" {
		data, err := os.ReadFile(f.image)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		e.SetImage(filepath.Base(f.image), data)
	}
	return nil
}

// submit validates before logging in so a bad form never reaches the server.
func (a *App) submit(ctx context.Context, e *editor.Editor) (*catalog.Game, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := a.login(ctx); err != nil {
		return nil, err
	}
	return e.Submit(ctx)
}

func (a *App) createGame(ctx context.Context, args []string) error {
	f, rest, err := a.parseGameFlags("games create", args, false)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return usageError("unexpected arguments %v", rest)
	}

	e := editor.New(a.client, a.log)
	if err := f.apply(e); err != nil {
		return err
	}
	game, err := a.submit(ctx, e)
	if err != nil {
		return err
	}
	a.notices.Succeed(fmt.Sprintf("Game %d created successfully!", game.ID))
	return nil
}

func (a *App) editGame(ctx context.Context, args []string) error {
	f, rest, err := a.parseGameFlags("games edit", args, true)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return usageError("games edit takes one game id")
	}
	id, err := parseGameID(rest[0])
	if err != nil {
		return err
	}

	e, err := editor.Load(ctx, a.client, id, a.log)
	if err != nil {
		return err
	}
	if err := f.apply(e); err != nil {
		return err
	}
	if _, err := a.submit(ctx, e); err != nil {
		return err
	}
	a.notices.Succeed(fmt.Sprintf("Game %d updated successfully!", id))
	return nil
}

func (a *App) deleteGames(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("games delete takes at least one game id")
	}
	b := browser.New(a.client, a.log)
	for _, raw := range args {
		id, err := parseGameID(raw)
		if err != nil {
			return err
		}
		if !b.State().IsSelected(id) {
			b.Toggle(id)
		}
	}
	if err := a.login(ctx); err != nil {
		return err
	}

	ids := b.State().Selected()
	var err error
	if len(ids) == 1 {
		err = b.DeleteOne(ctx, ids[0])
	} else {
		err = b.DeleteSelected(ctx)
	}
	if err != nil {
		return err
	}
	a.notices.Succeed(fmt.Sprintf("Deleted %d game(s). %d remaining.", len(ids), b.State().TotalElements))
	return nil
}
