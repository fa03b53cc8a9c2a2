// Package console is the command-line admin console for the game catalog.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/config"
	"gamecatalog/admin/internal/namesync"
	"gamecatalog/admin/internal/notice"

	"github.com/spf13/pflag"
)

const usage = `Usage: catalog-console [global flags] <command> [args]

Commands:
  games list [--keyword K] [--category C] [--page N]
  games show ID
  games create --category C --name LANG=TEXT... --default LANG [--image FILE]
  games edit ID [--category C] [--name LANG=TEXT...] [--remove-name LANG...] [--default LANG] [--image FILE]
  games delete ID...
  categories list
  categories create DISPLAY NAME
  categories rename CODE DISPLAY NAME
  categories delete CODE
  languages
  import FILE.yaml [--continue-on-error]
  whoami
  accounts create USERNAME --account-password PASS [--role admin|viewer]

Global flags:
  --api-url URL        catalog API base URL (CATALOG_API_URL)
  --username NAME      admin username for writes (CATALOG_USERNAME)
  --password PASS      admin password for writes (CATALOG_PASSWORD)
  --timeout DURATION   per-request timeout (CATALOG_TIMEOUT)
`

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("invalid usage")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// App runs console commands against one catalog client.
type App struct {
	client  *catalog.Client
	cfg     *config.ConsoleConfig
	out     io.Writer
	errOut  io.Writer
	log     *slog.Logger
	notices *notice.Board

	progress bool
}

// Option configures an App.
type Option func(*App)

// WithOutput sets where results and diagnostics are written.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithProgress turns the import progress bar on or off.
func WithProgress(show bool) Option {
	return func(a *App) { a.progress = show }
}

func New(client *catalog.Client, cfg *config.ConsoleConfig, opts ...Option) *App {
	a := &App{
		client:   client,
		cfg:      cfg,
		out:      os.Stdout,
		errOut:   os.Stderr,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		notices:  notice.NewBoard(),
		progress: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cfg == nil {
		a.cfg = &config.ConsoleConfig{}
	}
	return a
}

// Usage writes the command summary.
func (a *App) Usage() {
	fmt.Fprint(a.out, usage)
}

// Run executes one command line (without the program name and global flags).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return usageError("no command given")
	}

	a.notices.Clear()
	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "games", "game":
		err = a.runGames(ctx, rest)
	case "categories", "category":
		err = a.runCategories(ctx, rest)
	case "languages":
		err = a.listLanguages(ctx)
	case "import":
		err = a.runImport(ctx, rest)
	case "whoami":
		err = a.whoami(ctx)
	case "accounts":
		err = a.runAccounts(ctx, rest)
	case "help", "-h", "--help":
		a.Usage()
		return nil
	default:
		err = usageError("unknown command %q", cmd)
	}
	if err != nil {
		a.notices.Fail(err)
		return err
	}
	if msg := a.notices.Success(); msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	return nil
}

// Describe is the one-line text shown for an error returned by Run.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrUsage) {
		return err.Error()
	}
	msg := notice.Message(err)
	var partial *namesync.PartialError
	if errors.As(err, &partial) {
		msg = fmt.Sprintf("%s (names partly saved: %d of %d changes applied, run the edit again to finish)",
			msg, partial.Applied, partial.Total)
	}
	return msg
}

// login obtains a token with the configured credentials unless one is held.
func (a *App) login(ctx context.Context) error {
	if a.client.HasToken() {
		return nil
	}
	if a.cfg.Username == "" || a.cfg.Password == "" {
		return usageError("write commands need --username and --password (or CATALOG_USERNAME and CATALOG_PASSWORD)")
	}
	if err := a.client.Login(ctx, a.cfg.Username, a.cfg.Password); err != nil {
		return err
	}
	a.log.Debug("logged in", "username", a.cfg.Username)
	return nil
}

func (a *App) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func parseGameID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, usageError("invalid game id %q", s)
	}
	return uint(id), nil
}

func (a *App) listLanguages(ctx context.Context) error {
	langs, err := a.client.ListLanguages(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(langs))
	for _, l := range langs {
		rows = append(rows, []string{l.Code, l.Name})
	}
	renderTable(a.out, []string{"CODE", "NAME"}, rows)
	return nil
}
