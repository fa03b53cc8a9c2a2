// Package editor holds the form state of a game being created or edited and
// persists it through the catalog client.
package editor

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/namesync"
)

const (
	MsgSelectCategory = "Please select a category!"
	MsgSelectDefault  = "Please select a default name!"
)

// Client is the part of *catalog.Client the editor needs.
type Client interface {
	namesync.Writer
	GetGame(ctx context.Context, id uint) (*catalog.Game, error)
	CreateGame(ctx context.Context, in catalog.CreateGameInput) (*catalog.Game, error)
	UpdateGame(ctx context.Context, id uint, category string, image *catalog.Image) (*catalog.Game, error)
}

// Editor is the state of one create or edit form. It is not safe for
// concurrent use.
type Editor struct {
	client Client
	sync   *namesync.Synchronizer
	log    *slog.Logger

	gameID    uint
	category  string
	imagePath string
	image     *catalog.Image

	names    []catalog.GameName
	original []catalog.GameName
}

// New starts an empty form for a new game.
func New(client Client, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Editor{
		client: client,
		sync:   namesync.New(client, logger),
		log:    logger,
	}
}

// Load starts a form for an existing game.
func Load(ctx context.Context, client Client, id uint, logger *slog.Logger) (*Editor, error) {
	e := New(client, logger)
	game, err := client.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	e.reset(game)
	return e, nil
}

func (e *Editor) reset(game *catalog.Game) {
	e.gameID = game.ID
	e.category = game.Category
	e.imagePath = game.Image
	e.image = nil
	e.original = cloneNames(game.Names)
	e.names = cloneNames(game.Names)
	for i := range e.names {
		e.names[i].ID = 0
	}
}

func cloneNames(names []catalog.GameName) []catalog.GameName {
	return append([]catalog.GameName(nil), names...)
}

// IsNew reports whether submitting creates a game rather than updating one.
func (e *Editor) IsNew() bool { return e.gameID == 0 }

// GameID is zero until the game exists remotely.
func (e *Editor) GameID() uint { return e.gameID }

func (e *Editor) Category() string { return e.category }

// ImagePath is the public path of the stored image, if any.
func (e *Editor) ImagePath() string { return e.imagePath }

// HasPendingImage reports whether an image will be uploaded on the next submit.
func (e *Editor) HasPendingImage() bool { return e.image != nil }

// Names returns the edited names in form order.
func (e *Editor) Names() []catalog.GameName { return cloneNames(e.names) }

// Name returns the edited entry for a language.
func (e *Editor) Name(lang string) (catalog.GameName, bool) {
	if i := e.index(lang); i >= 0 {
		return e.names[i], true
	}
	return catalog.GameName{}, false
}

func (e *Editor) index(lang string) int {
	for i, n := range e.names {
		if n.Language == lang {
			return i
		}
	}
	return -1
}

func (e *Editor) SetCategory(code string) { e.category = code }

// SetImage replaces the image on the next submit.
func (e *Editor) SetImage(filename string, data []byte) {
	e.image = &catalog.Image{Filename: filename, Data: data}
}

// SetName sets the text of a language, keeping its position and default flag.
// Blank text removes the language on the next submit.
func (e *Editor) SetName(lang, value string) {
	if i := e.index(lang); i >= 0 {
		e.names[i].Value = value
		return
	}
	e.names = append(e.names, catalog.GameName{Language: lang, Value: value})
}

// SetDefault makes lang the only default name.
func (e *Editor) SetDefault(lang string) {
	if e.index(lang) < 0 {
		e.names = append(e.names, catalog.GameName{Language: lang})
	}
	for i := range e.names {
		e.names[i].DefaultName = e.names[i].Language == lang
	}
}

// RemoveName drops a language from the form.
func (e *Editor) RemoveName(lang string) {
	if i := e.index(lang); i >= 0 {
		e.names = append(e.names[:i], e.names[i+1:]...)
	}
}

// Validate checks the form before anything is sent.
func (e *Editor) Validate() error {
	if strings.TrimSpace(e.category) == "" {
		return &catalog.ValidationError{Field: "category", Message: MsgSelectCategory}
	}
	defaults := 0
	for _, n := range e.names {
		if n.DefaultName && strings.TrimSpace(n.Value) != "" {
			defaults++
		}
	}
	if defaults != 1 {
		return &catalog.ValidationError{Field: "gameNames", Message: MsgSelectDefault}
	}
	return nil
}

// Submit validates the form and persists it. A new game is created in one
// call. An existing game gets its category and image updated, then its names
// synchronized; if that stops partway the error is a *namesync.PartialError,
// the applied writes stay, and the form keeps the edits so a second Submit
// only sends what is still missing.
func (e *Editor) Submit(ctx context.Context) (*catalog.Game, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.IsNew() {
		return e.create(ctx)
	}
	return e.update(ctx)
}

func (e *Editor) create(ctx context.Context) (*catalog.Game, error) {
	in := catalog.CreateGameInput{Category: e.category, Image: e.image}
	for _, n := range e.names {
		if strings.TrimSpace(n.Value) == "" {
			continue
		}
		in.Names = append(in.Names, catalog.GameName{Language: n.Language, Value: n.Value, DefaultName: n.DefaultName})
	}

	game, err := e.client.CreateGame(ctx, in)
	if err != nil {
		return nil, err
	}
	e.log.Info("game created", "game", game.ID, "names", len(game.Names))
	e.reset(game)
	return game, nil
}

func (e *Editor) update(ctx context.Context) (*catalog.Game, error) {
	if _, err := e.client.UpdateGame(ctx, e.gameID, e.category, e.image); err != nil {
		return nil, err
	}
	e.image = nil

	if err := e.sync.Sync(ctx, e.gameID, e.original, e.names); err != nil {
		e.refreshOriginal(ctx)
		return nil, err
	}

	game, err := e.client.GetGame(ctx, e.gameID)
	if err != nil {
		return nil, err
	}
	e.log.Info("game updated", "game", game.ID, "names", len(game.Names))
	e.reset(game)
	return game, nil
}

// refreshOriginal re-reads the persisted names after a partial sync and keeps
// the edited ones.
func (e *Editor) refreshOriginal(ctx context.Context) {
	game, err := e.client.GetGame(ctx, e.gameID)
	if err != nil {
		e.log.Warn("reload after partial sync failed", "game", e.gameID, "error", err)
		return
	}
	e.original = cloneNames(game.Names)
	e.imagePath = game.Image
}
