// Package browser lists, filters, pages and deletes games.
package browser

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"gamecatalog/admin/internal/catalog"
)

const (
	// PageSize is the fixed number of games per page.
	PageSize = 16

	UntitledGame = "Untitled Game"
)

// Client is the part of *catalog.Client the browser needs.
type Client interface {
	ListGames(ctx context.Context, params catalog.ListGamesParams) (*catalog.GamePage, error)
	DeleteGame(ctx context.Context, id uint) error
	DeleteGames(ctx context.Context, ids []uint) error
}

// Browser drives a State through remote calls.
type Browser struct {
	client Client
	log    *slog.Logger

	mu    sync.Mutex
	state State
}

func New(client Client, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Browser{client: client, log: logger, state: Initial()}
}

// State returns the current snapshot.
func (b *Browser) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Dispatch applies a and returns the new state.
func (b *Browser) Dispatch(a Action) State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = Reduce(b.state, a)
	return b.state
}

func (b *Browser) fail(err error) error {
	b.Dispatch(LoadFailed{Err: err})
	return err
}

// Load fetches a page with the current filters. When the page is past the
// end, as after deleting the last games on it, the last page is loaded instead.
func (b *Browser) Load(ctx context.Context, page int) error {
	page = max(page, 0)
	res, err := b.list(ctx, page)
	if err != nil {
		return b.fail(err)
	}
	if len(res.Content) == 0 && page > 0 && page >= max(res.TotalPages, 1) {
		b.log.Debug("page past the end, loading last page", "page", page, "totalPages", res.TotalPages)
		if res, err = b.list(ctx, max(res.TotalPages-1, 0)); err != nil {
			return b.fail(err)
		}
	}
	b.Dispatch(PageLoaded{Page: res})
	return nil
}

func (b *Browser) list(ctx context.Context, page int) (*catalog.GamePage, error) {
	s := b.State()
	return b.client.ListGames(ctx, catalog.ListGamesParams{
		Page:     page,
		Size:     PageSize,
		Keyword:  s.Keyword,
		Category: s.Category,
	})
}

// Reload fetches the current page again.
func (b *Browser) Reload(ctx context.Context) error {
	return b.Load(ctx, b.State().Page)
}

// ApplyFilter sets both filters and loads the first page.
func (b *Browser) ApplyFilter(ctx context.Context, keyword, category string) error {
	b.Dispatch(KeywordChanged{Keyword: keyword})
	b.Dispatch(CategoryChanged{Category: category})
	return b.Load(ctx, 0)
}

func (b *Browser) NextPage(ctx context.Context) error {
	s := b.State()
	if !s.HasNext() {
		return nil
	}
	return b.Load(ctx, s.Page+1)
}

func (b *Browser) PrevPage(ctx context.Context) error {
	s := b.State()
	if !s.HasPrev() {
		return nil
	}
	return b.Load(ctx, s.Page-1)
}

// Toggle selects or deselects a game for bulk deletion.
func (b *Browser) Toggle(id uint) State {
	return b.Dispatch(SelectionToggled{ID: id})
}

// DeleteOne deletes a game and reloads the current page.
func (b *Browser) DeleteOne(ctx context.Context, id uint) error {
	if err := b.client.DeleteGame(ctx, id); err != nil {
		return b.fail(err)
	}
	if b.State().IsSelected(id) {
		b.Dispatch(SelectionToggled{ID: id})
	}
	b.log.Info("game deleted", "game", id)
	return b.Reload(ctx)
}

// DeleteSelected deletes every selected game in one call, clears the
// selection and reloads the current page. With nothing selected it does nothing.
func (b *Browser) DeleteSelected(ctx context.Context) error {
	ids := b.State().Selected()
	if len(ids) == 0 {
		return nil
	}
	if err := b.client.DeleteGames(ctx, ids); err != nil {
		return b.fail(err)
	}
	b.Dispatch(SelectionCleared{})
	b.log.Info("games deleted", "count", len(ids))
	return b.Reload(ctx)
}

// DisplayName is the text of the default name, or UntitledGame.
func DisplayName(game catalog.Game) string {
	if n, ok := game.DefaultName(); ok && n.Value != "" {
		return n.Value
	}
	return UntitledGame
}
