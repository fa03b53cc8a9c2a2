package editor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/namesync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records calls and serves one stored game.
type fakeClient struct {
	game    catalog.Game
	calls   []string
	nextID  uint
	failOn  string
	failErr error
}

func (f *fakeClient) call(name string) error {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return f.failErr
	}
	return nil
}

func (f *fakeClient) GetGame(_ context.Context, id uint) (*catalog.Game, error) {
	if err := f.call("get"); err != nil {
		return nil, err
	}
	if id != f.game.ID {
		return nil, &catalog.Error{Code: 404, Message: "Game not found"}
	}
	g := f.game
	g.Names = append([]catalog.GameName(nil), f.game.Names...)
	return &g, nil
}

func (f *fakeClient) CreateGame(_ context.Context, in catalog.CreateGameInput) (*catalog.Game, error) {
	if err := f.call("create"); err != nil {
		return nil, err
	}
	f.game = catalog.Game{ID: 42, Category: in.Category}
	if in.Image != nil {
		f.game.Image = "/uploads/" + in.Image.Filename
	}
	for _, n := range in.Names {
		f.nextID++
		n.ID = f.nextID
		f.game.Names = append(f.game.Names, n)
	}
	return f.GetGame(context.Background(), 42)
}

func (f *fakeClient) UpdateGame(_ context.Context, id uint, category string, image *catalog.Image) (*catalog.Game, error) {
	if err := f.call("updateGame"); err != nil {
		return nil, err
	}
	f.game.Category = category
	if image != nil {
		f.game.Image = "/uploads/" + image.Filename
	}
	return &f.game, nil
}

func (f *fakeClient) AddName(_ context.Context, _ uint, n catalog.GameName) (*catalog.GameName, error) {
	if err := f.call("add:" + n.Language); err != nil {
		return nil, err
	}
	f.nextID++
	n.ID = f.nextID
	f.game.Names = append(f.game.Names, n)
	return &n, nil
}

func (f *fakeClient) UpdateName(_ context.Context, _ uint, id uint, n catalog.GameName) (*catalog.GameName, error) {
	if err := f.call(fmt.Sprintf("update:%d", id)); err != nil {
		return nil, err
	}
	for i := range f.game.Names {
		if f.game.Names[i].ID == id {
			f.game.Names[i].Value = n.Value
			f.game.Names[i].DefaultName = n.DefaultName
		}
	}
	return &n, nil
}

func (f *fakeClient) DeleteName(_ context.Context, _ uint, id uint) error {
	if err := f.call(fmt.Sprintf("delete:%d", id)); err != nil {
		return err
	}
	kept := f.game.Names[:0]
	for _, n := range f.game.Names {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	f.game.Names = kept
	return nil
}

func storedGame() catalog.Game {
	return catalog.Game{
		ID:       7,
		Category: "ACTION",
		Names: []catalog.GameName{
			{ID: 1, Language: "en", Value: "Foo", DefaultName: true},
			{ID: 2, Language: "vi", Value: "Bar"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Editor)
		want  string
	}{
		{"no category", func(e *Editor) { e.SetName("en", "Foo"); e.SetDefault("en") }, MsgSelectCategory},
		{"no default", func(e *Editor) { e.SetCategory("ACTION"); e.SetName("en", "Foo") }, MsgSelectDefault},
		{"default is blank", func(e *Editor) { e.SetCategory("ACTION"); e.SetName("en", "  "); e.SetDefault("en") }, MsgSelectDefault},
		{"valid", func(e *Editor) { e.SetCategory("ACTION"); e.SetName("en", "Foo"); e.SetDefault("en") }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			e := New(client, nil)
			tt.setup(e)

			_, err := e.Submit(context.Background())
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, catalog.IsValidation(err))
			assert.Equal(t, tt.want, err.Error())
			assert.Empty(t, client.calls, "validation failure must not reach the client")
		})
	}
}

func TestSetDefault_KeepsOneDefault(t *testing.T) {
	e := New(&fakeClient{}, nil)
	e.SetName("en", "Foo")
	e.SetName("vi", "Bar")
	e.SetDefault("en")
	e.SetDefault("vi")
	e.SetDefault("fr")

	var defaults []string
	for _, n := range e.Names() {
		if n.DefaultName {
			defaults = append(defaults, n.Language)
		}
	}
	assert.Equal(t, []string{"fr"}, defaults)

	fr, ok := e.Name("fr")
	require.True(t, ok)
	assert.Empty(t, fr.Value)
}

func TestSubmit_CreateSendsOnlyFilledNames(t *testing.T) {
	client := &fakeClient{}
	e := New(client, nil)
	e.SetCategory("ACTION")
	e.SetImage("cover.png", []byte("png"))
	e.SetName("en", "Foo")
	e.SetName("vi", " ")
	e.SetDefault("en")

	game, err := e.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"create", "get"}, client.calls)
	require.Len(t, game.Names, 1)
	assert.Equal(t, "en", game.Names[0].Language)
	assert.False(t, e.IsNew())
	assert.Equal(t, uint(42), e.GameID())
	assert.Equal(t, "/uploads/cover.png", e.ImagePath())
	assert.False(t, e.HasPendingImage())
}

func TestSubmit_UpdateSyncsNames(t *testing.T) {
	client := &fakeClient{game: storedGame()}
	e, err := Load(context.Background(), client, 7, nil)
	require.NoError(t, err)
	client.calls = nil

	e.SetCategory("RPG")
	e.SetName("vi", "")
	e.SetName("fr", "Baz")

	game, err := e.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"updateGame", "add:fr", "delete:2", "get"}, client.calls)
	assert.Equal(t, "RPG", game.Category)

	// A second submit with no edits only re-sends the category.
	client.calls = nil
	_, err = e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"updateGame", "get"}, client.calls)
}

func TestSubmit_PartialSyncCanBeResumed(t *testing.T) {
	boom := &catalog.Error{Code: 500, Message: "Unexpected error"}
	client := &fakeClient{game: storedGame(), failOn: "delete:2", failErr: boom}
	e, err := Load(context.Background(), client, 7, nil)
	require.NoError(t, err)

	e.SetName("fr", "Baz")
	e.RemoveName("vi")

	_, err = e.Submit(context.Background())
	var partial *namesync.PartialError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Applied)
	assert.True(t, errors.Is(err, boom))

	// fr was applied and stays; the retry only deletes vi.
	client.failOn = ""
	client.calls = nil
	game, err := e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"updateGame", "delete:2", "get"}, client.calls)

	var langs []string
	for _, n := range game.Names {
		langs = append(langs, n.Language)
	}
	assert.Equal(t, []string{"en", "fr"}, langs)
}

func TestSubmit_UpdateGameFailureSkipsSync(t *testing.T) {
	client := &fakeClient{game: storedGame(), failOn: "updateGame", failErr: &catalog.Error{Code: 404, Message: "Game not found"}}
	e, err := Load(context.Background(), client, 7, nil)
	require.NoError(t, err)
	client.calls = nil
	e.SetName("fr", "Baz")

	_, err = e.Submit(context.Background())
	assert.True(t, catalog.IsNotFound(err))
	assert.Equal(t, []string{"updateGame"}, client.calls)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(context.Background(), &fakeClient{game: storedGame()}, 99, nil)
	assert.True(t, catalog.IsNotFound(err))
}
