package editor_test

import (
	"context"
	"testing"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/editor"
	"gamecatalog/admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_CreateThenEditAgainstServer(t *testing.T) {
	ctx := context.Background()
	srv := testutil.NewCatalogServer(t)
	srv.SeedCategory(t, "ACTION", "Action")
	srv.SeedCategory(t, "PUZZLE", "Puzzle")

	client := catalog.New(srv.URL)
	require.NoError(t, client.Login(ctx, testutil.AdminUsername, testutil.AdminPassword))

	e := editor.New(client, testutil.TestLogger())
	e.SetCategory("ACTION")
	e.SetName("en", "Foo")
	e.SetName("vi", "Bar")
	e.SetDefault("en")
	created, err := e.Submit(ctx)
	require.NoError(t, err)
	require.Len(t, created.Names, 2)

	loaded, err := editor.Load(ctx, client, created.ID, testutil.TestLogger())
	require.NoError(t, err)
	loaded.SetCategory("PUZZLE")
	loaded.SetName("vi", "")
	loaded.SetName("ja", "Foo-jp")
	loaded.SetDefault("ja")
	_, err = loaded.Submit(ctx)
	require.NoError(t, err)

	game, err := client.GetGame(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "PUZZLE", game.Category)

	byLang := map[string]catalog.GameName{}
	for _, n := range game.Names {
		byLang[n.Language] = n
	}
	require.Len(t, byLang, 2)
	assert.False(t, byLang["en"].DefaultName)
	assert.True(t, byLang["ja"].DefaultName)
	assert.Equal(t, "Foo-jp", byLang["ja"].Value)
}
