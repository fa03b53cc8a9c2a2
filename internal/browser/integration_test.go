package browser_test

import (
	"context"
	"testing"

	"gamecatalog/admin/internal/browser"
	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/models"
	"gamecatalog/admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowser_BulkDeleteAgainstServer(t *testing.T) {
	ctx := context.Background()
	srv := testutil.NewCatalogServer(t)
	srv.SeedCategory(t, "ACTION", "Action")

	var ids []uint
	for _, title := range []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"} {
		g := srv.SeedGame(t, "ACTION", models.GameName{Language: "en", Value: title, DefaultName: true})
		ids = append(ids, g.ID)
	}

	client := catalog.New(srv.URL)
	require.NoError(t, client.Login(ctx, testutil.AdminUsername, testutil.AdminPassword))

	b := browser.New(client, testutil.TestLogger())
	require.NoError(t, b.Load(ctx, 0))
	require.Len(t, b.State().Games, 5)

	b.Toggle(ids[1])
	b.Toggle(ids[3])
	require.NoError(t, b.DeleteSelected(ctx))

	var remaining []string
	for _, g := range b.State().Games {
		remaining = append(remaining, browser.DisplayName(g))
	}
	assert.Equal(t, []string{"Alpha", "Gamma", "Epsilon"}, remaining)

	require.NoError(t, b.ApplyFilter(ctx, "gam", ""))
	require.Len(t, b.State().Games, 1)
	assert.Equal(t, "Gamma", browser.DisplayName(b.State().Games[0]))
}
