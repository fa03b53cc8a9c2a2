package categories_test

import (
	"context"
	"testing"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/categories"
	"gamecatalog/admin/internal/models"
	"gamecatalog/admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_AgainstServer(t *testing.T) {
	ctx := context.Background()
	srv := testutil.NewCatalogServer(t)

	client := catalog.New(srv.URL)
	require.NoError(t, client.Login(ctx, testutil.AdminUsername, testutil.AdminPassword))
	m := categories.New(client, nil, testutil.TestLogger())

	created, err := m.Create(ctx, "Action RPG")
	require.NoError(t, err)
	assert.Equal(t, "ACTION_RPG", created.Code)

	_, err = m.Rename(ctx, created.Code, "Action Role-Playing")
	require.NoError(t, err)
	got, ok := m.Find("ACTION_RPG")
	require.True(t, ok)
	assert.Equal(t, "Action Role-Playing", got.DisplayName)

	srv.SeedGame(t, "ACTION_RPG", models.GameName{Language: "en", Value: "Foo", DefaultName: true})
	err = m.Delete(ctx, "ACTION_RPG")
	remote, ok := catalog.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 409, remote.Code)
	assert.Len(t, m.Categories(), 1)
}
