package namesync_test

import (
	"context"
	"testing"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/models"
	"gamecatalog/admin/internal/namesync"
	"gamecatalog/admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The synchronizer never clears a previous default itself; this checks the
// server keeps exactly one default when a new one is written.
func TestSync_AgainstServer_KeepsSingleDefault(t *testing.T) {
	ctx := context.Background()
	srv := testutil.NewCatalogServer(t)
	srv.SeedCategory(t, "ACTION", "Action")
	seeded := srv.SeedGame(t, "ACTION", models.GameName{Language: "en", Value: "Foo", DefaultName: true})

	client := catalog.New(srv.URL, catalog.WithLogger(testutil.TestLogger()))
	require.NoError(t, client.Login(ctx, testutil.AdminUsername, testutil.AdminPassword))

	before, err := client.GetGame(ctx, seeded.ID)
	require.NoError(t, err)

	edited := []catalog.GameName{
		{Language: "en", Value: "Foo", DefaultName: false},
		{Language: "ja", Value: "Foo-jp", DefaultName: true},
	}
	require.Len(t, namesync.Plan(before.Names, edited), 1)

	sync := namesync.New(client, testutil.TestLogger())
	require.NoError(t, sync.Sync(ctx, seeded.ID, before.Names, edited))

	after, err := client.GetGame(ctx, seeded.ID)
	require.NoError(t, err)

	defaults := map[string]bool{}
	for _, n := range after.Names {
		if n.DefaultName {
			defaults[n.Language] = true
		}
	}
	assert.Equal(t, map[string]bool{"ja": true}, defaults)
	assert.Len(t, after.Names, 2)
}

func TestSync_AgainstServer_PartialFailureStaysApplied(t *testing.T) {
	ctx := context.Background()
	srv := testutil.NewCatalogServer(t)
	srv.SeedCategory(t, "ACTION", "Action")
	seeded := srv.SeedGame(t, "ACTION", models.GameName{Language: "en", Value: "Foo", DefaultName: true})

	client := catalog.New(srv.URL)
	require.NoError(t, client.Login(ctx, testutil.AdminUsername, testutil.AdminPassword))

	before, err := client.GetGame(ctx, seeded.ID)
	require.NoError(t, err)

	// "xx" is not a seeded language, so the second add fails on the server.
	edited := []catalog.GameName{
		{Language: "en", Value: "Foo", DefaultName: true},
		{Language: "fr", Value: "Le Foo"},
		{Language: "xx", Value: "Nope"},
		{Language: "vi", Value: "Never sent"},
	}
	err = namesync.New(client, nil).Sync(ctx, seeded.ID, before.Names, edited)

	var partial *namesync.PartialError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Applied)
	remote, ok := catalog.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 400, remote.Code)

	after, err := client.GetGame(ctx, seeded.ID)
	require.NoError(t, err)
	var langs []string
	for _, n := range after.Names {
		langs = append(langs, n.Language)
	}
	assert.ElementsMatch(t, []string{"en", "fr"}, langs)
}
