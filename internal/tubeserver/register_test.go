package tubeserver

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const builtinKey = "AIzaBuiltinDefaultKey0"

func testBuild(override string) *engine.Resolver {
	return engine.NewResolver(engine.Options{
		Credentials: engine.NewCredentialResolver(override, builtinKey),
	})
}

func openStore(t *testing.T) settings.Store {
	t.Helper()
	st, err := settings.OpenSQLite(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSetAPIKey_SwapsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	s := New(ctx, testBuild, store)

	before := s.Resolver()
	assert.Equal(t, "builtin", before.Credentials().Source())

	cr, err := s.SetAPIKey(ctx, "  AIzaUserOverrideKey99  ")
	require.NoError(t, err)
	assert.Equal(t, "override", cr.Source())
	assert.Equal(t, "AIzaUserOverrideKey99", cr.Resolve().Key())
	assert.NotSame(t, before, s.Resolver())
	assert.Equal(t, "builtin", before.Credentials().Source(), "old resolver must not change")

	v, err := store.Get(ctx, settings.KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "AIzaUserOverrideKey99", v)

	// A fresh server picks the override up from the store.
	again := New(ctx, testBuild, store)
	assert.Equal(t, "override", again.Resolver().Credentials().Source())
}

func TestSetAPIKey_ClearRevertsToBuiltin(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	require.NoError(t, store.Set(ctx, settings.KeyAPIKey, "AIzaUserOverrideKey99"))
	s := New(ctx, testBuild, store)
	require.Equal(t, "override", s.Resolver().Credentials().Source())

	cr, err := s.SetAPIKey(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "builtin", cr.Source())

	v, err := store.Get(ctx, settings.KeyAPIKey)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSetAPIKey_WithoutStore(t *testing.T) {
	s := New(context.Background(), testBuild, nil)
	cr, err := s.SetAPIKey(context.Background(), "AIzaUserOverrideKey99")
	require.NoError(t, err)
	assert.Equal(t, "override", cr.Source())
	assert.True(t, strings.HasPrefix(cr.Resolve().String(), "AIza…"))
}

func TestListing_ClampsDescriptions(t *testing.T) {
	long := strings.Repeat("word ", 100)
	page := engine.Page{
		Items:      []engine.SearchResultItem{{ID: "a", Description: long}, {ID: "b", Description: "short"}},
		NextCursor: engine.SyntheticPage("invidious:m", 2),
	}

	out := listing("q", page, 0)
	assert.Equal(t, 2, out.Count)
	assert.Less(t, len([]rune(out.Items[0].Description)), len([]rune(long)))
	assert.Equal(t, "short", out.Items[1].Description)
	assert.Equal(t, 2, out.NextCursor.Page)

	full := listing("q", engine.Page{Items: []engine.SearchResultItem{{Description: long}}}, -1)
	assert.Equal(t, long, full.Items[0].Description)
	assert.Nil(t, full.NextCursor)
}
