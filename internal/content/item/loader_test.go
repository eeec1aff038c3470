package item_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/zork-content/internal/content"
	"github.com/cory-johannsen/zork-content/internal/content/item"
	"github.com/cory-johannsen/zork-content/internal/testutil"
)

func observedLoader(t *testing.T, basePath string) (*item.Loader, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	return item.NewLoader(basePath, zap.New(core)), logs
}

func itemFixture(id string) map[string]any {
	it := testutil.ValidItem(id)
	return it
}

func TestLoadAll_ReturnsEntriesInIndexOrder(t *testing.T) {
	dir := testutil.ItemDir(t, itemFixture("sword"), itemFixture("lamp"), itemFixture("rope"))
	loader := item.NewLoader(dir, nil)

	items, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "sword", items[0].ID)
	assert.Equal(t, "lamp", items[1].ID)
	assert.Equal(t, "rope", items[2].ID)
}

func TestLoadAll_MissingFileSkippedAndLogged(t *testing.T) {
	dir := testutil.ItemDir(t, itemFixture("a"), itemFixture("b"))
	require.NoError(t, os.Remove(filepath.Join(dir, "b.json")))

	loader, logs := observedLoader(t, dir)
	items, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)

	entries := logs.FilterMessage("Failed to load item").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "b.json", entries[0].ContextMap()["entry"])
	assert.Contains(t, fmt.Sprint(entries[0].ContextMap()["error"]), "Failed to load item from b.json")
}

func TestLoadAll_InvalidEntriesSkipped(t *testing.T) {
	missingField := itemFixture("broken")
	delete(missingField, "weight")
	badType := itemFixture("strange")
	badType["type"] = "INVALID_TYPE"

	dir := testutil.ItemDir(t, itemFixture("good"), missingField, badType)

	loader, logs := observedLoader(t, dir)
	items, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "good", items[0].ID)
	assert.Equal(t, 2, logs.Len())
}

func TestLoadAll_CachesSameSlice(t *testing.T) {
	dir := testutil.ItemDir(t, itemFixture("lamp"))
	loader := item.NewLoader(dir, nil)

	first, err := loader.LoadAll()
	require.NoError(t, err)

	// Removing the backing files must not matter: the cache answers.
	require.NoError(t, os.Remove(filepath.Join(dir, "lamp.json")))
	require.NoError(t, os.Remove(filepath.Join(dir, "index.json")))

	second, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Same(t, first[0], second[0])
}

func TestLoad_ByID(t *testing.T) {
	dir := testutil.ItemDir(t, itemFixture("lamp"), itemFixture("sword"))
	loader := item.NewLoader(dir, nil)

	it, err := loader.Load("sword")
	require.NoError(t, err)
	assert.Equal(t, "sword", it.ID)
}

func TestLoad_UnknownIDNotFound(t *testing.T) {
	dir := testutil.ItemDir(t, itemFixture("lamp"))
	loader := item.NewLoader(dir, nil)

	_, err := loader.Load("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
	assert.Contains(t, err.Error(), "not found")

	var nf *content.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.ID)
}

func TestLoad_ListedButUnreadableFilePropagates(t *testing.T) {
	dir := testutil.ItemDir(t, itemFixture("lamp"))
	require.NoError(t, os.Remove(filepath.Join(dir, "lamp.json")))

	loader := item.NewLoader(dir, nil)
	_, err := loader.Load("lamp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load item from lamp.json")
}

func TestMalformedIndex_PoisonsEveryOperation(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "index.json"), "{ invalid json }")
	loader := item.NewLoader(dir, nil)

	_, err := loader.LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load item index")

	_, err = loader.Load("lamp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load item index")

	_, err = loader.ByLocation("living_room")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load item index")
}

func TestReadIndex_StructuralDefects(t *testing.T) {
	tests := []struct {
		name  string
		index string
		want  string
	}{
		{"items not array", `{"items": "a.json", "total": 1}`, "Index data must have items array"},
		{"total not number", `{"items": [], "total": "1"}`, "Index data must have total number"},
		{"index not object", `["a.json"]`, "Index data must be an object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.WriteFile(t, filepath.Join(dir, "index.json"), tt.index)
			loader, logs := observedLoader(t, dir)

			_, err := loader.LoadAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Failed to load item index")
			assert.Contains(t, err.Error(), tt.want)
			// An invalid index never proceeds to per-entry loading.
			assert.Zero(t, logs.Len())
		})
	}
}

func TestByLocation_FiltersOnCurrentLocation(t *testing.T) {
	lamp := itemFixture("lamp")
	lamp["initialLocation"] = "living_room"
	sword := itemFixture("sword")
	sword["initialLocation"] = "attic"

	dir := testutil.ItemDir(t, lamp, sword)
	loader := item.NewLoader(dir, nil)

	got, err := loader.ByLocation("living_room")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "lamp", got[0].ID)

	empty, err := loader.ByLocation("cellar")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestByLocation_CacheEntriesAreIndependent(t *testing.T) {
	lamp := itemFixture("lamp")
	lamp["initialLocation"] = "living_room"
	sword := itemFixture("sword")
	sword["initialLocation"] = "attic"

	dir := testutil.ItemDir(t, lamp, sword)
	loader := item.NewLoader(dir, nil)

	living, err := loader.ByLocation("living_room")
	require.NoError(t, err)
	attic, err := loader.ByLocation("attic")
	require.NoError(t, err)
	require.Len(t, living, 1)
	require.Len(t, attic, 1)

	livingAgain, err := loader.ByLocation("living_room")
	require.NoError(t, err)
	assert.Same(t, living[0], livingAgain[0])
}

func TestConcurrentLoads_DoNotInterfere(t *testing.T) {
	lamp := itemFixture("lamp")
	lamp["initialLocation"] = "living_room"
	dir := testutil.ItemDir(t, lamp)
	loader := item.NewLoader(dir, nil)

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			items, err := loader.LoadAll()
			assert.NoError(t, err)
			assert.Len(t, items, 1)
		}()
		go func() {
			defer wg.Done()
			items, err := loader.ByLocation("living_room")
			assert.NoError(t, err)
			assert.Len(t, items, 1)
		}()
	}
	wg.Wait()
}

// TestLoadAll_CountMatchesIndex verifies that for any number of valid
// content files, LoadAll returns exactly one item per index entry, in
// listed order.
func TestLoadAll_CountMatchesIndex(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "numItems")
		fixtures := make([]map[string]any, 0, n)
		for i := 0; i < n; i++ {
			fixtures = append(fixtures, itemFixture(fmt.Sprintf("item_%d", i)))
		}

		dir := testutil.ItemDir(t, fixtures...)
		loader := item.NewLoader(dir, nil)
		items, err := loader.LoadAll()
		if err != nil {
			rt.Fatal(err)
		}
		if len(items) != n {
			rt.Fatalf("expected %d items, got %d", n, len(items))
		}
		for i, it := range items {
			if it.ID != fmt.Sprintf("item_%d", i) {
				rt.Fatalf("position %d holds %q", i, it.ID)
			}
		}
	})
}
