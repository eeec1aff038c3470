// Package testutil provides temp content-tree builders for loader tests.
// Fixtures are plain maps so tests can freely break individual fields before
// writing them out.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to path, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// WriteJSON marshals v and writes it to path, failing the test on error.
func WriteJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// ValidItem returns a complete, valid raw item document.
func ValidItem(id string) map[string]any {
	return map[string]any{
		"id":              id,
		"name":            "brass lantern",
		"description":     "A battery-powered brass lantern is on the trophy case.",
		"examineText":     "The lantern is a sturdy, brass-plated light source.",
		"aliases":         []string{"lamp", "lantern", "light"},
		"type":            "TOOL",
		"portable":        true,
		"visible":         true,
		"weight":          15,
		"size":            "MEDIUM",
		"initialState":    map[string]any{"isOn": false},
		"tags":            []string{"portable", "light_source"},
		"properties":      map[string]any{"lightTimer": 330, "size": 15},
		"interactions":    []map[string]any{{"command": "turn on", "message": "The lamp is now on."}},
		"initialLocation": "living_room",
	}
}

// ValidMonster returns a complete, valid raw monster document.
func ValidMonster(id string) map[string]any {
	return map[string]any{
		"id":              id,
		"name":            "nasty knife-wielding thief",
		"type":            "humanoid",
		"description":     "A suspicious-looking individual, holding a large sack.",
		"examineText":     "He is armed with a deadly stiletto.",
		"startingSceneId": "living_room",
		"health":          20,
		"maxHealth":       20,
		"inventory":       []string{"stiletto"},
		"synonyms":        []string{"robber", "thug"},
		"flags":           map[string]any{},
		"properties":      map[string]any{},
	}
}

// ValidScene returns a complete, valid raw scene document.
func ValidScene(id string) map[string]any {
	return map[string]any{
		"id":          id,
		"title":       "Living Room",
		"description": "You are in the living room of the white house.",
		"exits": map[string]any{
			"east": "kitchen",
		},
		"items":      []string{"lamp"},
		"monsters":   []string{},
		"state":      map[string]any{},
		"lighting":   "lit",
		"region":     "above_ground",
		"atmosphere": []string{"A breeze blows through the open window."},
		"tags":       []string{"above_ground"},
	}
}

// ItemDir writes an item content directory (index plus one file per item,
// named <id>.json) into a temp dir and returns its path.
func ItemDir(t *testing.T, items ...map[string]any) string {
	t.Helper()
	dir := t.TempDir()
	files := make([]string, 0, len(items))
	for _, it := range items {
		name := it["id"].(string) + ".json"
		files = append(files, name)
		WriteJSON(t, filepath.Join(dir, name), it)
	}
	WriteJSON(t, filepath.Join(dir, "index.json"), map[string]any{
		"items":       files,
		"total":       len(files),
		"lastUpdated": "2024-06-25T00:00:00Z",
	})
	return dir
}

// MonsterDir writes a monster content directory into a temp dir and returns
// its path. The index lists ids and buckets them by type.
func MonsterDir(t *testing.T, monsters ...map[string]any) string {
	t.Helper()
	dir := t.TempDir()
	ids := make([]string, 0, len(monsters))
	types := map[string][]string{"humanoid": {}, "creature": {}, "environmental": {}}
	for _, m := range monsters {
		id := m["id"].(string)
		ids = append(ids, id)
		typ := m["type"].(string)
		types[typ] = append(types[typ], id)
		WriteJSON(t, filepath.Join(dir, id+".json"), m)
	}
	WriteJSON(t, filepath.Join(dir, "index.json"), map[string]any{
		"monsters": ids,
		"total":    len(ids),
		"types":    types,
	})
	return dir
}

// SceneDir writes a scene content directory into a temp dir and returns its
// path. The index lists file names and buckets them by region.
func SceneDir(t *testing.T, scenes ...map[string]any) string {
	t.Helper()
	dir := t.TempDir()
	files := make([]string, 0, len(scenes))
	regions := make(map[string][]string)
	for _, s := range scenes {
		name := s["id"].(string) + ".json"
		files = append(files, name)
		region := s["region"].(string)
		regions[region] = append(regions[region], name)
		WriteJSON(t, filepath.Join(dir, name), s)
	}
	WriteJSON(t, filepath.Join(dir, "index.json"), map[string]any{
		"scenes":      files,
		"total":       len(files),
		"regions":     regions,
		"lastUpdated": "2024-06-27T00:00:00Z",
	})
	return dir
}
