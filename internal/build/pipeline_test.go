package build_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/game-club/library/internal/build"
	"github.com/game-club/library/pkg/catalog"
	"github.com/game-club/library/pkg/logging"
)

func discussionNode(title, body, createdAt, updatedAt string) string {
	node := map[string]any{
		"title":     title,
		"body":      body,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
		"category":  map[string]any{"name": "Game"},
	}
	raw, _ := json.Marshal(node)
	return string(raw)
}

func githubServer(t *testing.T, nodes ...string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"data": {"repository": {"discussions": {"nodes": [%s]}}}}`,
			joinNodes(nodes))
	}))
	t.Cleanup(server.Close)
	return server
}

func joinNodes(nodes []string) string {
	out := ""
	for i, node := range nodes {
		if i > 0 {
			out += ","
		}
		out += node
	}
	return out
}

func steamServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appID := r.URL.Query().Get("appids")
		fmt.Fprintf(w, `{%q: {"success": true, "data": {
			"header_image": "https://cdn/%s/header.jpg",
			"short_description": "Store description for %s",
			"genres": [{"description": "Action"}]
		}}}`, appID, appID, appID)
	}))
	t.Cleanup(server.Close)
	return server
}

func writePersisted(t *testing.T, dir string, record map[string]any) {
	t.Helper()
	gameDir := filepath.Join(dir, "game")
	require.NoError(t, os.MkdirAll(gameDir, 0755))
	raw, err := json.Marshal(record)
	require.NoError(t, err)
	id, _ := record["id"].(string)
	require.NoError(t, os.WriteFile(filepath.Join(gameDir, id+".json"), raw, 0644))
}

func readSummaries(t *testing.T, path string) []map[string]any {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestPipelineFullRun(t *testing.T) {
	dir := t.TempDir()
	writePersisted(t, dir, map[string]any{
		"id":        "old-game",
		"name":      "Old Game",
		"addedAt":   "2023-06-01",
		"updatedAt": "2023-06-01",
	})

	body := "```json\n{\"id\":\"fresh-game\",\"name\":\"Fresh Game\",\"steamAppId\":10}\n```"
	github := githubServer(t,
		discussionNode("Fresh Game", body, "2024-05-01T12:00:00Z", "2024-05-02T12:00:00Z"),
		discussionNode("Skipped", "no payload", "2024-05-01T12:00:00Z", "2024-05-01T12:00:00Z"),
	)
	store := steamServer(t)

	pipeline := build.New(build.Config{
		Owner:       "club",
		Repo:        "games",
		Token:       "token",
		NewestLimit: 6,
		APIDir:      dir,
	}, logging.Nop)
	pipeline.GitHub.APIURL = github.URL
	pipeline.Steam.APIURL = store.URL

	require.NoError(t, pipeline.Run(context.Background()))

	summaries := readSummaries(t, filepath.Join(dir, "games.json"))
	require.Len(t, summaries, 2)
	// Sorted by most recent update first.
	assert.Equal(t, "fresh-game", summaries[0]["id"])
	assert.Equal(t, "old-game", summaries[1]["id"])

	newest := readSummaries(t, filepath.Join(dir, "new.json"))
	require.Len(t, newest, 2)
	assert.Equal(t, "fresh-game", newest[0]["id"])

	raw, err := os.ReadFile(filepath.Join(dir, "game", "fresh-game.json"))
	require.NoError(t, err)
	var record catalog.Record
	require.NoError(t, json.Unmarshal(raw, &record))
	assert.Equal(t, "Store description for 10", record.Description)
	assert.Equal(t, []string{"Action"}, record.Genres)
	assert.Equal(t, "https://cdn/10/header.jpg", record.Media.Cover)
	require.NotNil(t, record.Steam)
	assert.Equal(t, "https://store.steampowered.com/app/10/", record.Steam.Store)
}

func TestPipelineFreshSubmissionReplacesPersisted(t *testing.T) {
	dir := t.TempDir()
	writePersisted(t, dir, map[string]any{
		"id":        "g1",
		"name":      "Stale Name",
		"addedAt":   "2023-01-01",
		"updatedAt": "2023-01-01",
	})

	body := "```json\n{\"id\":\"g1\",\"name\":\"Current Name\"}\n```"
	github := githubServer(t, discussionNode("Current Name", body, "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z"))

	pipeline := build.New(build.Config{
		Owner:       "club",
		Repo:        "games",
		Token:       "token",
		NewestLimit: 6,
		APIDir:      dir,
	}, logging.Nop)
	pipeline.GitHub.APIURL = github.URL

	require.NoError(t, pipeline.Run(context.Background()))

	raw, err := os.ReadFile(filepath.Join(dir, "game", "g1.json"))
	require.NoError(t, err)
	var record catalog.Record
	require.NoError(t, json.Unmarshal(raw, &record))
	assert.Equal(t, "Current Name", record.Name)
	assert.Equal(t, "2024-01-01", record.AddedAt)
}

func TestPipelineUnconfiguredUsesPersistedOnly(t *testing.T) {
	dir := t.TempDir()
	writePersisted(t, dir, map[string]any{
		"id":        "g1",
		"name":      "Persisted",
		"tags":      []string{"Legacy"},
		"addedAt":   "2023-01-01",
		"updatedAt": "2023-01-01",
	})

	pipeline := build.New(build.Config{NewestLimit: 6, APIDir: dir}, logging.Nop)
	require.NoError(t, pipeline.Run(context.Background()))

	summaries := readSummaries(t, filepath.Join(dir, "games.json"))
	require.Len(t, summaries, 1)
	assert.Equal(t, "g1", summaries[0]["id"])

	// Normalization runs on persisted records too: legacy tags fold away.
	raw, err := os.ReadFile(filepath.Join(dir, "game", "g1.json"))
	require.NoError(t, err)
	var record catalog.Record
	require.NoError(t, json.Unmarshal(raw, &record))
	assert.Equal(t, []string{"Legacy"}, record.Categories)
	assert.Nil(t, record.Tags)
	assert.Equal(t, "assets/img/placeholder-cover.svg", record.Media.Cover)
}

func TestPipelineEmptyCatalogKeepsExistingOutputs(t *testing.T) {
	dir := t.TempDir()

	pipeline := build.New(build.Config{NewestLimit: 6, APIDir: dir}, logging.Nop)
	require.NoError(t, pipeline.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "games.json"))
	assert.True(t, os.IsNotExist(err), "soft no-op must not write outputs")
	_, err = os.Stat(filepath.Join(dir, "new.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestPipelineDiscussionFailureAborts(t *testing.T) {
	dir := t.TempDir()
	writePersisted(t, dir, map[string]any{"id": "g1", "name": "Persisted"})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	pipeline := build.New(build.Config{
		Owner:       "club",
		Repo:        "games",
		Token:       "token",
		NewestLimit: 6,
		APIDir:      dir,
	}, logging.Nop)
	pipeline.GitHub.APIURL = server.URL

	err := pipeline.Run(context.Background())
	require.Error(t, err)

	// Existing outputs stay untouched on failure.
	_, statErr := os.Stat(filepath.Join(dir, "games.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipelineNewestLimitApplied(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 4; i++ {
		writePersisted(t, dir, map[string]any{
			"id":      fmt.Sprintf("g%d", i),
			"name":    fmt.Sprintf("Game %d", i),
			"addedAt": fmt.Sprintf("2024-01-0%d", i),
		})
	}

	pipeline := build.New(build.Config{NewestLimit: 2, APIDir: dir}, logging.Nop)
	require.NoError(t, pipeline.Run(context.Background()))

	newest := readSummaries(t, filepath.Join(dir, "new.json"))
	require.Len(t, newest, 2)
	assert.Equal(t, "g4", newest[0]["id"])
	assert.Equal(t, "g3", newest[1]["id"])
}
