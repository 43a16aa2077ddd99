package discussions_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/game-club/library/internal/sources/discussions"
)

func TestSubmissionsFiltersByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var request struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Contains(t, request.Query, "discussions(first: 50")
		assert.Equal(t, "club", request.Variables["owner"])
		assert.Equal(t, "games", request.Variables["repo"])

		fmt.Fprint(w, `{"data": {"repository": {"discussions": {"nodes": [
			{"title": "Celeste", "body": "b1", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-02T00:00:00Z", "category": {"name": "Game"}},
			{"title": "Offtopic", "body": "b2", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z", "category": {"name": "General"}},
			{"title": "Hades", "body": "b3", "createdAt": "2024-02-01T00:00:00Z", "updatedAt": "2024-02-01T00:00:00Z", "category": {"name": "Game"}}
		]}}}}`)
	}))
	defer server.Close()

	client := discussions.New("club", "games", "test-token")
	client.APIURL = server.URL

	submissions, err := client.Submissions(context.Background())
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, "Celeste", submissions[0].Title)
	assert.Equal(t, "Hades", submissions[1].Title)
}

func TestSubmissionsGraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data": null, "errors": [{"message": "bad credentials"}]}`)
	}))
	defer server.Close()

	client := discussions.New("club", "games", "bad-token")
	client.APIURL = server.URL

	_, err := client.Submissions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad credentials")
}

func TestSubmissionsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := discussions.New("club", "games", "token")
	client.APIURL = server.URL

	_, err := client.Submissions(context.Background())
	assert.Error(t, err)
}
