package ghostintegration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPostRequest(t *testing.T) {
	tests := []struct {
		name       string
		params     CreatePostParams
		wantBody   map[string]any
		wantSource string
	}{
		{
			name: "html content rides in the body with a source flag",
			params: CreatePostParams{
				Title:         "Hello",
				Status:        "draft",
				ContentFormat: "html",
				Content:       "<p>Hi</p>",
				Tags:          []string{"news"},
				Authors:       []string{"ghost"},
			},
			wantBody: map[string]any{
				"title":   "Hello",
				"status":  "draft",
				"html":    "<p>Hi</p>",
				"tags":    []map[string]any{{"slug": "news"}},
				"authors": []map[string]any{{"slug": "ghost"}},
			},
			wantSource: "html",
		},
		{
			name: "mobiledoc content is stored as-is",
			params: CreatePostParams{
				Title:         "Hello",
				Status:        "published",
				ContentFormat: "mobiledoc",
				Content:       `{"version":"0.3.1"}`,
			},
			wantBody: map[string]any{
				"title":     "Hello",
				"status":    "published",
				"mobiledoc": `{"version":"0.3.1"}`,
				"tags":      []map[string]any{},
				"authors":   []map[string]any{},
			},
		},
		{
			name: "optional metadata is only set when present",
			params: CreatePostParams{
				Title:         "Hello",
				Status:        "scheduled",
				PublishedAt:   "2026-09-01T10:00:00.000Z",
				ContentFormat: "mobiledoc",
				CustomExcerpt: "A short summary",
				MetaTitle:     "Hello SEO",
			},
			wantBody: map[string]any{
				"title":          "Hello",
				"status":         "scheduled",
				"published_at":   "2026-09-01T10:00:00.000Z",
				"mobiledoc":      "",
				"custom_excerpt": "A short summary",
				"meta_title":     "Hello SEO",
				"tags":           []map[string]any{},
				"authors":        []map[string]any{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, query := buildPostRequest(tt.params)

			assert.Equal(t, tt.wantBody, body)
			assert.Equal(t, tt.wantSource, query.Get("source"))
		})
	}
}

func TestCreatePost(t *testing.T) {
	var capturedBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/ghost/api/v3/admin/posts/", r.URL.Path)
		require.Equal(t, "html", r.URL.Query().Get("source"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &capturedBody))

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"posts": []map[string]any{{"id": "post-1", "slug": "hello", "status": "draft"}},
		})
	}))
	defer server.Close()

	integration := newTestIntegration(t, server.URL)

	result, err := integration.CreatePost(context.Background(), inputWithSettings(map[string]any{
		"title":          "Hello",
		"status":         "draft",
		"content_format": "html",
		"content":        "<p>Hi</p>",
		"authors":        []any{"ghost"},
	}), nil)
	require.NoError(t, err)

	record, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "post-1", record["id"])

	posts, ok := capturedBody["posts"].([]any)
	require.True(t, ok)
	require.Len(t, posts, 1)

	post, ok := posts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "<p>Hi</p>", post["html"])
	assert.NotContains(t, post, "mobiledoc")
	assert.NotContains(t, post, "content_format")
	assert.Equal(t, []any{map[string]any{"slug": "ghost"}}, post["authors"])
}
