package ghostintegration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMember(t *testing.T) {
	t.Run("returns matches", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/ghost/api/v2/admin/site/":
				writeJSON(t, w, http.StatusOK, siteBody("5.0.0"))
			case "/ghost/api/v3/admin/members/":
				require.Equal(t, "email:'found@example.com'", r.URL.Query().Get("filter"))

				writeJSON(t, w, http.StatusOK, map[string]any{
					"members": []map[string]any{{"id": "member-1", "email": "found@example.com"}},
				})
			default:
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		}))
		defer server.Close()

		integration := newTestIntegration(t, server.URL)

		results, err := integration.FindMember(context.Background(), inputWithSettings(map[string]any{
			"email": "found@example.com",
		}), nil)
		require.NoError(t, err)

		require.Len(t, results, 1)
		record, ok := results[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "member-1", record["id"])
	})

	t.Run("not found becomes an empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/ghost/api/v2/admin/site/":
				writeJSON(t, w, http.StatusOK, siteBody("5.0.0"))
			default:
				writeJSON(t, w, http.StatusNotFound,
					errorBody("NotFoundError", "Resource not found error, cannot read member.", "", ""))
			}
		}))
		defer server.Close()

		integration := newTestIntegration(t, server.URL)

		results, err := integration.FindMember(context.Background(), inputWithSettings(map[string]any{
			"email": "missing@example.com",
		}), nil)
		require.NoError(t, err)

		assert.Empty(t, results)
	})

	t.Run("unsupported version is not swallowed", func(t *testing.T) {
		server := newSiteServer(t, "2.38")
		defer server.Close()

		integration := newTestIntegration(t, server.URL)

		_, err := integration.FindMember(context.Background(), inputWithSettings(map[string]any{
			"email": "found@example.com",
		}), nil)

		var halted *HaltedError
		require.ErrorAs(t, err, &halted)
		assert.False(t, halted.NotFound)
		assert.Contains(t, halted.Message, "member search")
	})
}

func TestFindAuthor(t *testing.T) {
	t.Run("search by email", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/ghost/api/v3/admin/users/email/ghost@example.com/", r.URL.Path)

			writeJSON(t, w, http.StatusOK, map[string]any{
				"users": []map[string]any{{"id": "user-1", "slug": "ghost"}},
			})
		}))
		defer server.Close()

		integration := newTestIntegration(t, server.URL)

		results, err := integration.FindAuthor(context.Background(), inputWithSettings(map[string]any{
			"search_by": "email",
			"email":     "ghost@example.com",
		}), nil)
		require.NoError(t, err)

		require.Len(t, results, 1)
	})

	t.Run("search by slug", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/ghost/api/v3/admin/users/slug/ghost/", r.URL.Path)

			writeJSON(t, w, http.StatusOK, map[string]any{
				"users": []map[string]any{{"id": "user-1", "slug": "ghost"}},
			})
		}))
		defer server.Close()

		integration := newTestIntegration(t, server.URL)

		results, err := integration.FindAuthor(context.Background(), inputWithSettings(map[string]any{
			"search_by": "slug",
			"slug":      "ghost",
		}), nil)
		require.NoError(t, err)

		require.Len(t, results, 1)
	})

	t.Run("not found becomes an empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusNotFound,
				errorBody("NotFoundError", "Resource not found error, cannot read user.", "", ""))
		}))
		defer server.Close()

		integration := newTestIntegration(t, server.URL)

		results, err := integration.FindAuthor(context.Background(), inputWithSettings(map[string]any{
			"search_by": "slug",
			"slug":      "nobody",
		}), nil)
		require.NoError(t, err)

		assert.Empty(t, results)
	})
}

func TestFindSubscriber(t *testing.T) {
	t.Run("reads by email on legacy sites", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/ghost/api/v2/admin/site/":
				writeJSON(t, w, http.StatusOK, siteBody("2.38"))
			case "/ghost/api/v2/admin/subscribers/email/sub@example.com/":
				writeJSON(t, w, http.StatusOK, map[string]any{
					"subscribers": []map[string]any{{"id": "sub-1", "email": "sub@example.com"}},
				})
			default:
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		}))
		defer server.Close()

		integration := newTestIntegration(t, server.URL)

		results, err := integration.FindSubscriber(context.Background(), inputWithSettings(map[string]any{
			"email": "sub@example.com",
		}), nil)
		require.NoError(t, err)

		require.Len(t, results, 1)
	})

	t.Run("halts on sites without subscribers", func(t *testing.T) {
		server := newSiteServer(t, "3.0")
		defer server.Close()

		integration := newTestIntegration(t, server.URL)

		_, err := integration.FindSubscriber(context.Background(), inputWithSettings(map[string]any{
			"email": "sub@example.com",
		}), nil)

		var halted *HaltedError
		require.ErrorAs(t, err, &halted)
		assert.Equal(t,
			"The version of Ghost your site is using does not support subscribers. Supported version range is <3.0.0, you are using 3.0.",
			halted.Message)
	})
}
