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

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

func TestSubscribeTrigger(t *testing.T) {
	t.Run("registers the webhook with the key id as integration id", func(t *testing.T) {
		siteCalls := 0
		var capturedBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/ghost/api/v2/admin/site/":
				siteCalls++
				writeJSON(t, w, http.StatusOK, siteBody("5.0.0"))
			case "/ghost/api/v2/admin/webhooks/":
				require.Equal(t, http.MethodPost, r.Method)

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(body, &capturedBody))

				writeJSON(t, w, http.StatusCreated, map[string]any{
					"webhooks": []map[string]any{{"id": "hook-1", "event": "member.added"}},
				})
			default:
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		subscription, err := lifecycle.SubscribeTrigger(context.Background(), domain.SubscribeTriggerParams{
			EventType:    IntegrationTrigger_MemberCreated,
			TargetURL:    "https://hooks.example.com/abc",
			CredentialID: "cred-1",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, siteCalls)
		assert.Equal(t, "hook-1", subscription.ID)
		assert.Equal(t, "member.added", subscription.Event)
		assert.Equal(t, "https://hooks.example.com/abc", subscription.TargetURL)

		webhooks, ok := capturedBody["webhooks"].([]any)
		require.True(t, ok)
		require.Len(t, webhooks, 1)

		webhook, ok := webhooks[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, testKeyID, webhook["integration_id"])
		assert.Equal(t, "https://hooks.example.com/abc", webhook["target_url"])
		assert.Equal(t, "member.added", webhook["event"])
	})

	t.Run("skips the version gate for ungated events", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/ghost/api/v2/admin/webhooks/", r.URL.Path)

			writeJSON(t, w, http.StatusCreated, map[string]any{
				"webhooks": []map[string]any{{"id": "hook-2"}},
			})
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		subscription, err := lifecycle.SubscribeTrigger(context.Background(), domain.SubscribeTriggerParams{
			EventType:    IntegrationTrigger_PostPublished,
			TargetURL:    "https://hooks.example.com/abc",
			CredentialID: "cred-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "hook-2", subscription.ID)
	})

	t.Run("halts when the site is too old for the event", func(t *testing.T) {
		server := newSiteServer(t, "3.0.2")
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		_, err := lifecycle.SubscribeTrigger(context.Background(), domain.SubscribeTriggerParams{
			EventType:    IntegrationTrigger_MemberUpdated,
			TargetURL:    "https://hooks.example.com/abc",
			CredentialID: "cred-1",
		})

		var halted *HaltedError
		require.ErrorAs(t, err, &halted)
		assert.Equal(t,
			"The version of Ghost your site is using does not support members. Supported version range is >=3.0.3, you are using 3.0.2.",
			halted.Message)
	})

	t.Run("unknown event type", func(t *testing.T) {
		lifecycle := newTestLifecycle(t, "https://example.com")

		_, err := lifecycle.SubscribeTrigger(context.Background(), domain.SubscribeTriggerParams{
			EventType:    "ghost_unknown",
			CredentialID: "cred-1",
		})
		require.Error(t, err)
	})
}

func TestUnsubscribeTrigger(t *testing.T) {
	t.Run("deletes the webhook by id", func(t *testing.T) {
		deleted := false

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/ghost/api/v2/admin/webhooks/hook-1/", r.URL.Path)

			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		err := lifecycle.UnsubscribeTrigger(context.Background(), domain.UnsubscribeTriggerParams{
			EventType:    IntegrationTrigger_PostPublished,
			Subscription: domain.TriggerSubscription{ID: "hook-1"},
			CredentialID: "cred-1",
		})
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("already removed webhook is a no-op", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusNotFound,
				errorBody("NotFoundError", "Resource not found error, cannot delete webhook.", "", ""))
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		err := lifecycle.UnsubscribeTrigger(context.Background(), domain.UnsubscribeTriggerParams{
			EventType:    IntegrationTrigger_PostPublished,
			Subscription: domain.TriggerSubscription{ID: "hook-gone"},
			CredentialID: "cred-1",
		})
		require.NoError(t, err)
	})

	t.Run("other failures propagate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		err := lifecycle.UnsubscribeTrigger(context.Background(), domain.UnsubscribeTriggerParams{
			EventType:    IntegrationTrigger_PostPublished,
			Subscription: domain.TriggerSubscription{ID: "hook-1"},
			CredentialID: "cred-1",
		})

		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
	})
}

func TestHandleTriggerEvent(t *testing.T) {
	lifecycle := newTestLifecycle(t, "https://example.com")

	current := map[string]any{"id": "member-1", "name": "New Name"}
	previous := map[string]any{"name": "Old Name"}
	envelope := map[string]any{"current": current, "previous": previous}

	tests := []struct {
		name      string
		eventType domain.IntegrationTriggerEventType
		payload   map[string]any
		want      domain.Item
		wantErr   bool
	}{
		{
			name:      "creation events emit the current side",
			eventType: IntegrationTrigger_MemberCreated,
			payload:   map[string]any{"member": envelope},
			want:      current,
		},
		{
			name:      "deletion events emit the previous side",
			eventType: IntegrationTrigger_MemberDeleted,
			payload:   map[string]any{"member": envelope},
			want:      previous,
		},
		{
			name:      "update events emit the whole envelope",
			eventType: IntegrationTrigger_MemberUpdated,
			payload:   map[string]any{"member": envelope},
			want:      envelope,
		},
		{
			name:      "post deliveries arrive under the post key",
			eventType: IntegrationTrigger_PostPublished,
			payload:   map[string]any{"post": envelope},
			want:      current,
		},
		{
			name:      "missing envelope is an error",
			eventType: IntegrationTrigger_MemberCreated,
			payload:   map[string]any{"post": envelope},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := lifecycle.HandleTriggerEvent(context.Background(), domain.TriggerEventParams{
				EventType: tt.eventType,
				Payload:   tt.payload,
			})

			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0])
		})
	}
}

func TestListTriggerItems(t *testing.T) {
	t.Run("poll fetches the latest record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/ghost/api/v2/admin/subscribers/", r.URL.Path)
			require.Equal(t, "created_at DESC", r.URL.Query().Get("order"))
			require.Equal(t, "1", r.URL.Query().Get("limit"))

			writeJSON(t, w, http.StatusOK, map[string]any{
				"subscribers": []map[string]any{{"id": "sub-1"}},
			})
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		items, err := lifecycle.ListTriggerItems(context.Background(), domain.ListTriggerItemsParams{
			EventType:    IntegrationTrigger_SubscriberCreated,
			CredentialID: "cred-1",
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("dropdown fetches the whole collection by name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/ghost/api/v2/admin/tags/", r.URL.Path)
			require.Equal(t, "name DESC", r.URL.Query().Get("order"))
			require.Equal(t, "all", r.URL.Query().Get("limit"))

			writeJSON(t, w, http.StatusOK, map[string]any{
				"tags": []map[string]any{{"slug": "news"}, {"slug": "tech"}},
			})
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		items, err := lifecycle.ListTriggerItems(context.Background(), domain.ListTriggerItemsParams{
			EventType:         IntegrationTrigger_TagCreated,
			CredentialID:      "cred-1",
			IsFillingDropdown: true,
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
	})

	t.Run("published triggers filter to published records", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/ghost/api/v2/admin/pages/", r.URL.Path)
			require.Equal(t, "mobiledoc,html,plaintext", r.URL.Query().Get("formats"))
			require.Equal(t, "status:published", r.URL.Query().Get("filter"))
			require.Equal(t, "published_at DESC", r.URL.Query().Get("order"))
			require.Equal(t, "1", r.URL.Query().Get("limit"))

			writeJSON(t, w, http.StatusOK, map[string]any{
				"pages": []map[string]any{{"id": "page-1"}},
			})
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		items, err := lifecycle.ListTriggerItems(context.Background(), domain.ListTriggerItemsParams{
			EventType:    IntegrationTrigger_PagePublished,
			CredentialID: "cred-1",
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("member updates preview a versioned sample", func(t *testing.T) {
		server := newSiteServer(t, "3.7.0")
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		items, err := lifecycle.ListTriggerItems(context.Background(), domain.ListTriggerItemsParams{
			EventType:    IntegrationTrigger_MemberUpdated,
			CredentialID: "cred-1",
		})
		require.NoError(t, err)
		require.Len(t, items, 1)

		sample, ok := items[0].(map[string]any)
		require.True(t, ok)

		current, ok := sample["current"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, current, "labels")
		assert.Contains(t, current, "comped")
		assert.NotContains(t, current, "avatar_image")
	})

	t.Run("empty collection degrades to an empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/ghost/api/v2/admin/site/":
				writeJSON(t, w, http.StatusOK, siteBody("5.0.0"))
			case "/ghost/api/v3/admin/members/":
				writeJSON(t, w, http.StatusOK, map[string]any{
					"members": []map[string]any{},
				})
			default:
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
		}))
		defer server.Close()

		lifecycle := newTestLifecycle(t, server.URL)

		items, err := lifecycle.ListTriggerItems(context.Background(), domain.ListTriggerItemsParams{
			EventType:    IntegrationTrigger_MemberCreated,
			CredentialID: "cred-1",
		})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
