package ghostintegration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowbaker/ghost-connector/internal/managers"
	"github.com/flowbaker/ghost-connector/pkg/domain"
)

const (
	testKeyID     = "5c3e1182e79eace7f58c9c3b"
	testAPISecret = "7202e874ccae6f1ee6688bb700f356b672fb078d8465860852652037f7c7459d"
	testAPIKey    = testKeyID + ":" + testAPISecret
)

func testCredential(serverURL string) GhostCredential {
	return GhostCredential{
		AdminAPIURL: serverURL,
		AdminAPIKey: testAPIKey,
	}
}

func newTestIntegration(t *testing.T, serverURL string) *GhostIntegration {
	t.Helper()

	manager := managers.NewStaticCredentialManager()
	require.NoError(t, manager.SetCredential("cred-1", testCredential(serverURL)))

	integration, err := NewGhostIntegration(context.Background(), GhostIntegrationDependencies{
		CredentialID:     "cred-1",
		ParameterBinder:  managers.NewJSONParameterBinder(),
		CredentialGetter: managers.NewCredentialGetter[GhostCredential](manager),
	})
	require.NoError(t, err)

	return integration
}

func newTestLifecycle(t *testing.T, serverURL string) *GhostTriggerLifecycle {
	t.Helper()

	manager := managers.NewStaticCredentialManager()
	require.NoError(t, manager.SetCredential("cred-1", testCredential(serverURL)))

	return NewGhostTriggerLifecycle(GhostTriggerLifecycleDeps{
		CredentialGetter: managers.NewCredentialGetter[GhostCredential](manager),
	})
}

func inputWithSettings(settings map[string]any) domain.IntegrationInput {
	return domain.IntegrationInput{
		IntegrationParams: domain.IntegrationParams{Settings: settings},
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func siteBody(version string) map[string]any {
	return map[string]any{
		"site": map[string]any{
			"title":   "Test Site",
			"url":     "https://example.com",
			"version": version,
		},
	}
}

func errorBody(errType, message, context, code string) map[string]any {
	return map[string]any{
		"errors": []map[string]any{{
			"message": message,
			"context": context,
			"type":    errType,
			"code":    code,
		}},
	}
}
