package managers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

// CredentialGetter retrieves a decrypted credential payload and decodes it
// into the connector's typed credential struct.
type CredentialGetter[T any] struct {
	manager domain.CredentialManager
}

func NewCredentialGetter[T any](manager domain.CredentialManager) *CredentialGetter[T] {
	return &CredentialGetter[T]{
		manager: manager,
	}
}

func (g *CredentialGetter[T]) GetDecryptedCredential(ctx context.Context, credentialID string) (T, error) {
	var zero T

	decryptedBytes, err := g.manager.GetDecryptedCredential(ctx, credentialID)
	if err != nil {
		return zero, fmt.Errorf("failed to get decrypted credential: %w", err)
	}

	var result T
	if err := json.Unmarshal(decryptedBytes, &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal credential: %w", err)
	}

	return result, nil
}

// StaticCredentialManager serves credential payloads from memory. The hosted
// platform injects its own encrypted store; this one backs the CLI and tests.
type StaticCredentialManager struct {
	mtx      sync.RWMutex
	payloads map[string][]byte
}

func NewStaticCredentialManager() *StaticCredentialManager {
	return &StaticCredentialManager{
		payloads: make(map[string][]byte),
	}
}

func (m *StaticCredentialManager) SetCredential(credentialID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal credential payload: %w", err)
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.payloads[credentialID] = data

	return nil
}

func (m *StaticCredentialManager) GetDecryptedCredential(ctx context.Context, credentialID string) ([]byte, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	payload, ok := m.payloads[credentialID]
	if !ok {
		return nil, fmt.Errorf("credential %s not found", credentialID)
	}

	return payload, nil
}
