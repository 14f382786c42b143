package domain

import "context"

type CredentialType string

var (
	CredentialTypeDefault CredentialType = "default"
)

// Credential is the platform-stored record for one connected account. The
// connector only ever sees the decrypted payload; encryption and storage are
// the platform's concern.
type Credential struct {
	ID              string
	Name            string
	WorkspaceID     string
	Type            CredentialType
	IntegrationType IntegrationType

	DecryptedPayload map[string]any
}

// CredentialManager resolves a credential id to its decrypted payload bytes.
type CredentialManager interface {
	GetDecryptedCredential(ctx context.Context, credentialID string) ([]byte, error)
}

// CredentialGetter decodes a decrypted credential payload into a connector's
// typed credential struct.
type CredentialGetter[T any] interface {
	GetDecryptedCredential(ctx context.Context, credentialID string) (T, error)
}
