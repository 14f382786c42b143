package ghostintegration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/flowbaker/ghost-connector/internal/managers"
	"github.com/flowbaker/ghost-connector/pkg/domain"
)

// supportedVersionRange is the connector's baseline: the admin key auth the
// client relies on shipped with Ghost 2.19.
const supportedVersionRange = ">=2.19"

type GhostConnectionTester struct {
	credentialGetter domain.CredentialGetter[GhostCredential]
	httpClient       *http.Client
}

func NewGhostConnectionTester(deps domain.IntegrationDeps) domain.IntegrationConnectionTester {
	return &GhostConnectionTester{
		credentialGetter: managers.NewCredentialGetter[GhostCredential](deps.CredentialManager),
		httpClient:       http.DefaultClient,
	}
}

// TestConnection verifies the credential against the live site. Reading the
// site info checks the URL and version; a follow-up config read forces an
// authenticated endpoint, because some Ghost versions do not reject an
// invalid key on endpoints that happen not to require auth.
func (c *GhostConnectionTester) TestConnection(ctx context.Context, params domain.TestConnectionParams) (bool, error) {
	credential, err := c.credentialGetter.GetDecryptedCredential(ctx, params.Credential.ID)
	if err != nil {
		return false, fmt.Errorf("failed to get decrypted Ghost credential: %w", err)
	}

	client, err := NewAdminClient(credential, APIVersionV2, WithHTTPClient(c.httpClient))
	if err != nil {
		return false, err
	}

	site, err := client.ReadSite(ctx)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
			return false, c.probeLegacySite(ctx, credential)
		}

		return false, err
	}

	version, err := coerceVersion(site.Version)
	if err != nil {
		return false, fmt.Errorf("failed to parse reported Ghost version %q: %w", site.Version, err)
	}

	constraint := semver.MustParse("2.19.0")
	if version.LessThan(constraint) {
		return false, fmt.Errorf("Supported Ghost version range is %s, you are using %s", supportedVersionRange, site.Version)
	}

	if _, err := client.ReadConfig(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// probeLegacySite distinguishes "old Ghost" from "not Ghost at all" after a
// 404 on the v2 site endpoint, by trying a v0.1 path that predates the
// current API namespaces.
func (c *GhostConnectionTester) probeLegacySite(ctx context.Context, credential GhostCredential) error {
	legacyURL := strings.TrimSuffix(credential.AdminAPIURL, "/") + "/ghost/api/v0.1/configuration/about/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, legacyURL, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("Supported Ghost version range is %s, you are using an earlier version", supportedVersionRange)
	}

	return errors.New("Supplied 'Admin API URL' does not appear to be valid or does not point to a Ghost site")
}
