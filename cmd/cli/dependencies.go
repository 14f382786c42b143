package cli

import (
	"github.com/flowbaker/ghost-connector/internal/managers"
	"github.com/flowbaker/ghost-connector/pkg/domain"
	ghostintegration "github.com/flowbaker/ghost-connector/pkg/integrations/ghost"
)

const cliCredentialID = "cli-credential"

// buildSelector wires the connector around the CLI's static credential and
// registers it on an integration selector, mirroring how the hosted platform
// dispatches to connectors at runtime.
func buildSelector(config *Config) (domain.IntegrationSelector, error) {
	credentialManager := managers.NewStaticCredentialManager()

	err := credentialManager.SetCredential(cliCredentialID, ghostintegration.GhostCredential{
		AdminAPIURL: config.AdminAPIURL,
		AdminAPIKey: config.AdminAPIKey,
	})
	if err != nil {
		return nil, err
	}

	deps := domain.IntegrationDeps{
		ParameterBinder:   managers.NewJSONParameterBinder(),
		CredentialManager: credentialManager,
	}

	selector := domain.NewIntegrationSelector()
	selector.RegisterCreator(domain.IntegrationType_Ghost, ghostintegration.NewGhostIntegrationCreator(deps))
	selector.RegisterConnectionTester(domain.IntegrationType_Ghost, ghostintegration.NewGhostConnectionTester(deps))
	selector.RegisterTriggerLifecycle(domain.IntegrationType_Ghost, ghostintegration.NewGhostTriggerLifecycle(ghostintegration.GhostTriggerLifecycleDeps{
		CredentialGetter: managers.NewCredentialGetter[ghostintegration.GhostCredential](credentialManager),
	}))

	return selector, nil
}
