package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

func NewTestConnectionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test-connection",
		Short: "Verify the configured Ghost credential against the live site",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}

			selector, err := buildSelector(config)
			if err != nil {
				return err
			}

			tester, err := selector.SelectConnectionTester(cmd.Context(), domain.SelectIntegrationParams{
				IntegrationType: domain.IntegrationType_Ghost,
			})
			if err != nil {
				return err
			}

			ok, err := tester.TestConnection(cmd.Context(), domain.TestConnectionParams{
				Credential: domain.Credential{
					ID:              cliCredentialID,
					Type:            domain.CredentialTypeDefault,
					IntegrationType: domain.IntegrationType_Ghost,
				},
			})
			if err != nil {
				return err
			}

			if ok {
				log.Info().Str("admin_api_url", config.AdminAPIURL).Msg("connection ok")
			}

			return nil
		},
	}
}
