package cli

import (
	"encoding/json"
	"fmt"

	ghostintegration "github.com/flowbaker/ghost-connector/pkg/integrations/ghost"
	"github.com/spf13/cobra"
)

func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the connector schema as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaJSON, err := json.MarshalIndent(ghostintegration.GhostSchema, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(schemaJSON))

			return nil
		},
	}
}
