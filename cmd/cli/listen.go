package cli

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/flowbaker/ghost-connector/pkg/domain"
)

// NewListenCommand runs a local webhook receiver for trying triggers out
// against a real Ghost site: deliveries to /hooks/:event are run through the
// trigger lifecycle and the resulting records are printed and echoed back.
func NewListenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Run a local webhook receiver for trigger development",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}

			selector, err := buildSelector(config)
			if err != nil {
				return err
			}

			lifecycle, err := selector.SelectTriggerLifecycle(cmd.Context(), domain.SelectIntegrationParams{
				IntegrationType: domain.IntegrationType_Ghost,
			})
			if err != nil {
				return err
			}

			app := fiber.New(fiber.Config{
				AppName: "ghost-connector",
			})

			app.Post("/hooks/:event", func(c *fiber.Ctx) error {
				payload := map[string]any{}
				if err := c.BodyParser(&payload); err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
				}

				eventType := domain.IntegrationTriggerEventType(c.Params("event"))

				items, err := lifecycle.HandleTriggerEvent(c.Context(), domain.TriggerEventParams{
					EventType: eventType,
					Payload:   payload,
					RawQuery:  string(c.Request().URI().QueryString()),
				})
				if err != nil {
					log.Error().Err(err).Str("event", string(eventType)).Msg("failed to handle webhook delivery")

					return fiber.NewError(fiber.StatusBadRequest, err.Error())
				}

				log.Info().
					Str("event", string(eventType)).
					Int("items", len(items)).
					Msg("handled webhook delivery")

				return c.JSON(items)
			})

			app.Get("/items/:event", func(c *fiber.Ctx) error {
				eventType := domain.IntegrationTriggerEventType(c.Params("event"))

				items, err := lifecycle.ListTriggerItems(c.Context(), domain.ListTriggerItemsParams{
					EventType:         eventType,
					CredentialID:      cliCredentialID,
					IsFillingDropdown: c.QueryBool("dropdown"),
				})
				if err != nil {
					log.Error().Err(err).Str("event", string(eventType)).Msg("failed to list trigger items")

					return fiber.NewError(fiber.StatusBadGateway, err.Error())
				}

				return c.JSON(items)
			})

			log.Info().Str("address", config.ListenAddress).Msg("webhook receiver listening")

			return app.Listen(config.ListenAddress)
		},
	}
}
