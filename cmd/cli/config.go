package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the CLI's connection settings.
type Config struct {
	AdminAPIURL   string
	AdminAPIKey   string
	ListenAddress string
}

// LoadConfig loads configuration from a config file and environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("ListenAddress", ":8486")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"AdminAPIURL":   "GHOST_ADMIN_API_URL",
		"AdminAPIKey":   "GHOST_ADMIN_API_KEY",
		"ListenAddress": "GHOST_LISTEN_ADDRESS",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("ghost_connector")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.ghost-connector")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.AdminAPIURL == "" || config.AdminAPIKey == "" {
		return nil, fmt.Errorf("GHOST_ADMIN_API_URL and GHOST_ADMIN_API_KEY must be set")
	}

	return &config, nil
}
