package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
// The IBM_* names are the secrets the dashboard has always used.
var envBindings = map[string]string{
	"server.port":                   "PORT",
	"server.allowed_origin":         "ALLOWED_ORIGIN",
	"assistant.provider":            "ASSISTANT_PROVIDER",
	"assistant.timeout":             "ASSISTANT_TIMEOUT",
	"assistant.watson.api_key":      "IBM_API_KEY",
	"assistant.watson.assistant_id": "IBM_ASSISTANT_ID",
	"assistant.watson.url":          "IBM_URL",
	"assistant.watson.version":      "IBM_VERSION",
	"assistant.openai.api_key":      "OPENAI_API_KEY",
	"assistant.openai.model":        "OPENAI_MODEL",
	"assistant.openai.base_url":     "OPENAI_BASE_URL",
	"mediator.reject_empty_text":    "REJECT_EMPTY_TEXT",
	"mediator.analytics_window":     "ANALYTICS_WINDOW",
	"logging.level":                 "LOG_LEVEL",
	"logging.format":                "LOG_FORMAT",
}

// Load reads .env (if present), an optional config.yaml and the environment,
// in increasing order of precedence, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Assistant.Provider = strings.ToLower(strings.TrimSpace(cfg.Assistant.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8085")
	v.SetDefault("server.allowed_origin", "*")
	v.SetDefault("assistant.provider", ProviderWatson)
	v.SetDefault("assistant.timeout", "0s")
	v.SetDefault("assistant.watson.version", "2023-08-01")
	v.SetDefault("assistant.openai.model", "gpt-4o-mini")
	v.SetDefault("mediator.reject_empty_text", false)
	v.SetDefault("mediator.analytics_window", 5)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
