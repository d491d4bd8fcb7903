package config

import (
	"fmt"
	"time"
)

// Provider names accepted in assistant.provider.
const (
	ProviderWatson = "watson"
	ProviderOpenAI = "openai"
	ProviderStub   = "stub"
)

// Config is the whole service configuration. It is built once at startup and
// passed to constructors; nothing mutates it afterwards.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Mediator  MediatorConfig  `mapstructure:"mediator"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Port          string `mapstructure:"port"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

// AssistantConfig selects and configures the external assistant backend.
type AssistantConfig struct {
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"` // 0 means no local timeout
	Watson   WatsonConfig  `mapstructure:"watson"`
	OpenAI   OpenAIConfig  `mapstructure:"openai"`
}

type WatsonConfig struct {
	APIKey      string `mapstructure:"api_key"`
	AssistantID string `mapstructure:"assistant_id"`
	URL         string `mapstructure:"url"`
	Version     string `mapstructure:"version"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type MediatorConfig struct {
	// RejectEmptyText installs the RequireText validation hook.
	RejectEmptyText bool `mapstructure:"reject_empty_text"`
	AnalyticsWindow int  `mapstructure:"analytics_window"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate reports the first missing or invalid setting.
func (c *Config) Validate() error {
	switch c.Assistant.Provider {
	case ProviderWatson:
		w := c.Assistant.Watson
		if w.APIKey == "" {
			return fmt.Errorf("IBM_API_KEY is not set")
		}
		if w.AssistantID == "" {
			return fmt.Errorf("IBM_ASSISTANT_ID is not set")
		}
		if w.URL == "" {
			return fmt.Errorf("IBM_URL is not set")
		}
	case ProviderOpenAI:
		if c.Assistant.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set")
		}
	case ProviderStub:
	default:
		return fmt.Errorf("unknown assistant provider %q", c.Assistant.Provider)
	}

	if c.Assistant.Timeout < 0 {
		return fmt.Errorf("assistant timeout must not be negative")
	}
	if c.Mediator.AnalyticsWindow < 0 {
		return fmt.Errorf("analytics window must not be negative")
	}
	return nil
}
