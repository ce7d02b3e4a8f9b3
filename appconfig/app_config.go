package appconfig

import (
	"fmt"
	"os"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/go-ini/ini"
)

const (
	DefaultConfigPath = "config.ini"

	defaultBaseURL     = "https://api.groq.com/openai/v1/"
	defaultModel       = "llama3-8b-8192"
	defaultTemperature = 0.3
	defaultMaxTokens   = 1000
	defaultTopP        = 1.0
	defaultHTTPPort    = ":3002"
	defaultGRPCPort    = ":50051"
)

// Environment variables that override values from the ini file.
const (
	EnvGroqAPIKey  = "GROQ_API_KEY"
	EnvGroqBaseURL = "GROQ_BASE_URL"
	EnvGroqModel   = "GROQ_MODEL"
	EnvHTTPPort    = "HTTP_PORT"
	EnvGRPCPort    = "GRPC_PORT"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	GroqAPIKey  string  `ini:"groq_api_key"`
	GroqBaseURL string  `ini:"groq_base_url"`
	Model       string  `ini:"model"`
	Temperature float64 `ini:"temperature"`
	MaxTokens   int64   `ini:"max_tokens"`
	TopP        float64 `ini:"top_p"`

	HTTPPort string `ini:"http_port"`
	GRPCPort string `ini:"grpc_port"`
}

func defaults() *AppConfig {
	return &AppConfig{
		GroqBaseURL: defaultBaseURL,
		Model:       defaultModel,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		TopP:        defaultTopP,
		HTTPPort:    defaultHTTPPort,
		GRPCPort:    defaultGRPCPort,
	}
}

// Load builds the configuration from defaults, the optional ini file at path
// and finally the environment. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := file.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}

	overrideFromEnv(&cfg.GroqAPIKey, EnvGroqAPIKey)
	overrideFromEnv(&cfg.GroqBaseURL, EnvGroqBaseURL)
	overrideFromEnv(&cfg.Model, EnvGroqModel)
	overrideFromEnv(&cfg.HTTPPort, EnvHTTPPort)
	overrideFromEnv(&cfg.GRPCPort, EnvGRPCPort)

	return cfg, nil
}

func (c *AppConfig) HasAPIKey() bool {
	return c.GroqAPIKey != ""
}

func overrideFromEnv(field *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*field = v
	}
}
