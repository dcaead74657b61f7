package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// AI providers
	Gemini   GeminiConfig
	DeepSeek DeepSeekConfig
	AI       AIConfig

	// Google sync
	Google GoogleConfig

	Store      StoreConfig
	Scheduling SchedulingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type DeepSeekConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// AIConfig tunes the provider registry shared by all AI capabilities.
type AIConfig struct {
	RequestsPerMinute int
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenFile    string
}

type StoreConfig struct {
	Path string
}

type SchedulingConfig struct {
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/taskhub/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/taskhub/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	cfg.DeepSeek.APIKey = viper.GetString("deepseek.api_key")
	cfg.DeepSeek.Model = viper.GetString("deepseek.model")
	cfg.DeepSeek.BaseURL = viper.GetString("deepseek.base_url")
	if key := viper.GetString("deepseek_api_key"); key != "" {
		cfg.DeepSeek.APIKey = key
	}

	cfg.AI.RequestsPerMinute = viper.GetInt("ai.requests_per_minute")

	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	cfg.Google.TokenFile = viper.GetString("google.token_file")

	cfg.Store.Path = viper.GetString("store.path")
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "127.0.0.1")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("deepseek.model", "deepseek-chat")
	viper.SetDefault("ai.requests_per_minute", 60)

	viper.SetDefault("google.redirect_url", "http://localhost:8080/api/v1/auth/callback")
	viper.SetDefault("google.token_file", "data/token.json")

	viper.SetDefault("store.path", "data/tasks.json")
	viper.SetDefault("scheduling.timezone", "UTC")
}
