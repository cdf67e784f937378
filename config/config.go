package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream providers
	OpenWeather OpenWeatherConfig
	LLM         LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port      int
	Mode      string
	StaticDir string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenWeatherConfig holds configuration for the OpenWeather client.
type OpenWeatherConfig struct {
	APIKey  string
	BaseURL string
	Units   string
	Timeout time.Duration
}

// LLMConfig holds configuration for the active LLM provider.
type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.StaticDir = viper.GetString("http_server.static_dir")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenWeather
	cfg.OpenWeather.APIKey = expandEnvVar(viper.GetString("openweather.api_key"))
	cfg.OpenWeather.BaseURL = viper.GetString("openweather.base_url")
	cfg.OpenWeather.Units = viper.GetString("openweather.units")
	cfg.OpenWeather.Timeout = viper.GetDuration("openweather.timeout")
	if key := viper.GetString("openweather_api_key"); key != "" {
		cfg.OpenWeather.APIKey = key
	}

	// LLM provider
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.APIKey = expandEnvVar(viper.GetString("llm.api_key"))
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	if key := viper.GetString("llm_api_key"); key != "" {
		cfg.LLM.APIKey = key
	}
	if cfg.LLM.Provider == "gemini" && cfg.LLM.APIKey == "" {
		if key := viper.GetString("gemini_api_key"); key != "" {
			cfg.LLM.APIKey = key
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations that would only fail at request time.
func (cfg *Config) validate() error {
	if cfg.OpenWeather.APIKey == "" {
		return fmt.Errorf("openweather api key is required - set openweather.api_key or OPENWEATHER_API_KEY")
	}
	if cfg.LLM.Provider == "" {
		return fmt.Errorf("llm provider is required - set llm.provider to gemini, deepseek or qwen")
	}
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm api key is required - set llm.api_key or LLM_API_KEY")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.static_dir", "./web/static")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openweather.units", "metric")
	viper.SetDefault("openweather.timeout", "10s")

	viper.SetDefault("llm.provider", "gemini")
	viper.SetDefault("llm.timeout", "30s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
