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
	Auth       AuthConfig
	RateLimit  RateLimitConfig

	// Storage
	Mongo MongoConfig

	// External services
	Currency       CurrencyConfig
	Weather        WeatherConfig
	Amadeus        AmadeusConfig
	GoogleCalendar GoogleCalendarConfig

	// Chat
	Chat     ChatConfig
	Telegram TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AuthConfig configures principal extraction. An empty JWTSecret outside production
// lets requests identify themselves with the X-User-ID header.
type AuthConfig struct {
	JWTSecret string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type MongoConfig struct {
	URI      string
	Database string
}

type CurrencyConfig struct {
	BaseURL   string
	AccessKey string
	CacheTTL  time.Duration
	Timeout   time.Duration
}

type WeatherConfig struct {
	BaseURL string
	APIKey  string
	Units   string
	Timeout time.Duration
}

type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type ChatConfig struct {
	SessionTTL      time.Duration
	MaxSessions     int
	HistoryWindow   int
	SystemPrompt    string
	DisplayCurrency string
}

// TelegramConfig enables the Telegram chat channel when BotToken is set.
type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	BaseURL       string
	Timeout       time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = splitList(viper.GetString("http_server.allowed_origins"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Auth.JWTSecret = expandEnvVar(viper.GetString("auth.jwt_secret"))
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Mongo.URI = expandEnvVar(viper.GetString("mongo.uri"))
	if mongoURI := viper.GetString("mongo_uri"); mongoURI != "" {
		cfg.Mongo.URI = mongoURI
	}
	cfg.Mongo.Database = viper.GetString("mongo.database")

	// External services
	cfg.Currency.BaseURL = viper.GetString("currency.base_url")
	cfg.Currency.AccessKey = expandEnvVar(viper.GetString("currency.access_key"))
	if key := viper.GetString("exchange_rate_api_key"); key != "" {
		cfg.Currency.AccessKey = key
	}
	cfg.Currency.CacheTTL = viper.GetDuration("currency.cache_ttl")
	cfg.Currency.Timeout = viper.GetDuration("currency.timeout")

	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	cfg.Weather.APIKey = expandEnvVar(viper.GetString("weather.api_key"))
	if key := viper.GetString("openweather_api_key"); key != "" {
		cfg.Weather.APIKey = key
	}
	cfg.Weather.Units = viper.GetString("weather.units")
	cfg.Weather.Timeout = viper.GetDuration("weather.timeout")

	cfg.Amadeus.BaseURL = viper.GetString("amadeus.base_url")
	cfg.Amadeus.ClientID = expandEnvVar(viper.GetString("amadeus.client_id"))
	cfg.Amadeus.ClientSecret = expandEnvVar(viper.GetString("amadeus.client_secret"))
	if id := viper.GetString("amadeus_client_id"); id != "" {
		cfg.Amadeus.ClientID = id
	}
	if secret := viper.GetString("amadeus_client_secret"); secret != "" {
		cfg.Amadeus.ClientSecret = secret
	}
	cfg.Amadeus.Timeout = viper.GetDuration("amadeus.timeout")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Chat
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")
	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")
	cfg.Chat.HistoryWindow = viper.GetInt("chat.history_window")
	cfg.Chat.SystemPrompt = viper.GetString("chat.system_prompt")
	cfg.Chat.DisplayCurrency = viper.GetString("chat.display_currency")

	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	if token := viper.GetString("telegram_bot_token"); token != "" {
		cfg.Telegram.BotToken = token
	}
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = expandEnvVar(viper.GetString("telegram.webhook_secret"))
	cfg.Telegram.BaseURL = viper.GetString("telegram.base_url")
	cfg.Telegram.Timeout = viper.GetDuration("telegram.timeout")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// The chat model is optional; tools keep working without it.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "UTC")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.allowed_origins", "*")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("mongo.database", "travel_planner")

	viper.SetDefault("currency.base_url", "https://api.exchangerate.host")
	viper.SetDefault("currency.cache_ttl", time.Hour)
	viper.SetDefault("currency.timeout", 30*time.Second)

	viper.SetDefault("weather.base_url", "https://api.openweathermap.org")
	viper.SetDefault("weather.units", "metric")
	viper.SetDefault("weather.timeout", 30*time.Second)

	viper.SetDefault("amadeus.base_url", "https://test.api.amadeus.com")
	viper.SetDefault("amadeus.timeout", 30*time.Second)

	viper.SetDefault("chat.session_ttl", 30*time.Minute)
	viper.SetDefault("chat.max_sessions", 1000)
	viper.SetDefault("chat.history_window", 20)
	viper.SetDefault("chat.display_currency", "USD")

	viper.SetDefault("telegram.base_url", "https://api.telegram.org")
	viper.SetDefault("telegram.timeout", 10*time.Second)

	// LLM defaults: one attempt, no silent failover.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "30s")
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
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
