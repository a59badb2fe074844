package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Persistence
	Storage  StorageConfig
	Postgres PostgresConfig
	Cache    CacheConfig

	// Security
	Auth      AuthConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig

	// Activity events
	NATS NATSConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxAgeDays   int
	MaxBackups   int
}

// StorageConfig selects the repository implementation: "memory" or "postgres".
type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	AutoMigrate     bool
}

type CacheConfig struct {
	Enabled     bool
	NumCounters int64
	MaxCost     int64
	TTL         time.Duration
}

type AuthConfig struct {
	JWTSecret    string
	SessionTTL   time.Duration
	BcryptCost   int
	CookieName   string
	CookieSecure bool
	CookieDomain string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled      bool
	RequestsPerM int
}

type NATSConfig struct {
	Enabled       bool
	URL           string
	Stream        string
	SubjectPrefix string
	ConsumerName  string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Timezone        string           `yaml:"timezone"`
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

// HasEnabledProvider reports whether at least one provider is enabled.
func (c LLMConfig) HasEnabledProvider() bool {
	for _, p := range c.Providers {
		if p.Enabled {
			return true
		}
	}
	return false
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = v.GetInt("logger.max_size_mb")
	cfg.Logger.MaxAgeDays = v.GetInt("logger.max_age_days")
	cfg.Logger.MaxBackups = v.GetInt("logger.max_backups")

	// Persistence
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Postgres.DSN = v.GetString("postgres.dsn")
	if dsn := v.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = v.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = v.GetInt32("postgres.min_conns")
	cfg.Postgres.MaxConnLifetime = v.GetDuration("postgres.max_conn_lifetime")
	cfg.Postgres.AutoMigrate = v.GetBool("postgres.auto_migrate")

	cfg.Cache.Enabled = v.GetBool("cache.enabled")
	cfg.Cache.NumCounters = v.GetInt64("cache.num_counters")
	cfg.Cache.MaxCost = v.GetInt64("cache.max_cost")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")

	// Security
	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	if secret := v.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.SessionTTL = v.GetDuration("auth.session_ttl")
	cfg.Auth.BcryptCost = v.GetInt("auth.bcrypt_cost")
	cfg.Auth.CookieName = v.GetString("auth.cookie_name")
	cfg.Auth.CookieSecure = v.GetBool("auth.cookie_secure")
	cfg.Auth.CookieDomain = v.GetString("auth.cookie_domain")

	if _, isList := v.Get("cors.allowed_origins").([]interface{}); isList {
		cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")
	} else {
		cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	}

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerM = v.GetInt("rate_limit.requests_per_min")

	// Activity events
	cfg.NATS.Enabled = v.GetBool("nats.enabled")
	cfg.NATS.URL = v.GetString("nats.url")
	if natsURL := v.GetString("nats_url"); natsURL != "" {
		cfg.NATS.URL = natsURL
	}
	cfg.NATS.Stream = v.GetString("nats.stream")
	cfg.NATS.SubjectPrefix = v.GetString("nats.subject_prefix")
	cfg.NATS.ConsumerName = v.GetString("nats.consumer_name")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Timezone = v.GetString("llm.timezone")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.Postgres.DSN == "" {
			return fmt.Errorf("storage.driver is postgres but postgres.dsn is empty")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.NATS.Enabled && cfg.NATS.URL == "" {
		return fmt.Errorf("nats.enabled is true but nats.url is empty")
	}

	// No providers is a valid setup: the assistant answers with the intent parser.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return fmt.Errorf("llm: %w", err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_age_days", 28)
	v.SetDefault("logger.max_backups", 3)

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", "1h")
	v.SetDefault("postgres.auto_migrate", true)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.num_counters", 100000)
	v.SetDefault("cache.max_cost", 64<<20)
	v.SetDefault("cache.ttl", "30s")

	v.SetDefault("auth.session_ttl", "168h")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.cookie_name", "session_token")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("nats.stream", "TASK_ACTIVITY")
	v.SetDefault("nats.subject_prefix", "activity")
	v.SetDefault("nats.consumer_name", "activity-logger")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
	v.SetDefault("llm.timezone", "UTC")
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
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
