package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const DefaultProviderURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App       AppConfig
	Provider  ProviderConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin string
}

type ProviderConfig struct {
	URL      string
	Timeout  time.Duration
	RetryMax int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

// LoadConfig reads configuration from an optional .env file and the environment.
// Environment variables take precedence over the file.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	providerTimeout, err := time.ParseDuration(v.GetString("PROVIDER_TIMEOUT"))
	if err != nil {
		providerTimeout = 15 * time.Second
	}

	cacheTTL, err := time.ParseDuration(v.GetString("REDIS_CACHE_TTL"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:            v.GetString("APP_PORT"),
			Env:             v.GetString("APP_ENV"),
			LogLevel:        v.GetString("LOG_LEVEL"),
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
		},
		Provider: ProviderConfig{
			URL:      v.GetString("PROVIDER_URL"),
			Timeout:  providerTimeout,
			RetryMax: v.GetInt("PROVIDER_RETRY_MAX"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			CacheTTL: cacheTTL,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("PROVIDER_URL", DefaultProviderURL)
	v.SetDefault("PROVIDER_TIMEOUT", "15s")
	v.SetDefault("PROVIDER_RETRY_MAX", 0)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_CACHE_TTL", "5m")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
}
