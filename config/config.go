package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/stylist"
)

const (
	EnvPrefix         = "LETRY_"
	ConfigPathEnvVar  = "CONFIG_PATH"
	defaultConfigPath = "config.yaml"
)

type ServerConfig struct {
	Address   string `koanf:"address"`
	RateLimit int    `koanf:"rate_limit"`
	Debug     bool   `koanf:"debug"`
}

type DatabaseConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Name     string `koanf:"name"`
}

// DSN is the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", d.Username, d.Password, d.Host, d.Port, d.Name)
}

type RedisConfig struct {
	Address     string `koanf:"address"`
	Concurrency int    `koanf:"concurrency"`
	// DailyPlanCron is the schedule of the daily plan fan-out.
	DailyPlanCron string `koanf:"daily_plan_cron"`
}

type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

type WeatherConfig struct {
	BaseURL        string        `koanf:"base_url"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	CacheTTL       time.Duration `koanf:"cache_ttl"`
	Breaker        BreakerConfig `koanf:"breaker"`
}

type GoogleConfig struct {
	APIKey      string        `koanf:"api_key"`
	Model       string        `koanf:"model"`
	TipsEnabled bool          `koanf:"tips_enabled"`
	TipsTimeout time.Duration `koanf:"tips_timeout"`
	// TipsTopN is the number of top ranked outfits enriched with tips.
	TipsTopN int `koanf:"tips_top_n"`
}

type SentryConfig struct {
	DSN         string  `koanf:"dsn"`
	Environment string  `koanf:"environment"`
	Release     string  `koanf:"release"`
	SampleRate  float64 `koanf:"sample_rate"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret"`
}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Weather  WeatherConfig  `koanf:"weather"`
	Stylist  stylist.Config `koanf:"stylist"`
	Google   GoogleConfig   `koanf:"google"`
	Sentry   SentryConfig   `koanf:"sentry"`
	Logging  LoggingConfig  `koanf:"logging"`
	Auth     AuthConfig     `koanf:"auth"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:   ":8083",
			RateLimit: 3,
		},
		Database: DatabaseConfig{
			Host: "localhost",
			Port: "5432",
		},
		Redis: RedisConfig{
			Address:       "localhost:6379",
			Concurrency:   10,
			DailyPlanCron: "0 6 * * *",
		},
		Weather: WeatherConfig{
			BaseURL:        "https://api.open-meteo.com/v1/forecast",
			RequestTimeout: 10 * time.Second,
			CacheTTL:       15 * time.Minute,
			Breaker: BreakerConfig{
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Stylist: stylist.DefaultConfig(),
		Google: GoogleConfig{
			Model:       "gemini-2.5-flash",
			TipsTimeout: 8 * time.Second,
			TipsTopN:    3,
		},
		Sentry: SentryConfig{
			Environment: "local",
			Release:     "stylematcher@1.0.0",
			SampleRate:  1.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load layers defaults, the optional yaml file and LETRY_ prefixed environment
// variables, in that order. Nested keys use a double underscore:
// LETRY_WEATHER__CACHE_TTL -> weather.cache_ttl.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := configPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func configPath() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}
	return ""
}

func envTransform(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

func (c *Config) Validate() error {
	var errs []error
	if err := c.Stylist.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Weather.CacheTTL <= 0 {
		errs = append(errs, errors.New("weather.cache_ttl must be positive"))
	}
	if c.Weather.RequestTimeout <= 0 {
		errs = append(errs, errors.New("weather.request_timeout must be positive"))
	}
	if c.Weather.Breaker.FailureThreshold == 0 {
		errs = append(errs, errors.New("weather.breaker.failure_threshold must be positive"))
	}
	if c.Weather.Breaker.Timeout <= 0 {
		errs = append(errs, errors.New("weather.breaker.timeout must be positive"))
	}
	if c.Redis.Concurrency <= 0 {
		errs = append(errs, errors.New("redis.concurrency must be positive"))
	}
	if c.Google.TipsTopN < 0 {
		errs = append(errs, errors.New("google.tips_top_n must not be negative"))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}
