package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config holds the complete application configuration
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Log       LogConfig       `toml:"log"`
	Cache     CacheConfig     `toml:"cache"`
	Store     StoreConfig     `toml:"store"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Limits    LimitsConfig    `toml:"limits"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	GinMode         string   `toml:"gin_mode"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// LogConfig holds logging settings. Format is "human" or "json".
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// CacheConfig selects the result cache. Driver is "memory" or "redis".
// Capacity bounds the memory cache; zero leaves it unbounded.
type CacheConfig struct {
	Driver    string   `toml:"driver"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
	Capacity  int      `toml:"capacity"`
}

// StoreConfig selects the calculation history store. Driver is "memory" or "sqlite".
type StoreConfig struct {
	Driver   string `toml:"driver"`
	DSN      string `toml:"dsn"`
	Capacity int    `toml:"capacity"`
}

// RateLimitConfig allows each client Requests per Window on the /v1 routes
type RateLimitConfig struct {
	Enabled  bool     `toml:"enabled"`
	Requests int      `toml:"requests"`
	Window   Duration `toml:"window"`
}

// LimitsConfig bounds the work a single request may ask for
type LimitsConfig struct {
	MaxSimulationMonths int `toml:"max_simulation_months"`
}

// CORSConfig lists the origins allowed to call the API. Empty disables CORS.
type CORSConfig struct {
	AllowOrigins []string `toml:"allow_origins"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			GinMode:         "release",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Cache: CacheConfig{
			Driver:    "memory",
			RedisAddr: "localhost:6379",
			TTL:       Duration{10 * time.Minute},
			Capacity:  10000,
		},
		Store: StoreConfig{
			Driver:   "memory",
			DSN:      "data/finance.db",
			Capacity: 1000,
		},
		RateLimit: RateLimitConfig{
			Enabled:  true,
			Requests: 60,
			Window:   Duration{time.Minute},
		},
		Limits: LimitsConfig{
			MaxSimulationMonths: 1200,
		},
	}
}

// Load reads the TOML file at path over the defaults, then applies the
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "loading config %s", path)
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides single settings from the environment
func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("FINANCE_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup("FINANCE_REDIS_ADDR"); ok {
		c.Cache.Driver = "redis"
		c.Cache.RedisAddr = v
	}
	if v, ok := lookup("FINANCE_DB_DSN"); ok {
		c.Store.Driver = "sqlite"
		c.Store.DSN = v
	}
	if v, ok := lookup("GIN_MODE"); ok {
		c.Server.GinMode = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("CORS_ALLOW_ORIGINS"); ok {
		c.CORS.AllowOrigins = strings.Fields(v)
	}
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.Errorf("server.gin_mode %q is not one of debug, release, test", c.Server.GinMode)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	switch c.Log.Format {
	case "human", "json":
	default:
		return errors.Errorf("log.format %q is not one of human, json", c.Log.Format)
	}

	switch c.Cache.Driver {
	case "memory":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr is required for the redis driver")
		}
	default:
		return errors.Errorf("cache.driver %q is not one of memory, redis", c.Cache.Driver)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New("cache.ttl must not be negative")
	}
	if c.Cache.Capacity < 0 {
		return errors.New("cache.capacity must not be negative")
	}

	switch c.Store.Driver {
	case "memory":
	case "sqlite":
		if c.Store.DSN == "" {
			return errors.New("store.dsn is required for the sqlite driver")
		}
	default:
		return errors.Errorf("store.driver %q is not one of memory, sqlite", c.Store.Driver)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Requests < 1 || c.RateLimit.Window.Duration <= 0) {
		return errors.New("rate_limit needs requests >= 1 and a positive window")
	}
	if c.Limits.MaxSimulationMonths < 1 {
		return errors.New("limits.max_simulation_months must be at least 1")
	}
	return nil
}
