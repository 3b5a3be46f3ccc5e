// Package config loads the demo's settings from YAML with PROFDEMO_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/kroma-labs/sentinel-profiler/internal/httpserver"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PROFDEMO_"

// Config is the complete demo configuration.
type Config struct {
	Service   Service           `yaml:"service"`
	Log       Log               `yaml:"log"`
	Database  Database          `yaml:"database"`
	HTTP      httpserver.Config `yaml:"http"`
	Telemetry Telemetry         `yaml:"telemetry"`
	Profiler  Profiler          `yaml:"profiler"`
}

type Service struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type Log struct {
	// Level is a zerolog level name.
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
}

type Database struct {
	// Driver is the database/sql driver name: "sqlite", "pgx" or "mysql".
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Name   string `yaml:"name"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`

	// ConnectTimeout bounds the retried initial connection.
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	// CommandTimeout bounds schema commands. Zero means none.
	CommandTimeout time.Duration `yaml:"command_timeout"`
	// SlowQueryThreshold logs slower commands at warn. Zero disables.
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold"`
}

type Telemetry struct {
	// OTLPEndpoint receives traces over gRPC. Empty disables tracing export.
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

type Profiler struct {
	// Storage is "memory" or "redis".
	Storage   string        `yaml:"storage"`
	Capacity  int           `yaml:"capacity"`
	RedisAddr string        `yaml:"redis_addr"`
	RedisTTL  time.Duration `yaml:"redis_ttl"`
	// SharedBreaker keeps the Redis storage breaker state in Redis, so all
	// replicas trip together.
	SharedBreaker bool `yaml:"shared_breaker"`
	// SampleRate is profiled requests per second. Zero profiles all.
	SampleRate float64  `yaml:"sample_rate"`
	SkipPaths  []string `yaml:"skip_paths"`
}

// Default returns the configuration used when no file is given: an
// in-memory SQLite database and in-memory profile storage.
func Default() Config {
	return Config{
		Service: Service{Name: "profdemo", Version: "0.1.0"},
		Log:     Log{Level: "info", Format: "console"},
		Database: Database{
			Driver:          "sqlite",
			DSN:             "file:profdemo?mode=memory&cache=shared",
			Name:            "profdemo",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 15 * time.Minute,
			ConnectTimeout:  30 * time.Second,
			CommandTimeout:  10 * time.Second,
		},
		HTTP: httpserver.DefaultConfig(),
		Profiler: Profiler{
			Storage:       "memory",
			Capacity:      500,
			RedisTTL:      24 * time.Hour,
			SharedBreaker: true,
			SkipPaths:     []string{"/livez", "/readyz", "/metrics"},
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		defer f.Close()

		if err := decode(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overrides cfg from PROFDEMO_* variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOG_LEVEL":           &cfg.Log.Level,
		"LOG_FORMAT":          &cfg.Log.Format,
		"DB_DRIVER":           &cfg.Database.Driver,
		"DB_DSN":              &cfg.Database.DSN,
		"DB_NAME":             &cfg.Database.Name,
		"HTTP_ADDR":           &cfg.HTTP.Addr,
		"OTLP_ENDPOINT":       &cfg.Telemetry.OTLPEndpoint,
		"PROFILER_STORAGE":    &cfg.Profiler.Storage,
		"PROFILER_REDIS_ADDR": &cfg.Profiler.RedisAddr,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "PROFILER_SAMPLE_RATE"); ok {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %sPROFILER_SAMPLE_RATE: %w", EnvPrefix, err)
		}
		cfg.Profiler.SampleRate = rate
	}
	if v, ok := lookup(EnvPrefix + "DB_SLOW_QUERY_THRESHOLD"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %sDB_SLOW_QUERY_THRESHOLD: %w", EnvPrefix, err)
		}
		cfg.Database.SlowQueryThreshold = d
	}
	return nil
}

// Validate reports the first setting the demo cannot run with.
func (c Config) Validate() error {
	if _, ok := Dialects[c.Database.Driver]; !ok {
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("config: database dsn is required")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	switch c.Profiler.Storage {
	case "memory":
	case "redis":
		if c.Profiler.RedisAddr == "" {
			return errors.New("config: profiler redis_addr is required for redis storage")
		}
	default:
		return fmt.Errorf("config: unknown profiler storage %q", c.Profiler.Storage)
	}
	if c.Profiler.SampleRate < 0 {
		return errors.New("config: profiler sample_rate must not be negative")
	}
	return nil
}

// Dialect maps a driver name to the provider that serves it and the
// db.system attribute it reports.
type Dialect struct {
	Provider string
	System   string
}

// Dialects lists the supported drivers.
var Dialects = map[string]Dialect{
	"sqlite": {Provider: "sqlite", System: "sqlite"},
	"pgx":    {Provider: "postgres", System: "postgresql"},
	"mysql":  {Provider: "mysql", System: "mysql"},
}
