// Package config loads server settings from defaults, an optional YAML file,
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Shivanand-hulikatti/campus-events/internal/logging"
)

// Config holds every tunable of the server.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	CORS    CORSConfig    `yaml:"cors"`
}

// HTTPConfig controls the listener and its timeouts.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// CORSConfig lists the origins allowed to call the API. "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the local-development defaults.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		CORS:    CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Load builds a Config from args (without the program name) and the
// environment looked up through getenv.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()

	fs := pflag.NewFlagSet("campusd", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file (env CAMPUS_CONFIG)")
	addr := fs.String("addr", cfg.HTTP.Addr, "HTTP listen address")
	logLevel := fs.String("log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	logDev := fs.Bool("log-dev", cfg.Log.Development, "human-readable development logging")
	metricsOn := fs.Bool("metrics", cfg.Metrics.Enabled, "serve Prometheus metrics")
	metricsPath := fs.String("metrics-path", cfg.Metrics.Path, "path of the metrics endpoint")
	origins := fs.StringSlice("cors-origins", cfg.CORS.AllowedOrigins, "allowed CORS origins")
	shutdown := fs.Duration("shutdown-timeout", cfg.HTTP.ShutdownTimeout, "graceful shutdown deadline")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	path := *configPath
	if path == "" {
		path = getenv("CAMPUS_CONFIG")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(getenv); err != nil {
		return Config{}, err
	}

	if fs.Changed("addr") {
		cfg.HTTP.Addr = *addr
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = *logLevel
	}
	if fs.Changed("log-dev") {
		cfg.Log.Development = *logDev
	}
	if fs.Changed("metrics") {
		cfg.Metrics.Enabled = *metricsOn
	}
	if fs.Changed("metrics-path") {
		cfg.Metrics.Path = *metricsPath
	}
	if fs.Changed("cors-origins") {
		cfg.CORS.AllowedOrigins = *origins
	}
	if fs.Changed("shutdown-timeout") {
		cfg.HTTP.ShutdownTimeout = *shutdown
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	var errs error
	if port := getenv("PORT"); port != "" {
		c.HTTP.Addr = ":" + port
	}
	if v := getenv("CAMPUS_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := getenv("CAMPUS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("CAMPUS_LOG_DEV"); v != "" {
		b, err := strconv.ParseBool(v)
		errs = multierr.Append(errs, wrapEnv("CAMPUS_LOG_DEV", err))
		c.Log.Development = b
	}
	if v := getenv("CAMPUS_METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		errs = multierr.Append(errs, wrapEnv("CAMPUS_METRICS_ENABLED", err))
		c.Metrics.Enabled = b
	}
	if v := getenv("CAMPUS_CORS_ORIGINS"); v != "" {
		c.CORS.AllowedOrigins = strings.Split(v, ",")
	}
	return errs
}

func wrapEnv(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("env %s: %w", key, err)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs error
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = multierr.Append(errs, errors.New("http.addr is required"))
	}
	timeouts := []struct {
		name string
		d    time.Duration
	}{
		{"http.read_timeout", c.HTTP.ReadTimeout},
		{"http.write_timeout", c.HTTP.WriteTimeout},
		{"http.idle_timeout", c.HTTP.IdleTimeout},
		{"http.shutdown_timeout", c.HTTP.ShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.d <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s must be positive, got %s", t.name, t.d))
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = multierr.Append(errs, fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path))
	}
	return errs
}
