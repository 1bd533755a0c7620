// Package config loads realmcored's configuration from CLI flags,
// environment variables, a YAML file, and defaults, in that precedence
// order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oryxlabs/realmcore/internal/bytesize"
)

// Config is realmcored's static configuration: how it listens, logs,
// traces, stores extracted mappings, and serves its admin API.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (REALMCORE_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Listen is the game connection listener configuration.
	Listen ListenConfig `mapstructure:"listen" yaml:"listen"`

	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Telemetry controls OpenTelemetry distributed tracing.
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`

	// Metrics contains Prometheus metrics server configuration.
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// AdminAPI contains the admin/control HTTP API configuration.
	AdminAPI AdminAPIConfig `mapstructure:"admin_api" yaml:"admin_api"`

	// ClientStore configures the S3-compatible bucket client binaries
	// are fetched from.
	ClientStore ClientStoreConfig `mapstructure:"client_store" yaml:"client_store"`

	// MappingStore configures the embedded Badger cache of extracted
	// Mappings/Parameters, keyed by build version.
	MappingStore MappingStoreConfig `mapstructure:"mapping_store" yaml:"mapping_store"`

	// AuditStore configures the relational extraction audit log.
	AuditStore AuditStoreConfig `mapstructure:"audit_store" yaml:"audit_store"`

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0" yaml:"shutdown_timeout"`
}

// ListenConfig configures the game connection listener.
type ListenConfig struct {
	// Address is the host:port the listener binds, e.g. ":2050".
	Address string `mapstructure:"address" validate:"required" yaml:"address"`

	// BuildVersion selects which cached Mappings this listener's
	// connections decode against.
	BuildVersion string `mapstructure:"build_version" validate:"required" yaml:"build_version"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive).
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format: text or json.
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written: stdout, stderr, or a
	// file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// TelemetryConfig controls OpenTelemetry distributed tracing.
type TelemetryConfig struct {
	// Enabled controls whether distributed tracing is active.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Endpoint is the OTLP collector endpoint (host:port).
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Insecure controls whether to use an insecure (non-TLS) connection.
	Insecure bool `mapstructure:"insecure" yaml:"insecure"`

	// SampleRate controls the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1" yaml:"sample_rate"`

	// Profiling contains Pyroscope continuous profiling configuration.
	Profiling ProfilingConfig `mapstructure:"profiling" yaml:"profiling"`
}

// ProfilingConfig controls Pyroscope continuous profiling of the
// extractor's AVM2 parse loop and the connection layer's keystream
// generation.
type ProfilingConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

// MetricsConfig configures the Prometheus metrics HTTP endpoint. When
// Enabled is false, no metrics are collected.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	Port    int  `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`
}

// AdminAPIConfig configures the chi-based admin/control HTTP API.
type AdminAPIConfig struct {
	Address string `mapstructure:"address" validate:"required" yaml:"address"`

	// JWTSecret signs and verifies the bearer tokens protecting
	// mutating endpoints (POST /admin/mappings/reload).
	JWTSecret string `mapstructure:"jwt_secret" validate:"required" yaml:"jwt_secret"`

	// TokenTTL is how long an issued bearer token remains valid.
	TokenTTL time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
}

// ClientStoreConfig configures the S3-compatible bucket client binaries
// are fetched from by build version.
type ClientStoreConfig struct {
	Bucket         string            `mapstructure:"bucket" validate:"required" yaml:"bucket"`
	Region         string            `mapstructure:"region" yaml:"region"`
	Endpoint       string            `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	KeyPrefix      string            `mapstructure:"key_prefix" yaml:"key_prefix,omitempty"`
	ForcePathStyle bool              `mapstructure:"force_path_style" yaml:"force_path_style"`
	MaxObjectSize  bytesize.ByteSize `mapstructure:"max_object_size" yaml:"max_object_size,omitempty"`
}

// MappingStoreConfig configures the embedded Badger cache.
type MappingStoreConfig struct {
	Path string `mapstructure:"path" validate:"required" yaml:"path"`
}

// AuditStoreConfig configures the relational extraction audit log.
type AuditStoreConfig struct {
	// Driver selects the gorm dialect: "sqlite" or "postgres".
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite postgres" yaml:"driver"`

	// DSN is the driver-specific connection string. For sqlite this is
	// a file path; for postgres a libpq-style connection string.
	DSN string `mapstructure:"dsn" validate:"required" yaml:"dsn"`

	// MigrationsPath points at the golang-migrate migration source.
	MigrationsPath string `mapstructure:"migrations_path" yaml:"migrations_path"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (REALMCORE_*)
//  2. Configuration file
//  3. Default values
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	configFileFound, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	if !configFileFound {
		cfg := GetDefaultConfig()
		return cfg, Validate(cfg)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHook())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration, producing a user-friendly error when no
// config file exists at the requested location.
func MustLoad(configPath string) (*Config, error) {
	if configPath == "" {
		if !DefaultConfigExists() {
			return nil, fmt.Errorf("no configuration file found at default location: %s\n\n"+
				"Please create one first, or specify a custom config file:\n"+
				"  realmcored --config /path/to/config.yaml",
				GetDefaultConfigPath())
		}
		configPath = GetDefaultConfigPath()
	} else if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path in YAML format.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks struct-tag constraints on cfg using validator/v10.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("REALMCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		configDir := getConfigDir()
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// configDecodeHook composes the duration hook with mapstructure's
// generic encoding.TextUnmarshaler hook, so fields like
// bytesize.ByteSize decode from strings ("1Gi") the same way
// time.Duration fields decode from "30s".
func configDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		durationDecodeHook(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// durationDecodeHook converts strings like "30s" / "5m" to
// time.Duration during viper unmarshal.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "realmcore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "realmcore")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists reports whether a config file exists at the
// default location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() string {
	return getConfigDir()
}
