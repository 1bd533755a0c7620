package config

import (
	"strings"
	"time"

	"github.com/oryxlabs/realmcore/internal/bytesize"
)

// ApplyDefaults sets default values for any unspecified configuration
// fields.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyListenDefaults(&cfg.Listen)
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyMetricsDefaults(&cfg.Metrics)
	applyAdminAPIDefaults(&cfg.AdminAPI)
	applyClientStoreDefaults(&cfg.ClientStore)
	applyMappingStoreDefaults(&cfg.MappingStore)
	applyAuditStoreDefaults(&cfg.AuditStore)

	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
}

// applyListenDefaults sets defaults for the game connection listener.
func applyListenDefaults(cfg *ListenConfig) {
	if cfg.Address == "" {
		cfg.Address = ":2050"
	}
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyTelemetryDefaults sets OpenTelemetry defaults.
func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
	applyProfilingDefaults(&cfg.Profiling)
}

// applyProfilingDefaults sets Pyroscope profiling defaults.
func applyProfilingDefaults(cfg *ProfilingConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:4040"
	}
}

// applyMetricsDefaults sets Prometheus metrics server defaults.
func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Enabled && cfg.Port == 0 {
		cfg.Port = 9090
	}
}

// applyAdminAPIDefaults sets admin/control API defaults.
func applyAdminAPIDefaults(cfg *AdminAPIConfig) {
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = time.Hour
	}
}

// applyClientStoreDefaults sets S3 client-binary store defaults.
func applyClientStoreDefaults(cfg *ClientStoreConfig) {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "clients/"
	}
	if cfg.MaxObjectSize == 0 {
		cfg.MaxObjectSize = 64 * bytesize.MiB
	}
}

// applyMappingStoreDefaults sets the embedded Badger cache defaults.
func applyMappingStoreDefaults(cfg *MappingStoreConfig) {
	if cfg.Path == "" {
		cfg.Path = "/var/lib/realmcore/mappings"
	}
}

// applyAuditStoreDefaults sets relational audit log defaults.
func applyAuditStoreDefaults(cfg *AuditStoreConfig) {
	if cfg.Driver == "" {
		cfg.Driver = "sqlite"
	}
	if cfg.DSN == "" {
		cfg.DSN = "/var/lib/realmcore/audit.db"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://migrations/auditstore"
	}
}

// GetDefaultConfig returns a Config struct with all default values
// applied. Useful for generating sample configuration files and tests.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
