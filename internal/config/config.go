package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds the web server configuration.
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	// TrustProxy resolves client IPs from X-Forwarded-For. Enable only behind
	// a reverse proxy on a private network.
	TrustProxy bool `env:"SERVER_TRUST_PROXY" envDefault:"false"`

	Session SessionConfig
	API     APIConfig
	Site    SiteConfig
	Tracing TracingConfig

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// SessionConfig controls visitor sessions.
type SessionConfig struct {
	// TTL is how long an idle visitor keeps their wizard progress
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"sooru_session"`
	CookieSecure  bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// APIConfig controls the JSON API.
type APIConfig struct {
	RateLimitPerMinute int `env:"API_RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	RateLimitBurst     int `env:"API_RATE_LIMIT_BURST" envDefault:"20"`
	// StrictOptions rejects plan values that are not in the option catalog
	StrictOptions bool `env:"API_STRICT_OPTIONS" envDefault:"false"`
}

// SiteConfig holds presentation settings and the share targets.
type SiteConfig struct {
	Theme     string `env:"SITE_THEME" envDefault:"sooru-dark"`
	ShareLink string `env:"SHARE_LINK" envDefault:"https://sooru.ai/demo/shared-design-123"`
	ShareSite string `env:"SHARE_SITE" envDefault:"sooru.ai"`
}

// TracingConfig configures OTLP export. An empty endpoint installs a no-op
// provider.
type TracingConfig struct {
	Endpoint     string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure     bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"sooru-demo"`
	SamplingRate float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1.0"`
}

func (c TracingConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.API.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("API_RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.API.RateLimitPerMinute)
	}
	if r := cfg.Tracing.SamplingRate; r < 0 || r > 1 {
		return nil, fmt.Errorf("OTEL_SAMPLING_RATE must be within [0, 1], got %g", r)
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Duration("session_ttl", cfg.Session.TTL),
		slog.Bool("tracing", cfg.Tracing.Enabled()),
	)

	return cfg, nil
}
