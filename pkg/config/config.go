package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment overrides for secrets that should not live in the config file.
const (
	EnvDatabasePassword = "FAUCET_DB_PASSWORD"
	EnvSignPassword     = "FAUCET_SIGN_PASSWORD"
	EnvAdminJWTSecret   = "FAUCET_ADMIN_JWT_SECRET"
	EnvRedisPassword    = "FAUCET_REDIS_PASSWORD"
)

// Config represents the faucet server configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Rubix      RubixConfig      `yaml:"rubix"`
	Faucet     FaucetConfig     `yaml:"faucet"`
	Replenish  ReplenishConfig  `yaml:"replenish"`
	Admin      AdminConfig      `yaml:"admin"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"3000" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"80s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	// StaticDir, when set, is served at / (the claim form front-end).
	StaticDir string `yaml:"static_dir"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"gt=0"`
	User     string `yaml:"user" default:"faucet"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"faucet" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// RubixConfig contains settings for the ledger node HTTP API
type RubixConfig struct {
	URL        string        `yaml:"url" default:"http://localhost:20000" validate:"required,url"`
	Timeout    time.Duration `yaml:"timeout" default:"30s" validate:"gt=0"`
	RetryDelay time.Duration `yaml:"retry_delay" default:"500ms"`
}

// FaucetConfig holds the per-deployment constants of the claim workflow
type FaucetConfig struct {
	ID               string        `yaml:"id" default:"faucet" validate:"required"`
	SenderDID        string        `yaml:"sender_did" validate:"required"`
	SignPassword     string        `yaml:"sign_password" validate:"required"`
	IdentifierPrefix string        `yaml:"identifier_prefix" default:"bafyb"`
	Cooldown         time.Duration `yaml:"cooldown" default:"1h" validate:"gt=0"`
	ClaimAmount      float64       `yaml:"claim_amount" default:"1" validate:"gt=0"`
	TransferType     int           `yaml:"transfer_type" default:"2"`
	TransferComment  string        `yaml:"transfer_comment"`
	SuccessMarker    string        `yaml:"success_marker" default:"Transfer finished successfully" validate:"required"`
	CounterFile      string        `yaml:"counter_file" default:"counter.json" validate:"required"`
	Quorums          []string      `yaml:"quorums"`

	// TransferTimeout bounds the whole payout exchange with the node, retries
	// included. Must stay below server.request_timeout.
	TransferTimeout time.Duration `yaml:"transfer_timeout" default:"70s" validate:"gt=0"`
}

// ReplenishConfig controls the reserve top-up after claims
type ReplenishConfig struct {
	Enabled       bool          `yaml:"enabled" default:"true"`
	LowWaterMark  float64       `yaml:"low_water_mark" default:"50" validate:"gte=0"`
	TopUpAmount   int64         `yaml:"top_up_amount" default:"100" validate:"gt=0"`
	SuccessMarker string        `yaml:"success_marker"`
	Timeout       time.Duration `yaml:"timeout" default:"2m" validate:"gt=0"`
}

// AdminConfig gates the counter overwrite endpoints.
// An empty JWTSecret leaves them open to anyone who can reach the service.
type AdminConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
}

// RateLimitConfig configures the optional per-IP throttle backed by Redis
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr" default:"localhost:6379" validate:"required_if=Enabled true"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Requests int           `yaml:"requests" default:"10" validate:"gt=0"`
	Window   time.Duration `yaml:"window" default:"1m" validate:"gt=0"`
	Prefix   string        `yaml:"prefix" default:"faucet:rl"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load reads the YAML file at configPath, applies defaults and environment
// overrides, and validates the result.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document into a validated Config.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks struct constraints on cfg and that the timeouts nest:
// faucet.transfer_timeout < server.request_timeout <= server.write_timeout.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return err
	}
	if cfg.Faucet.TransferTimeout >= cfg.Server.RequestTimeout {
		return fmt.Errorf("faucet.transfer_timeout (%s) must be less than server.request_timeout (%s)",
			cfg.Faucet.TransferTimeout, cfg.Server.RequestTimeout)
	}
	if cfg.Server.WriteTimeout > 0 && cfg.Server.RequestTimeout > cfg.Server.WriteTimeout {
		return fmt.Errorf("server.request_timeout (%s) must not exceed server.write_timeout (%s)",
			cfg.Server.RequestTimeout, cfg.Server.WriteTimeout)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(EnvSignPassword); v != "" {
		cfg.Faucet.SignPassword = v
	}
	if v := os.Getenv(EnvAdminJWTSecret); v != "" {
		cfg.Admin.JWTSecret = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		cfg.RateLimit.Password = v
	}
}

// Addr returns host:port for the HTTP listener
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReplenishMarker returns the confirmation substring expected from the
// signature-response that completes a mint, falling back to the transfer marker.
func (c *Config) ReplenishMarker() string {
	if c.Replenish.SuccessMarker != "" {
		return c.Replenish.SuccessMarker
	}
	return c.Faucet.SuccessMarker
}
