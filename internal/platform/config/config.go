// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/petlink/petlink-api/internal/domain"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultRequestTimeout bounds a single request's context deadline.
	DefaultRequestTimeout = 15 * time.Second
)

// Config is the root configuration structure.
type Config struct {
	App        AppConfig        `koanf:"app"        validate:"required"`
	Server     ServerConfig     `koanf:"server"     validate:"required"`
	Log        LogConfig        `koanf:"log"        validate:"required"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	JWT        JWTConfig        `koanf:"jwt"        validate:"required"`
	Validation ValidationConfig `koanf:"validation"`
	Messages   MessagesConfig   `koanf:"messages"`
	Seed       SeedConfig       `koanf:"seed"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// DevMode reports whether error detail may be exposed in responses.
func (a *AppConfig) DevMode() bool {
	return a.Environment == "local" || a.Environment == "dev" || a.Environment == "test"
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"omitempty,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"       validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"   validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"    validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// JWTConfig contains token signing settings. The secret must come from the
// environment or a profile file in real deployments; the default is only
// suitable for local development.
type JWTConfig struct {
	Secret string        `koanf:"secret" validate:"required,min=16"`
	TTL    time.Duration `koanf:"ttl"    validate:"required,min=1m"`
}

// ValidationConfig overrides the compiled-in validation bounds. Zero values
// fall back to the defaults.
type ValidationConfig struct {
	NameMinLen        int `koanf:"name_min_len"        validate:"omitempty,min=1"`
	NameMaxLen        int `koanf:"name_max_len"        validate:"omitempty,min=1"`
	TypeMinLen        int `koanf:"type_min_len"        validate:"omitempty,min=1"`
	TypeMaxLen        int `koanf:"type_max_len"        validate:"omitempty,min=1"`
	DescriptionMaxLen int `koanf:"description_max_len" validate:"omitempty,min=1"`
	MaxAge            int `koanf:"max_age"             validate:"omitempty,min=1"`

	// MinAge is a pointer because zero is a valid configured minimum;
	// nil falls back to the default.
	MinAge *int `koanf:"min_age" validate:"omitempty,min=0"`
	UsernameMinLen    int `koanf:"username_min_len"    validate:"omitempty,min=1"`
	UsernameMaxLen    int `koanf:"username_max_len"    validate:"omitempty,min=1"`
	PasswordMinLen    int `koanf:"password_min_len"    validate:"omitempty,min=1"`
	PasswordMaxLen    int `koanf:"password_max_len"    validate:"omitempty,min=1"`
	PageSize          int `koanf:"page_size"           validate:"omitempty,min=1"`
	MaxPageSize       int `koanf:"max_page_size"       validate:"omitempty,min=1"`
}

// Limits returns the domain validation bounds with overrides applied.
func (v *ValidationConfig) Limits() domain.Limits {
	limits := domain.DefaultLimits()
	overrideInt(&limits.NameMinLen, v.NameMinLen)
	overrideInt(&limits.NameMaxLen, v.NameMaxLen)
	overrideInt(&limits.TypeMinLen, v.TypeMinLen)
	overrideInt(&limits.TypeMaxLen, v.TypeMaxLen)
	overrideInt(&limits.DescriptionMaxLen, v.DescriptionMaxLen)
	overrideInt(&limits.MaxAge, v.MaxAge)
	if v.MinAge != nil {
		limits.MinAge = *v.MinAge
	}
	overrideInt(&limits.UsernameMinLen, v.UsernameMinLen)
	overrideInt(&limits.UsernameMaxLen, v.UsernameMaxLen)
	overrideInt(&limits.PasswordMinLen, v.PasswordMinLen)
	overrideInt(&limits.PasswordMaxLen, v.PasswordMaxLen)
	overrideInt(&limits.PageSize, v.PageSize)
	overrideInt(&limits.MaxPageSize, v.MaxPageSize)
	return limits
}

// MessagesConfig overrides the compiled-in user-visible message templates.
// Empty values fall back to the defaults.
type MessagesConfig struct {
	InvalidCredentials  string `koanf:"invalid_credentials"`
	AlreadyAdopted      string `koanf:"already_adopted"`
	CannotDeleteAdopted string `koanf:"cannot_delete_adopted"`
	DuplicatePetName    string `koanf:"duplicate_pet_name"`
	DuplicateUsername   string `koanf:"duplicate_username"`
	DuplicateEmail      string `koanf:"duplicate_email"`
	InvalidToken        string `koanf:"invalid_token"`
}

// Messages returns the domain message templates with overrides applied.
func (m *MessagesConfig) Messages() domain.Messages {
	msgs := domain.DefaultMessages()
	overrideString(&msgs.InvalidCredentials, m.InvalidCredentials)
	overrideString(&msgs.AlreadyAdopted, m.AlreadyAdopted)
	overrideString(&msgs.CannotDeleteAdopted, m.CannotDeleteAdopted)
	overrideString(&msgs.DuplicatePetName, m.DuplicatePetName)
	overrideString(&msgs.DuplicateUsername, m.DuplicateUsername)
	overrideString(&msgs.DuplicateEmail, m.DuplicateEmail)
	overrideString(&msgs.InvalidToken, m.InvalidToken)
	return msgs
}

// SeedConfig controls the demo data loaded into the in-memory stores.
type SeedConfig struct {
	Pets  bool `koanf:"pets"`
	Users bool `koanf:"users"`
}

func overrideInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "petlink-api",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "15s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "petlink-api",
		"telemetry.sampling_rate": 1.0,

		// Local-only signing secret. Override with JWT_SECRET or a
		// profile file before deploying anywhere shared.
		"jwt.secret": "petlink-local-dev-secret-change-me",
		"jwt.ttl":    "1h",

		"seed.pets":  true,
		"seed.users": true,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables with APP_ prefix
	err = k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "APP_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct
	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil // File doesn't exist, that's fine
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
