package config

import (
	"errors"
	"fmt"
	"imgadjust/internal/core/domain"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	envPrefix = "IMGADJUST"

	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
	keyEngine          = "transform.engine"
	keyJPEGQuality     = "output.jpeg_quality"
	keyStaging         = "output.staging"
	keyCORSOrigins     = "server.cors_origins"
	keyShutdownTimeout = "server.shutdown_timeout"
)

type Config struct {
	LogLevel        string
	LogFormat       string
	Engine          domain.Engine
	JPEGQuality     int
	Staging         domain.Staging
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// Load reads configuration from path, or from an optional config.toml in the working directory when path is
// empty. Environment variables prefixed with IMGADJUST_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "console")
	v.SetDefault(keyEngine, string(domain.EngineImaging))
	v.SetDefault(keyJPEGQuality, 95)
	v.SetDefault(keyStaging, string(domain.StagingMemory))
	v.SetDefault(keyCORSOrigins, []string{"*"})
	v.SetDefault(keyShutdownTimeout, "10s")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("read config file")
	case path == "" && errors.As(err, &notFound):
		log.Debug().Msg("no config file found, using defaults")
	default:
		return nil, fmt.Errorf("%w: could not read config file: %w", domain.ErrStartupFailed, err)
	}

	cfg := &Config{
		LogLevel:        v.GetString(keyLogLevel),
		LogFormat:       v.GetString(keyLogFormat),
		Engine:          domain.Engine(v.GetString(keyEngine)),
		JPEGQuality:     v.GetInt(keyJPEGQuality),
		Staging:         domain.Staging(v.GetString(keyStaging)),
		CORSOrigins:     v.GetStringSlice(keyCORSOrigins),
		ShutdownTimeout: v.GetDuration(keyShutdownTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: invalid %s %q", domain.ErrStartupFailed, keyLogLevel, c.LogLevel)
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid %s %q", domain.ErrStartupFailed, keyLogFormat, c.LogFormat)
	}

	switch c.Engine {
	case domain.EngineImaging, domain.EngineBild:
	default:
		return fmt.Errorf("%w: invalid %s %q", domain.ErrStartupFailed, keyEngine, c.Engine)
	}

	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: %s must be within [1, 100], got %d", domain.ErrStartupFailed, keyJPEGQuality,
			c.JPEGQuality)
	}

	switch c.Staging {
	case domain.StagingMemory, domain.StagingTempFile:
	default:
		return fmt.Errorf("%w: invalid %s %q", domain.ErrStartupFailed, keyStaging, c.Staging)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", domain.ErrStartupFailed, keyShutdownTimeout)
	}

	return nil
}
