package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	appName    = "parkctl"
	configName = "config"
	configType = "toml"
	envPrefix  = "PARKCTL"

	KeyLotSlots             = "lot.slots"
	KeyLotRatePerHour       = "lot.rate_per_hour"
	KeyLogLevel             = "log.level"
	KeyTelemetryEndpoint    = "telemetry.endpoint"
	KeyTelemetryServiceName = "telemetry.service_name"
)

type Config struct {
	Lot       LotConfig
	LogLevel  slog.Level
	Telemetry TelemetryConfig
}

type LotConfig struct {
	// Slots is zero when the operator should be prompted.
	Slots       int
	RatePerHour int64
	// RateSet reports whether the rate came from a file or the environment.
	RateSet bool
}

type TelemetryConfig struct {
	Endpoint    string
	ServiceName string
}

// Load reads config.toml from the user config directory and PARKCTL_*
// environment variables. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{KeyLotSlots, KeyLotRatePerHour, KeyLogLevel, KeyTelemetryEndpoint, KeyTelemetryServiceName} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetDefault(KeyLotSlots, 0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyTelemetryServiceName, appName)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Lot: LotConfig{
			Slots:       v.GetInt(KeyLotSlots),
			RatePerHour: domain.DefaultRatePerHour,
		},
		LogLevel: parseLogLevel(v.GetString(KeyLogLevel)),
		Telemetry: TelemetryConfig{
			Endpoint:    strings.TrimSpace(v.GetString(KeyTelemetryEndpoint)),
			ServiceName: v.GetString(KeyTelemetryServiceName),
		},
	}
	if v.IsSet(KeyLotRatePerHour) {
		cfg.Lot.RatePerHour = v.GetInt64(KeyLotRatePerHour)
		cfg.Lot.RateSet = true
	}

	if cfg.Lot.Slots < 0 {
		return Config{}, fmt.Errorf("%s: %w: got %d", KeyLotSlots, domain.ErrInvalidSlotCount, cfg.Lot.Slots)
	}
	if cfg.Lot.RatePerHour < 0 {
		return Config{}, fmt.Errorf("%s: %w: got %d", KeyLotRatePerHour, domain.ErrInvalidRate, cfg.Lot.RatePerHour)
	}

	return cfg, nil
}

func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
