// Package config resolves the checker's ambient settings from flags,
// W11CHECK_* environment variables and defaults, in that order.
// Requirement thresholds are not settings.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nhdewitt/w11check/internal/collector"
	"github.com/nhdewitt/w11check/internal/logging"
)

const EnvPrefix = "W11CHECK"

// Keys
const (
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
	KeyLogFile    = "log_file"
	KeyKeepReport = "keep_report"
	KeyDxDiagPath = "dxdiag_path"
)

type Config struct {
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	LogFile    string `mapstructure:"log_file"`
	KeepReport bool   `mapstructure:"keep_report"`
	DxDiagPath string `mapstructure:"dxdiag_path"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyLogFormat, string(logging.DefaultFormat))
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyKeepReport, false)
	v.SetDefault(KeyDxDiagPath, collector.DefaultDxDiagPath)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// flagName maps a key to its command-line spelling: log_level -> log-level.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// AddFlags registers one flag per key on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(flagName(KeyLogLevel), logging.DefaultLevel, "log level (debug, info, warn, error)")
	fs.String(flagName(KeyLogFormat), string(logging.DefaultFormat), "log format (text, json)")
	fs.String(flagName(KeyLogFile), "", "write logs to this file (rotated) instead of stderr")
	fs.Bool(flagName(KeyKeepReport), false, "keep the dxdiag report file after reading it")
	fs.String(flagName(KeyDxDiagPath), collector.DefaultDxDiagPath, "dxdiag executable")
}

// BindFlags binds the flags created by AddFlags to their keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyLogLevel, KeyLogFormat, KeyLogFile, KeyKeepReport, KeyDxDiagPath} {
		f := fs.Lookup(flagName(key))
		if f == nil {
			return fmt.Errorf("flag --%s not registered", flagName(key))
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", f.Name, err)
		}
	}
	return nil
}

// Load decodes and validates the resolved settings.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	switch logging.Format(strings.ToLower(cfg.LogFormat)) {
	case logging.FormatText, logging.FormatJSON:
		cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	default:
		return Config{}, fmt.Errorf("unknown log format %q (want text or json)", cfg.LogFormat)
	}
	if strings.TrimSpace(cfg.DxDiagPath) == "" {
		cfg.DxDiagPath = collector.DefaultDxDiagPath
	}

	return cfg, nil
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	return logging.Config{
		Level:  c.LogLevel,
		Format: logging.Format(c.LogFormat),
		File:   c.LogFile,
	}
}
