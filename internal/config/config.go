// Package config resolves launchweek settings from defaults, an optional
// launchweek.yaml file, LAUNCHWEEK_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "LAUNCHWEEK"
	ConfigName     = "launchweek"
	HomeConfigDir  = ".launchweek"
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds all launchweek settings.
type Config struct {
	PlanFile    string `mapstructure:"plan"`
	StartDay    string `mapstructure:"day"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
	Env         string `mapstructure:"env"`
	ChartWidth  int    `mapstructure:"chart_width"`
	ChartHeight int    `mapstructure:"chart_height"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-"`
}

// IsDevelopment reports whether development logging is requested.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, EnvDevelopment)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("plan", "")
	v.SetDefault("day", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("env", EnvProduction)
	v.SetDefault("chart_width", 512)
	v.SetDefault("chart_height", 512)
}

// Load resolves the configuration. Flags in fs whose names match a setting
// (with dashes for underscores) override every other source when they were
// set explicitly. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, HomeConfigDir))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return Config{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bindFlags maps flag "log-file" to key "log_file" and so on. Unknown flags
// are ignored.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !isKnownKey(key) {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("binding flag --%s: %w", f.Name, err)
		}
	})
	return bindErr
}

var knownKeys = []string{"plan", "day", "log_file", "log_level", "env", "chart_width", "chart_height"}

func isKnownKey(key string) bool {
	return slices.Contains(knownKeys, key)
}

func (c Config) validate() error {
	var errs []error
	if c.ChartWidth <= 0 {
		errs = append(errs, fmt.Errorf("chart_width must be positive, got %d", c.ChartWidth))
	}
	if c.ChartHeight <= 0 {
		errs = append(errs, fmt.Errorf("chart_height must be positive, got %d", c.ChartHeight))
	}
	switch strings.ToLower(c.Env) {
	case EnvProduction, EnvDevelopment:
	default:
		errs = append(errs, fmt.Errorf("env must be %q or %q, got %q", EnvProduction, EnvDevelopment, c.Env))
	}
	return errors.Join(errs...)
}
