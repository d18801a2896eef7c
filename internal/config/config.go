package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/formcontrols/widgets"
)

const envPrefix = "FORMCONTROLS"

// Config holds application configuration.
type Config struct {
	Control ControlConfig `mapstructure:"control"`
	Log     LogConfig     `mapstructure:"log"`
}

// ControlConfig holds the dual listbox properties a host would normally set.
type ControlConfig struct {
	LeftOptions string `mapstructure:"left_options"`
	LeftTitle   string `mapstructure:"left_title"`
	RightTitle  string `mapstructure:"right_title"`
	HeaderColor string `mapstructure:"header_color"`
	ReadOnly    bool   `mapstructure:"read_only"`
}

// LogConfig holds logger settings. An empty Path disables logging for the
// interactive screen, which owns the terminal.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

func Default() Config {
	return Config{
		Control: ControlConfig{
			LeftTitle:   "Available",
			RightTitle:  "Selected",
			HeaderColor: "#f0f0f0",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath is $FORMCONTROLS_CONFIG or ~/.config/formcontrols/config.toml.
func DefaultPath() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "formcontrols", "config.toml")
}

// Load reads configuration from DefaultPath and env.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from path (DefaultPath when empty) and env.
// Env var overrides use prefix FORMCONTROLS_. A missing file is not an
// error; a malformed one is.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("toml")
	explicit := strings.TrimSpace(path) != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(DefaultPath())
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("control.left_options", d.Control.LeftOptions)
	v.SetDefault("control.left_title", d.Control.LeftTitle)
	v.SetDefault("control.right_title", d.Control.RightTitle)
	v.SetDefault("control.header_color", d.Control.HeaderColor)
	v.SetDefault("control.read_only", d.Control.ReadOnly)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.path", d.Log.Path)
}

func (c Config) Validate() error {
	if _, err := widgets.ParseHexColor(c.Control.HeaderColor); err != nil {
		return fmt.Errorf("control.header_color: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	return nil
}

// Save writes the provided config to path (DefaultPath when empty), creating
// the directory if needed.
func Save(cfg Config, path string) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("control.left_options", cfg.Control.LeftOptions)
	v.Set("control.left_title", cfg.Control.LeftTitle)
	v.Set("control.right_title", cfg.Control.RightTitle)
	v.Set("control.header_color", cfg.Control.HeaderColor)
	v.Set("control.read_only", cfg.Control.ReadOnly)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
