package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// AdminConfig holds the admin dashboard credentials.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Config holds all runtime configuration for the portfolio server.
// Values are populated from portfolio.yaml, PORTFOLIO_* env vars, .env and CLI flags.
type Config struct {
	Port            string      `mapstructure:"port"`
	DBPath          string      `mapstructure:"db_path"`
	StaticDir       string      `mapstructure:"static_dir"`
	ImagesDir       string      `mapstructure:"images_dir"`
	TemplateDir     string      `mapstructure:"template_dir"`
	WatchTemplates  bool        `mapstructure:"watch_templates"`
	RetentionMonths int         `mapstructure:"retention_months"`
	LogLevel        string      `mapstructure:"log_level"`
	Admin           AdminConfig `mapstructure:"admin"`
}

// SetDefaults registers built-in defaults and env bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db_path", "./portfolio.db")
	v.SetDefault("static_dir", "./static")
	v.SetDefault("images_dir", "./images")
	v.SetDefault("template_dir", "")
	v.SetDefault("watch_templates", false)
	v.SetDefault("retention_months", 12)
	v.SetDefault("log_level", "info")
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Plain names used by the hosting environment.
	_ = v.BindEnv("port", "PORTFOLIO_PORT", "PORT")
	_ = v.BindEnv("admin.username", "PORTFOLIO_ADMIN_USERNAME", "ADMIN_USERNAME")
	_ = v.BindEnv("admin.password", "PORTFOLIO_ADMIN_PASSWORD", "ADMIN_PASSWORD")
}

// Load reads configuration from v, applying defaults for any values not set
// by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReadFile loads path into v. A missing file is not an error when path is empty.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrapf(err, "reading config %s", path)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true, "fatal": true,
}

// Validate checks that the configuration contains usable values.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	for _, r := range c.Port {
		if r < '0' || r > '9' {
			return errors.Errorf("invalid port %q", c.Port)
		}
	}
	if c.RetentionMonths < 1 {
		return errors.New("retention_months must be at least 1")
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return errors.Errorf("invalid log_level %q: must be one of debug, info, warn, error, fatal", c.LogLevel)
	}
	return nil
}
