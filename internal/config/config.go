package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	ContentPath string `mapstructure:"content_path" validate:"required"`
	OutputDir   string `mapstructure:"output_dir"   validate:"required"`
	SiteDir     string `mapstructure:"site_dir"     validate:"required"`
	ServerAddr  string `mapstructure:"server_addr"  validate:"required"`
	PathPrefix  string `mapstructure:"path_prefix"  validate:"startswith=/"`
	LogLevel    string `mapstructure:"log_level"    validate:"oneof=debug info warn error"`
	LogJSON     bool   `mapstructure:"log_json"`
}

const (
	EnvPrefix         = "REEL"
	DefaultConfigName = "reel"
)

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("content_path", "src/content/projects.json")
	v.SetDefault("output_dir", "src/_data/generated")
	v.SetDefault("site_dir", "_site")
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("path_prefix", "/")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}

// Load reads the optional config file and environment into a validated Config.
// An explicit cfgFile must exist; the default reel.yaml may be absent.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PATH_PREFIX is the variable the site build has always used
	if err := v.BindEnv("path_prefix", EnvPrefix+"_PATH_PREFIX", "PATH_PREFIX"); err != nil {
		return nil, fmt.Errorf("failed to bind path prefix env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.PathPrefix = normalizePrefix(cfg.PathPrefix)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// normalizePrefix makes "portfolio" and "/portfolio/" both "/portfolio/"
func normalizePrefix(prefix string) string {
	p := strings.Trim(strings.TrimSpace(prefix), "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}
