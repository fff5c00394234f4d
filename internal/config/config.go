// Package config loads promptdepot settings from a YAML config file, a local
// .env file, and PROMPTDEPOT_* environment variables, in increasing order of
// precedence for the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/promptdepot/promptdepot/internal/storage"
)

// EnvPrefix namespaces the environment variables read by Load, e.g.
// PROMPTDEPOT_STORE_BACKEND.
const EnvPrefix = "PROMPTDEPOT"

// StoreSettings selects and configures the template store backend.
type StoreSettings struct {
	Backend string          `mapstructure:"backend"`
	Options storage.Options `mapstructure:"options"`
}

// RendererSettings selects the rendering engine.
type RendererSettings struct {
	Engine string `mapstructure:"engine"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level string `mapstructure:"level"`
}

// Settings is the full configuration of the CLI.
type Settings struct {
	Store    StoreSettings    `mapstructure:"store"`
	Renderer RendererSettings `mapstructure:"renderer"`
	Log      LogSettings      `mapstructure:"log"`
}

// Load reads settings. When configFile is empty, config.yaml is searched in
// ~/.promptdepot and the working directory; a missing file just means
// defaults. An explicitly named file must exist.
func Load(configFile string) (*Settings, error) {
	// A .env next to the working directory may carry PROMPTDEPOT_* variables.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("store.backend", "local")
	v.SetDefault("store.options.base_path", "")
	v.SetDefault("store.options.metadata_file_name", "")
	v.SetDefault("store.options.template_file_name", "")
	v.SetDefault("store.options.initial_version", "")
	v.SetDefault("renderer.engine", "gotemplate")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".promptdepot"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return &settings, nil
}
