// Package config loads studymate settings from defaults, an optional YAML
// file and STUDYMATE_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "STUDYMATE"
	configName = "config"
	dirName    = ".studymate"
	dbFileName = "studymate.db"
)

// Config holds resolved settings.
type Config struct {
	Dir         string
	DBPath      string
	LogLevel    slog.Level
	LogFormat   string
	DefaultSort string
}

// DefaultDir returns ~/.studymate, or .studymate in the working directory
// when the home directory cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// Load resolves settings, reading dir/config.yaml when it exists. A missing
// file is not an error.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("db_path", filepath.Join(dir, dbFileName))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("default_sort", "newest")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Dir:         dir,
		DBPath:      expandHome(v.GetString("db_path")),
		LogFormat:   strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
		DefaultSort: strings.TrimSpace(v.GetString("default_sort")),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return Config{}, fmt.Errorf("parsing log.level: %w", err)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("unknown log.format %q (want text or json)", cfg.LogFormat)
	}
	return cfg, nil
}

// NewLogger builds the process logger described by cfg.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
