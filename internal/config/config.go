// Package config loads the lesson runner's settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultImagePath is the image the lesson reads when nothing overrides it.
const DefaultImagePath = "../img/coding.jpg"

// Probe is the pixel the lesson inspects and overwrites.
type Probe struct {
	Row int `mapstructure:"row"`
	Col int `mapstructure:"col"`
}

// Config holds the lesson settings.
type Config struct {
	ImagePath string `mapstructure:"image_path"`
	Probe     Probe  `mapstructure:"probe"`
}

// Load reads config.yaml from dir if one exists, then applies IMGARRAY_*
// environment overrides (IMGARRAY_IMAGE_PATH, IMGARRAY_PROBE_ROW, ...).
// A missing file is not an error.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("image_path", DefaultImagePath)
	v.SetDefault("probe.row", 100)
	v.SetDefault("probe.col", 100)

	v.SetEnvPrefix("imgarray")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.ImagePath == "" {
		return Config{}, errors.New("config: image_path is empty")
	}
	if cfg.Probe.Row < 0 || cfg.Probe.Col < 0 {
		return Config{}, fmt.Errorf("config: negative probe (%d, %d)", cfg.Probe.Row, cfg.Probe.Col)
	}
	return cfg, nil
}
