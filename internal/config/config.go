package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	DBPath        string `env:"REELS_DB_PATH" env-default:"reels.db"`
	CameraRollDir string `env:"REELS_CAMERA_ROLL_DIR" env-default:"camera-roll"`
	LibraryDir    string `env:"REELS_LIBRARY_DIR" env-default:"library"`
	LogPath       string `env:"REELS_LOG_PATH" env-default:""`
	SaveToPhotos  bool   `env:"REELS_SAVE_TO_PHOTOS" env-default:"true"`
}

func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.CameraRollDir == "" {
		return errors.New("CameraRollDir is required")
	}
	if c.LibraryDir == "" {
		return errors.New("LibraryDir is required")
	}
	return nil
}
