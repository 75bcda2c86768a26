// Package config provides configuration loading and management.
//
// Configuration is read from an optional YAML file and then from
// DREAMFRAMES_* environment variables, which take precedence. Command-line
// flags are applied on top by the programs themselves.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"

	"github.com/user/dreamframes/pkg/adapters/ffmpegcmd"
	"github.com/user/dreamframes/pkg/adapters/mplayercmd"
	"github.com/user/dreamframes/pkg/adapters/pngcrushcmd"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "~/.config/dreamframes/config.yaml"

// Config represents the full configuration for dreamframes.
type Config struct {
	// Tools overrides the executables found on $PATH.
	Tools Tools `yaml:"tools"`

	LogLevel string `yaml:"log_level" env:"DREAMFRAMES_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error quiet"`

	// PngcrushMethod is passed to pngcrush -m.
	PngcrushMethod int `yaml:"pngcrush_method" env:"DREAMFRAMES_PNGCRUSH_METHOD" env-default:"115" validate:"min=1,max=200"`

	// Codec is the ffmpeg video codec used by frames2movie.
	Codec string `yaml:"codec" env:"DREAMFRAMES_CODEC" env-default:"libx264" validate:"required"`
}

// Tools holds explicit executable paths. Empty means look up on $PATH.
type Tools struct {
	FFmpeg   string `yaml:"ffmpeg" env:"DREAMFRAMES_FFMPEG"`
	FFprobe  string `yaml:"ffprobe" env:"DREAMFRAMES_FFPROBE"`
	MPlayer  string `yaml:"mplayer" env:"DREAMFRAMES_MPLAYER"`
	MEncoder string `yaml:"mencoder" env:"DREAMFRAMES_MENCODER"`
	Pngcrush string `yaml:"pngcrush" env:"DREAMFRAMES_PNGCRUSH"`
}

// Load reads configuration from path and the environment.
//
// An empty path selects DefaultPath, which may be absent. An explicit path
// must exist.
func Load(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: expand %s: %w", path, err)
	}

	_, statErr := os.Stat(expanded)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(expanded, &cfg); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", expanded, err)
		}
	case explicit || !errors.Is(statErr, os.ErrNotExist):
		return cfg, fmt.Errorf("config: %w", statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("config: read environment: %w", err)
		}
	}

	if err := cfg.Tools.expand(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (t *Tools) expand() error {
	for _, p := range []*string{&t.FFmpeg, &t.FFprobe, &t.MPlayer, &t.MEncoder, &t.Pngcrush} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("config: expand %s: %w", *p, err)
		}
		*p = filepath.Clean(expanded)
	}
	return nil
}

// Overrides returns the configured tool paths keyed by tool name, in the
// form accepted by the tool locator.
func (t Tools) Overrides() map[string]string {
	return map[string]string{
		ffmpegcmd.FFmpeg:    t.FFmpeg,
		ffmpegcmd.FFprobe:   t.FFprobe,
		mplayercmd.MPlayer:  t.MPlayer,
		mplayercmd.MEncoder: t.MEncoder,
		pngcrushcmd.Tool:    t.Pngcrush,
	}
}
