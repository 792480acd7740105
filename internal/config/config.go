package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// SeekDistance is how far the arrow keys scrub, in seconds.
	SeekDistance float64 `koanf:"seek_distance"`

	// VolumeIncrement is the volume step for the up/down keys, in percent.
	VolumeIncrement int `koanf:"volume_increment"`

	// ProgressBarWidth is the maximum width of the progress bar in cells.
	ProgressBarWidth int `koanf:"progress_bar_width"`

	// AudioFormat is the format downloads are extracted to.
	// sox and the decoder both need to understand it.
	AudioFormat string `koanf:"audio_format"`
}

const (
	defaultSeekDistance     = 5.0
	defaultVolumeIncrement  = 10
	defaultProgressBarWidth = 60
	defaultAudioFormat      = "flac"
)

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SeekDistance <= 0 {
		c.SeekDistance = defaultSeekDistance
	}
	if c.VolumeIncrement <= 0 || c.VolumeIncrement > 100 {
		c.VolumeIncrement = defaultVolumeIncrement
	}
	if c.ProgressBarWidth <= 0 {
		c.ProgressBarWidth = defaultProgressBarWidth
	}
	if c.AudioFormat == "" {
		c.AudioFormat = defaultAudioFormat
	}
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tempo/config.toml
		filepath.Join(xdg.ConfigHome, "tempo", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}
