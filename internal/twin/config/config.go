package config

import (
	"fmt"
	"strings"

	"github.com/longkey1/twin/internal/twin/radar"
	"github.com/spf13/viper"
)

// Config holds the configuration for the twin client
type Config struct {
	APIURL           string  `toml:"api_url" mapstructure:"api_url"`
	AvatarURL        string  `toml:"avatar_url" mapstructure:"avatar_url"` // empty = {api_url}/avatar.png
	TimelineFile     string  `toml:"timeline_file" mapstructure:"timeline_file"` // empty = embedded timeline
	Color            bool    `toml:"color" mapstructure:"color"`
	LogLevel         string  `toml:"log_level" mapstructure:"log_level"`
	LogFormat        string  `toml:"log_format" mapstructure:"log_format"` // "text" or "json"
	RadarSize        float64 `toml:"radar_size" mapstructure:"radar_size"`
	RadarMargin      float64 `toml:"radar_margin" mapstructure:"radar_margin"`
	RadarLabelOffset float64 `toml:"radar_label_offset" mapstructure:"radar_label_offset"`
	MockAddr         string  `toml:"mock_addr" mapstructure:"mock_addr"`
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		APIURL:           "http://localhost:8000",
		AvatarURL:        "",
		TimelineFile:     "",
		Color:            true,
		LogLevel:         "warn",
		LogFormat:        "text",
		RadarSize:        radar.DefaultSize,
		RadarMargin:      radar.DefaultMargin,
		RadarLabelOffset: radar.DefaultLabelOffset,
		MockAddr:         "127.0.0.1:8000",
	}
}

// SetDefaults registers the default values with viper
func SetDefaults(v *viper.Viper) {
	defaults := NewDefaultConfig()
	v.SetDefault("api_url", defaults.APIURL)
	v.SetDefault("avatar_url", defaults.AvatarURL)
	v.SetDefault("timeline_file", defaults.TimelineFile)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("radar_size", defaults.RadarSize)
	v.SetDefault("radar_margin", defaults.RadarMargin)
	v.SetDefault("radar_label_offset", defaults.RadarLabelOffset)
	v.SetDefault("mock_addr", defaults.MockAddr)
}

// LoadConfig loads configuration from the global viper instance
func LoadConfig() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom loads configuration from v
func LoadFrom(v *viper.Viper) (*Config, error) {
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	var err error
	if config.APIURL, err = expandEnvVar(config.APIURL); err != nil {
		return nil, err
	}
	if config.AvatarURL, err = expandEnvVar(config.AvatarURL); err != nil {
		return nil, err
	}
	config.APIURL = strings.TrimRight(config.APIURL, "/")
	if config.APIURL == "" {
		return nil, fmt.Errorf("api_url is not configured. Set it in config file (api_url) or environment variable (TWIN_API_URL)")
	}

	if config.TimelineFile != "" {
		path, err := expandEnvVar(config.TimelineFile)
		if err != nil {
			return nil, err
		}
		if path, err = ResolvePath(v, path); err != nil {
			return nil, fmt.Errorf("error resolving timeline file path '%s': %v", config.TimelineFile, err)
		}
		config.TimelineFile = path
	}

	return config, nil
}

// RadarOptions returns the radar layout options from the configuration
func (c *Config) RadarOptions() radar.Options {
	return radar.Options{
		Size:        c.RadarSize,
		Margin:      c.RadarMargin,
		LabelOffset: c.RadarLabelOffset,
	}
}
