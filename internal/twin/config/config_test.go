package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/longkey1/twin/internal/twin/radar"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(newViper())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Empty(t, cfg.TimelineFile)
	assert.True(t, cfg.Color)
	assert.Equal(t, radar.DefaultOptions(), cfg.RadarOptions())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
api_url = "https://twin.example.com/"
timeline_file = "timeline.toml"
radar_size = 400.0
color = false
`), 0644))

	v := newViper()
	v.SetConfigFile(configFile)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "https://twin.example.com", cfg.APIURL)
	assert.Equal(t, filepath.Join(dir, "timeline.toml"), cfg.TimelineFile)
	assert.Equal(t, 400.0, cfg.RadarSize)
	assert.Equal(t, radar.DefaultMargin, cfg.RadarMargin)
	assert.False(t, cfg.Color)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TWIN_TEST_BACKEND", "http://backend:9000")

	v := newViper()
	v.Set("api_url", "${TWIN_TEST_BACKEND}")
	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.APIURL)
}

func TestLoadRejectsEmptyAPIURL(t *testing.T) {
	v := newViper()
	v.Set("api_url", "$TWIN_TEST_UNSET_VARIABLE")
	_, err := LoadFrom(v)
	assert.Error(t, err)
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TWIN_TEST_VALUE", "expanded")

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "plain", want: "plain"},
		{input: "$TWIN_TEST_VALUE", want: "expanded"},
		{input: "${TWIN_TEST_VALUE}", want: "expanded"},
		{input: "$TWIN_TEST_MISSING", want: ""},
		{input: "$", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := expandEnvVar(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePathWithoutConfigFile(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolvePath(viper.New(), "data/timeline.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "data/timeline.toml"), got)

	got, err = ResolvePath(viper.New(), "/abs/timeline.toml")
	require.NoError(t, err)
	assert.Equal(t, "/abs/timeline.toml", got)
}
