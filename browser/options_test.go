package browser

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "browser.toml")
	require.NoError(t, os.WriteFile(fileName, []byte(contents), 0o644))
	return fileName
}

func TestParseOptions(t *testing.T) {
	config := writeConfig(t, `
width = 800
height = 600
log_level = "debug"
background = "#000000"
show_fps = true
`)

	testCases := []struct {
		name     string
		args     []string
		expected func(o *Options)
	}{
		{
			name:     "Defaults",
			args:     nil,
			expected: func(o *Options) {},
		},
		{
			name: "Flags",
			args: []string{"--width", "640", "--fps", "--vsync=false", "--camera-radius", "7.5"},
			expected: func(o *Options) {
				o.Width = 640
				o.ShowFPS = true
				o.VSync = false
				o.CameraRadius = 7.5
			},
		},
		{
			name: "Config file",
			args: []string{"--config", config},
			expected: func(o *Options) {
				o.Width = 800
				o.Height = 600
				o.LogLevel = "debug"
				o.Background = "#000000"
				o.ShowFPS = true
			},
		},
		{
			name: "Flags win over config file",
			args: []string{"--width", "1024", "-c", config, "--log-level", "warn"},
			expected: func(o *Options) {
				o.Width = 1024
				o.Height = 600
				o.LogLevel = "warn"
				o.Background = "#000000"
				o.ShowFPS = true
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			want := DefaultOptions()
			tc.expected(&want)

			got, err := ParseOptions(tc.args, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseOptionsErrors(t *testing.T) {
	badToml := writeConfig(t, "width = \"wide\"\n")

	testCases := []struct {
		name string
		args []string
	}{
		{"Unknown flag", []string{"--sparkles"}},
		{"Missing config file", []string{"--config", filepath.Join(t.TempDir(), "missing.toml")}},
		{"Bad config file", []string{"--config", badToml}},
		{"Bad background", []string{"--background", "orange"}},
		{"Bad log level", []string{"--log-level", "loud"}},
		{"Zero width", []string{"--width", "0"}},
		{"Negative camera radius", []string{"--camera-radius", "-1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOptions(tc.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	o := DefaultOptions()
	c, err := o.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 127, B: 0, A: 255}, c)
}

func TestNewLogger(t *testing.T) {
	o := DefaultOptions()
	o.LogLevel = "warn"

	var buf bytes.Buffer
	logger, err := o.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud", "id", 3)
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud")
	assert.Contains(t, buf.String(), "id=3")
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
