package browser

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Options configures the browser. They come from an optional TOML file and
// are then overridden by command line flags.
type Options struct {
	Fullscreen   bool    `toml:"fullscreen"`
	VSync        bool    `toml:"vsync"`
	ShowFPS      bool    `toml:"show_fps"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	Background   string  `toml:"background"` // hex, e.g. "#ff7f00"
	LogLevel     string  `toml:"log_level"`
	CameraRadius float64 `toml:"camera_radius"`
	Seed         int64   `toml:"seed"` // 0 picks a random seed
}

func DefaultOptions() Options {
	return Options{
		VSync:        true,
		Width:        1280,
		Height:       720,
		Background:   "#ff7f00",
		LogLevel:     "info",
		CameraRadius: 3,
	}
}

// LoadOptions reads a TOML file over the defaults.
func LoadOptions(fileName string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(fileName)
	if err != nil {
		return opts, fmt.Errorf("could not read options file %s: %w", fileName, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("error parsing options file %s: %w", fileName, err)
	}
	return opts, nil
}

// ParseOptions builds Options from command line arguments. If --config names
// a file it is loaded first and flags given on the command line win over it.
func ParseOptions(args []string, output io.Writer) (Options, error) {
	scratch := DefaultOptions()
	var configFile string
	first := newFlagSet(&scratch, &configFile, io.Discard)
	if err := first.Parse(args); err != nil {
		// report the error with the real output
		_ = newFlagSet(&scratch, &configFile, output).Parse(args)
		return Options{}, err
	}

	opts := DefaultOptions()
	if configFile != "" {
		var err error
		if opts, err = LoadOptions(configFile); err != nil {
			return Options{}, err
		}
	}

	if err := newFlagSet(&opts, &configFile, output).Parse(args); err != nil {
		return Options{}, err
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// newFlagSet binds flags to opts, using its current values as defaults.
func newFlagSet(opts *Options, configFile *string, output io.Writer) *pflag.FlagSet {
	defaults := *opts

	fs := pflag.NewFlagSet("browser", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(configFile, "config", "c", *configFile, "TOML options file")
	fs.BoolVar(&opts.Fullscreen, "fullscreen", defaults.Fullscreen, "run fullscreen")
	fs.BoolVar(&opts.VSync, "vsync", defaults.VSync, "wait for vertical sync")
	fs.BoolVar(&opts.ShowFPS, "fps", defaults.ShowFPS, "show frames per second")
	fs.IntVar(&opts.Width, "width", defaults.Width, "window width")
	fs.IntVar(&opts.Height, "height", defaults.Height, "window height")
	fs.StringVar(&opts.Background, "background", defaults.Background, "background colour as hex")
	fs.StringVar(&opts.LogLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")
	fs.Float64Var(&opts.CameraRadius, "camera-radius", defaults.CameraRadius, "starting distance of the camera from the origin")
	fs.Int64Var(&opts.Seed, "seed", defaults.Seed, "random seed, 0 for a random one")
	return fs
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", o.Width, o.Height)
	}
	if o.CameraRadius <= 0 {
		return fmt.Errorf("camera radius %g must be positive", o.CameraRadius)
	}
	if _, err := o.BackgroundColor(); err != nil {
		return err
	}
	if _, err := o.Level(); err != nil {
		return err
	}
	return nil
}

func (o Options) BackgroundColor() (color.RGBA, error) {
	c, err := colorful.Hex(o.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad background colour %q: %w", o.Background, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func (o Options) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(o.LogLevel))); err != nil {
		return level, fmt.Errorf("bad log level %q: %w", o.LogLevel, err)
	}
	return level, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (o Options) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := o.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
