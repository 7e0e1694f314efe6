// Package config holds the run configuration and the viper wiring that fills it from
// flags, MSTVIZ_* environment variables and an optional mstviz.yaml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/psidex/mstviz/internal/graphs"
	"github.com/psidex/mstviz/internal/graphs/vis"
	"github.com/psidex/mstviz/internal/inputs"
	"github.com/psidex/mstviz/internal/lib"
)

const (
	EnvPrefix = "MSTVIZ"
	FileName  = "mstviz"

	KeyOutputPath = "output_path"
	KeyBaseDir    = "base_dir"
	KeyChildDir   = "child_dir"
	KeyLogLevel   = "log_level"
	KeySeed       = "seed"
	KeyDPI        = "dpi"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyViewAddr   = "view_addr"
	KeyNoBrowser  = "no_browser"
)

type Config struct {
	OutputPath string `mapstructure:"output_path"`
	BaseDir    string `mapstructure:"base_dir"`
	ChildDir   string `mapstructure:"child_dir"`
	LogLevel   string `mapstructure:"log_level"`
	Seed       uint64 `mapstructure:"seed"`
	DPI        int    `mapstructure:"dpi"`
	// Width and Height of static images, in inches.
	Width     float64 `mapstructure:"width"`
	Height    float64 `mapstructure:"height"`
	ViewAddr  string  `mapstructure:"view_addr"`
	NoBrowser bool    `mapstructure:"no_browser"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		ChildDir:  inputs.DefaultChildDir,
		LogLevel:  "info",
		Seed:      graphs.DefaultSeed,
		DPI:       graphs.DefaultDPI,
		Width:     8,
		Height:    6,
		ViewAddr:  vis.DefaultAddr,
		NoBrowser: false,
	}
}

// New returns a viper instance with defaults, env binding and the optional config
// file search path set up.
func New() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault(KeyOutputPath, d.OutputPath)
	v.SetDefault(KeyBaseDir, d.BaseDir)
	v.SetDefault(KeyChildDir, d.ChildDir)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyDPI, d.DPI)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyViewAddr, d.ViewAddr)
	v.SetDefault(KeyNoBrowser, d.NoBrowser)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return v
}

// RegisterFlags adds the command line flags for every setting that isn't positional.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	fs.Uint64("seed", d.Seed, "layout seed")
	fs.Int("dpi", d.DPI, "dots per inch for raster images")
	fs.Float64("width", d.Width, "image width in inches")
	fs.Float64("height", d.Height, "image height in inches")
	fs.String("child-dir", d.ChildDir, "fallback directory under the base dir")
	fs.String("view-addr", d.ViewAddr, "address the interactive viewer listens on")
	fs.Bool("no-browser", d.NoBrowser, "don't open a browser window for the interactive viewer")
}

// BindFlags binds flags registered by RegisterFlags to their config keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		KeyLogLevel:  "log-level",
		KeySeed:      "seed",
		KeyDPI:       "dpi",
		KeyWidth:     "width",
		KeyHeight:    "height",
		KeyChildDir:  "child-dir",
		KeyViewAddr:  "view-addr",
		KeyNoBrowser: "no-browser",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads the optional config file and unmarshals everything into a Config.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %gx%g", c.Width, c.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	l, err := lib.ParseSLogLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
