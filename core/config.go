package core

import (
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/jmigpin/swatch/util/imageutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const MaxFrameRate = 1000

type Config struct {
	WindowName string   `yaml:"window_name"`
	SwatchSize string   `yaml:"swatch_size"` // WxH
	Color      string   `yaml:"color"`
	Palette    []string `yaml:"palette"`
	FrameRate  int      `yaml:"frame_rate"`

	// parsed
	swatchSize image.Point
	color      color.Color
	palette    []color.Color
}

func DefaultConfig() *Config {
	cfg := &Config{
		WindowName: "Swatch",
		SwatchSize: "24x24",
		Color:      "#00ff00",
		Palette: []string{
			"red", "orange", "yellow", "lime",
			"blue", "indigo", "violet", "black", "white",
		},
		FrameRate: 30,
	}
	if err := cfg.parse(); err != nil {
		panic(err)
	}
	return cfg
}

func LoadConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrapf(err, "config %v", filename)
	}
	return cfg, nil
}

// Fields missing from the yaml keep their default values.
func ParseConfig(b []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrap(err, "yaml")
	}
	if err := cfg.parse(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) parse() error {
	sz, err := ParseSize(cfg.SwatchSize)
	if err != nil {
		return errors.Wrap(err, "swatch_size")
	}
	cfg.swatchSize = sz

	c, err := imageutil.ParseColor(cfg.Color)
	if err != nil {
		return errors.Wrap(err, "color")
	}
	cfg.color = c

	cfg.palette = nil
	for i, s := range cfg.Palette {
		c, err := imageutil.ParseColor(s)
		if err != nil {
			return errors.Wrapf(err, "palette[%v]", i)
		}
		cfg.palette = append(cfg.palette, c)
	}

	if cfg.FrameRate <= 0 || cfg.FrameRate > MaxFrameRate {
		return errors.Errorf("frame_rate: %v not in [1,%v]", cfg.FrameRate, MaxFrameRate)
	}
	return nil
}

func (cfg *Config) SwatchPoint() image.Point     { return cfg.swatchSize }
func (cfg *Config) ColorValue() color.Color      { return cfg.color }
func (cfg *Config) PaletteColors() []color.Color { return cfg.palette }

//----------

// Parses "WxH". Zero is a valid dimension.
func ParseSize(s string) (image.Point, error) {
	a := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(a) != 2 {
		return image.Point{}, errors.Errorf("bad size: %q", s)
	}
	w, err := strconv.Atoi(a[0])
	if err != nil {
		return image.Point{}, errors.Wrapf(err, "bad size: %q", s)
	}
	h, err := strconv.Atoi(a[1])
	if err != nil {
		return image.Point{}, errors.Wrapf(err, "bad size: %q", s)
	}
	if w < 0 || h < 0 {
		return image.Point{}, errors.Errorf("negative size: %q", s)
	}
	return image.Point{w, h}, nil
}
