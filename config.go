package pwaicon

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/esimov/pwaicon/utils"
)

// DefaultSizes is the ordered list of icon sizes (in pixels) generated by default.
var DefaultSizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

const (
	// DefaultLabel is the text drawn on every icon.
	DefaultLabel = "POS"
	// DefaultFontScale is the font pixel size relative to the icon size.
	DefaultFontScale = 0.40
	// DefaultCornerRadius is the mask corner radius relative to the icon size.
	DefaultCornerRadius = 0.15
)

var (
	ErrNoSizes       = errors.New("no icon sizes given")
	ErrInvalidSize   = errors.New("icon size must be positive")
	ErrDuplicateSize = errors.New("duplicate icon size")
	ErrEmptyLabel    = errors.New("icon label is empty")
	ErrBadRatio      = errors.New("ratio out of range")
)

// Theme holds the colors and the label shared by every icon.
type Theme struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Label      string
}

// DefaultTheme returns the blue background, white "POS" theme.
func DefaultTheme() Theme {
	return Theme{
		Background: color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Label:      DefaultLabel,
	}
}

// Config is the immutable input of a Generator.
type Config struct {
	Sizes        []int
	Theme        Theme
	OutputDir    string
	Fonts        []FontSource
	FontScale    float64
	CornerRadius float64
}

// OutputDir returns the icon directory of a web project rooted at root.
func OutputDir(root string) string {
	return filepath.Join(root, "public", "icons")
}

// DefaultConfig returns the configuration used when the generator is invoked
// without any option, writing into the public/icons folder under root.
func DefaultConfig(root string) Config {
	return Config{
		Sizes:        append([]int(nil), DefaultSizes...),
		Theme:        DefaultTheme(),
		OutputDir:    OutputDir(root),
		Fonts:        DefaultFonts(),
		FontScale:    DefaultFontScale,
		CornerRadius: DefaultCornerRadius,
	}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}
	seen := make(map[int]struct{}, len(c.Sizes))
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, s)
		}
		if _, ok := seen[s]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateSize, s)
		}
		seen[s] = struct{}{}
	}
	if c.Theme.Label == "" {
		return ErrEmptyLabel
	}
	if c.FontScale <= 0 || c.FontScale > 1 {
		return fmt.Errorf("%w: font scale %v", ErrBadRatio, c.FontScale)
	}
	if c.CornerRadius < 0 || c.CornerRadius > 0.5 {
		return fmt.Errorf("%w: corner radius %v", ErrBadRatio, c.CornerRadius)
	}
	if c.OutputDir == "" {
		return errors.New("output directory is empty")
	}
	return nil
}

// fileConfig mirrors the TOML file layout. Zero values leave the base config untouched.
type fileConfig struct {
	Sizes        []int    `toml:"sizes"`
	Label        string   `toml:"label"`
	Background   string   `toml:"background"`
	Foreground   string   `toml:"foreground"`
	Output       string   `toml:"output"`
	Fonts        []string `toml:"fonts"`
	FontScale    float64  `toml:"font_scale"`
	CornerRadius float64  `toml:"corner_radius"`
}

// LoadConfig decodes the TOML file at path and applies its values on top of base.
// Font files listed in the file are tried before the fonts of base.
//
// Example:
//
//	sizes = [192, 512]
//	label = "POS"
//	background = "#2563eb"
//	foreground = "#fff"
//	fonts = ["./assets/Inter-Bold.ttf"]
func LoadConfig(path string, base Config) (Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return base, fmt.Errorf("could not decode the config file %s: %w", path, err)
	}

	cfg := base
	if len(fc.Sizes) > 0 {
		cfg.Sizes = append([]int(nil), fc.Sizes...)
	}
	if fc.Label != "" {
		cfg.Theme.Label = fc.Label
	}
	if fc.Background != "" {
		c, err := utils.HexToRGBA(fc.Background)
		if err != nil {
			return base, fmt.Errorf("background: %w", err)
		}
		cfg.Theme.Background = c
	}
	if fc.Foreground != "" {
		c, err := utils.HexToRGBA(fc.Foreground)
		if err != nil {
			return base, fmt.Errorf("foreground: %w", err)
		}
		cfg.Theme.Foreground = c
	}
	if fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if len(fc.Fonts) > 0 {
		fonts := make([]FontSource, 0, len(fc.Fonts)+len(base.Fonts))
		for _, f := range fc.Fonts {
			fonts = append(fonts, &FileFont{Path: f})
		}
		cfg.Fonts = append(fonts, base.Fonts...)
	}
	if fc.FontScale != 0 {
		cfg.FontScale = fc.FontScale
	}
	if fc.CornerRadius != 0 {
		cfg.CornerRadius = fc.CornerRadius
	}
	return cfg, nil
}
