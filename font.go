package pwaicon

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// DefaultFaceName names the bitmap face returned when no font source could be loaded.
const DefaultFaceName = "basicfont 7x13"

// FontSource is a candidate in the font fallback chain.
type FontSource interface {
	// Name identifies the source in log messages.
	Name() string
	// Face returns a face whose em size is px pixels.
	Face(px float64) (font.Face, error)
}

// SystemFont looks up a font file by its name in the platform font directories.
type SystemFont struct {
	File string

	parsed *opentype.Font
}

func (f *SystemFont) Name() string { return f.File }

func (f *SystemFont) Face(px float64) (font.Face, error) {
	if f.parsed == nil {
		path, err := findfont.Find(f.File)
		if err != nil {
			return nil, fmt.Errorf("system font %s: %w", f.File, err)
		}
		otf, err := parseFontFile(path)
		if err != nil {
			return nil, err
		}
		f.parsed = otf
	}
	return newFace(f.parsed, px)
}

// FileFont loads a TrueType or OpenType font from an explicit path.
type FileFont struct {
	Path string

	parsed *opentype.Font
}

func (f *FileFont) Name() string { return f.Path }

func (f *FileFont) Face(px float64) (font.Face, error) {
	if f.parsed == nil {
		otf, err := parseFontFile(f.Path)
		if err != nil {
			return nil, err
		}
		f.parsed = otf
	}
	return newFace(f.parsed, px)
}

// EmbeddedFont parses a font kept in memory.
type EmbeddedFont struct {
	Label string
	TTF   []byte

	parsed *opentype.Font
}

// GoBold returns the Go Bold typeface bundled with golang.org/x/image.
func GoBold() *EmbeddedFont {
	return &EmbeddedFont{Label: "Go Bold", TTF: gobold.TTF}
}

func (f *EmbeddedFont) Name() string { return f.Label }

func (f *EmbeddedFont) Face(px float64) (font.Face, error) {
	if f.parsed == nil {
		otf, err := opentype.Parse(f.TTF)
		if err != nil {
			return nil, fmt.Errorf("embedded font %s: %w", f.Label, err)
		}
		f.parsed = otf
	}
	return newFace(f.parsed, px)
}

// DefaultFonts returns the default fallback chain: Arial Bold, DejaVu Sans Bold,
// then the embedded Go Bold face.
func DefaultFonts() []FontSource {
	return []FontSource{
		&SystemFont{File: "arialbd.ttf"},
		&SystemFont{File: "DejaVuSans-Bold.ttf"},
		GoBold(),
	}
}

// ResolveFace walks the sources in order and returns the first face that loads,
// together with the name of its source. It never fails: when every source is
// unusable the fixed size basicfont face is returned.
func ResolveFace(sources []FontSource, px float64, logger *log.Logger) (font.Face, string) {
	for _, src := range sources {
		face, err := src.Face(px)
		if err == nil {
			return face, src.Name()
		}
		if logger != nil {
			logger.Debug("font unavailable, trying next", "font", src.Name(), "err", err)
		}
	}
	return basicfont.Face7x13, DefaultFaceName
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read the font file: %w", err)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse the font file %s: %w", path, err)
	}
	return otf, nil
}

func newFace(otf *opentype.Font, px float64) (font.Face, error) {
	if px <= 0 {
		return nil, errors.New("font size must be positive")
	}
	return opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
