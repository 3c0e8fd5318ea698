package pwaicon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
)

// IconName returns the conventional file name of an icon: icon-{size}x{size}.png.
func IconName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// Writer persists rendered icons into a directory.
type Writer struct {
	Dir string

	logger *log.Logger
}

// NewWriter returns a writer targeting dir.
func NewWriter(dir string, logger *log.Logger) *Writer {
	return &Writer{Dir: dir, logger: logger}
}

// Encode writes img to w as a PNG, keeping the alpha channel.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG,
		imaging.PNGCompressionLevel(png.DefaultCompression),
	)
}

// Write encodes img into Dir/icon-{size}x{size}.png, overwriting an existing
// file of the same name, and returns the path of the written file.
func (w *Writer) Write(img image.Image, size int) (string, error) {
	path := filepath.Join(w.Dir, IconName(size))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("unable to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not close the written file %s: %w", path, err)
	}
	if w.logger != nil {
		w.logger.Debug("icon written", "path", path)
	}
	return path, nil
}
