package utils

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrBadColor is returned when a hex color string cannot be parsed.
var ErrBadColor = errors.New("invalid hex color")

// Contains returns true if a value is available in the collection.
func Contains[T comparable](slice []T, value T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// HexToRGBA converts a hex color string (#rgb or #rrggbb, leading # optional)
// to an opaque color.NRGBA.
func HexToRGBA(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// RGBAToHex formats the color channels as #rrggbb, ignoring the alpha.
func RGBAToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
