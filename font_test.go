package pwaicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestFont_EmbeddedFace(t *testing.T) {
	face, err := GoBold().Face(32)
	require.NoError(t, err)
	defer face.Close()

	assert.Positive(t, face.Metrics().Height.Ceil())
}

func TestFont_InvalidSize(t *testing.T) {
	_, err := GoBold().Face(0)
	assert.Error(t, err)
}

func TestFont_MissingSources(t *testing.T) {
	_, err := (&SystemFont{File: "pwaicon-missing-font.ttf"}).Face(12)
	assert.Error(t, err)

	_, err = (&FileFont{Path: "/nonexistent/pwaicon.ttf"}).Face(12)
	assert.Error(t, err)

	_, err = (&EmbeddedFont{Label: "junk", TTF: []byte("not a font")}).Face(12)
	assert.Error(t, err)
}

func TestFont_ResolveFaceFallsBackInOrder(t *testing.T) {
	sources := []FontSource{
		&SystemFont{File: "pwaicon-missing-preferred.ttf"},
		&SystemFont{File: "pwaicon-missing-secondary.ttf"},
		GoBold(),
	}

	face, name := ResolveFace(sources, 24, nil)
	require.NotNil(t, face)
	defer face.Close()

	assert.Equal(t, "Go Bold", name)
}

func TestFont_ResolveFaceNeverFails(t *testing.T) {
	sources := []FontSource{
		&FileFont{Path: "/nonexistent/pwaicon.ttf"},
		&EmbeddedFont{Label: "junk", TTF: []byte("not a font")},
	}

	face, name := ResolveFace(sources, 24, nil)
	assert.Equal(t, DefaultFaceName, name)
	assert.Equal(t, basicfont.Face7x13, face)

	face, name = ResolveFace(nil, 24, nil)
	assert.Equal(t, DefaultFaceName, name)
	assert.NotNil(t, face)
}
