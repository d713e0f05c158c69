package gui

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ScoreFontSize is the point size of the score text.
const ScoreFontSize = 20

// LoadFace parses a TrueType or OpenType font file into a face.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gui: read font: %w", err)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gui: parse font: %w", err)
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gui: font face: %w", err)
	}
	return f, nil
}

// fallbackFace is used when no font file can be loaded.
func fallbackFace() font.Face {
	return basicfont.Face7x13
}
