// Package fonts loads the TrueType/OpenType faces used for grid
// annotations. Faces can come from an explicit file, from the system font
// directories by name, or from the embedded Go Regular fallback that ships
// with the binary.
package fonts

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Load parses the font file at path and returns a face at the given point
// size.
func Load(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return newFace(data, size)
}

// Find locates a font by file name (e.g. "DejaVuSans.ttf") in the system
// font directories and returns a face at the given point size.
func Find(name string, size float64) (font.Face, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, fmt.Errorf("font %q not found: %w", name, err)
	}
	return Load(path, size)
}

// Default returns a face for the embedded Go Regular font at the given
// point size. It needs no files on disk.
func Default(size float64) (font.Face, error) {
	return newFace(goregular.TTF, size)
}

func newFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
