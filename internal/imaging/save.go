package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Save encodes img to path, picking the format from the file extension
// (.png, .jpg, .jpeg, .gif, .tif, .tiff, .bmp).
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
