package grid

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ByColumns composes the images into a grid with at most maxColumns
// columns; the row count follows by ceiling division. The tile size is
// the first image's size and gap is the pixel spacing between adjacent
// tiles. If ann is non-nil the grid is surrounded by centered row and
// column labels.
func ByColumns(images []image.Image, gap, maxColumns int, ann *Annotation) (image.Image, error) {
	if err := validate(images, gap, maxColumns, "max columns"); err != nil {
		return nil, err
	}
	maxRows := ceilDiv(len(images), maxColumns)
	return compose(images, gap, maxColumns, maxRows, ann)
}

// ByRows composes the images into a grid with at most maxRows rows; the
// column count follows by ceiling division. See ByColumns for the
// remaining semantics.
func ByRows(images []image.Image, gap, maxRows int, ann *Annotation) (image.Image, error) {
	if err := validate(images, gap, maxRows, "max rows"); err != nil {
		return nil, err
	}
	maxColumns := ceilDiv(len(images), maxRows)
	return compose(images, gap, maxColumns, maxRows, ann)
}

func validate(images []image.Image, gap, maxCount int, name string) error {
	if len(images) == 0 {
		return fmt.Errorf("no images provided")
	}
	if maxCount < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", name, maxCount)
	}
	if gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", gap)
	}
	return nil
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

func compose(images []image.Image, gap, maxColumns, maxRows int, ann *Annotation) (image.Image, error) {
	tileW := images[0].Bounds().Dx()
	tileH := images[0].Bounds().Dy()
	gridW := tileW*maxColumns + gap*(maxColumns-1)
	gridH := tileH*maxRows + gap*(maxRows-1)

	canvas := imaging.New(gridW, gridH, color.White)
	placeTiles(canvas, images, tileW, tileH, maxColumns, gap)

	if ann == nil {
		return canvas, nil
	}
	return annotate(gridInfo{
		image: canvas,
		gap:   gap,
		tileW: tileW,
		tileH: tileH,
		cols:  maxColumns,
		rows:  maxRows,
	}, ann)
}

// placeTiles pastes each image into its row-major cell. Images whose size
// differs from the tile size are cropped to it first; the crop allocates
// a new image, so sources are never mutated. An image smaller than the
// tile size survives the crop unchanged and is pasted as-is.
func placeTiles(dst draw.Image, images []image.Image, tileW, tileH, maxColumns, gap int) {
	for i, img := range images {
		tile := img
		if b := img.Bounds(); b.Dx() != tileW || b.Dy() != tileH {
			tile = imaging.Crop(img, image.Rect(0, 0, tileW, tileH))
		}
		x := (i % maxColumns) * (tileW + gap)
		y := (i / maxColumns) * (tileH + gap)
		tb := tile.Bounds()
		draw.Draw(dst, image.Rect(x, y, x+tb.Dx(), y+tb.Dy()), tile, tb.Min, draw.Src)
	}
}
