package grid

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidAnnotation reports an annotation whose column or row label
// slice is empty. Both axes need at least one label.
var ErrInvalidAnnotation = errors.New("column or row labels are empty")

// gridInfo carries a composed grid plus the geometry needed to align
// label bands with its tiles.
type gridInfo struct {
	image image.Image
	gap   int
	tileW int
	tileH int
	cols  int
	rows  int
}

// annotate returns a new canvas holding the grid expanded by a label
// margin on the top and left. Column labels are centered over each column
// band, row labels within each row band. Validation happens before any
// allocation; on failure the grid is left untouched and no canvas is
// returned.
func annotate(info gridInfo, ann *Annotation) (image.Image, error) {
	if len(ann.ColumnLabels) == 0 || len(ann.RowLabels) == 0 {
		return nil, ErrInvalidAnnotation
	}

	gridW := info.image.Bounds().Dx()
	gridH := info.image.Bounds().Dy()

	margin := ann.Font.Size / 2
	leftPadding := maxLabelWidth(ann.Font.Face, ann.RowLabels) + 2*margin
	topPadding := ann.Font.Size + 2*margin

	canvas := imaging.New(gridW+leftPadding, gridH+topPadding, color.White)

	// The grid sits flush against the bottom-right corner, leaving an
	// L-shaped label margin on the top and left.
	draw.Draw(canvas,
		image.Rect(leftPadding, topPadding, leftPadding+gridW, topPadding+gridH),
		info.image, info.image.Bounds().Min, draw.Src)

	// Exactly one band per grid column and row, regardless of how many
	// labels were given. Bands without a label stay blank.
	for c := 0; c < info.cols; c++ {
		if c < len(ann.ColumnLabels) {
			x0 := leftPadding + c*(info.tileW+info.gap)
			band := image.Rect(x0, 0, x0+info.tileW, topPadding)
			drawCentered(canvas, band, ann.ColumnLabels[c], ann.Font.Face)
		}
	}
	for r := 0; r < info.rows; r++ {
		if r < len(ann.RowLabels) {
			y0 := topPadding + r*(info.tileH+info.gap)
			band := image.Rect(0, y0, leftPadding, y0+info.tileH)
			drawCentered(canvas, band, ann.RowLabels[r], ann.Font.Face)
		}
	}

	return canvas, nil
}

// maxLabelWidth returns the widest advance width among the labels,
// rounded up to whole pixels.
func maxLabelWidth(face font.Face, labels []string) int {
	widest := 0
	for _, s := range labels {
		if w := font.MeasureString(face, s).Ceil(); w > widest {
			widest = w
		}
	}
	return widest
}

// drawCentered draws s in black, centered within band. The text box is
// measured from a top-left text origin with the face's left and top
// bearings included, and the pen position keeps those bearings, so the
// ink lands where the measurement says it does.
func drawCentered(dst draw.Image, band image.Rectangle, s string, face font.Face) {
	bounds, _ := font.BoundString(face, s)
	ascent := face.Metrics().Ascent

	// Bounding box max corner as seen from a top-left text origin.
	right := bounds.Max.X.Ceil()
	bottom := (ascent + bounds.Max.Y).Ceil()

	x := (band.Min.X + band.Max.X - right) / 2
	y := (band.Min.Y + band.Max.Y - bottom) / 2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + ascent},
	}
	d.DrawString(s)
}
