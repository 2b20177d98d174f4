package grid

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"
)

// testFont wraps the fixed-metrics basicfont face: every glyph advances
// 7px, so padding expectations in these tests are exact.
func testFont() Font {
	return Font{Face: basicfont.Face7x13, Size: 13}
}

func hasInk(t *testing.T, img image.Image, rect image.Rectangle) bool {
	t.Helper()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if pixelAt(t, img, x, y) != white {
				return true
			}
		}
	}
	return false
}

func TestAnnotation_EmptyLabels(t *testing.T) {
	images, _ := createTiles(4, 10, 10)

	tests := []struct {
		name string
		ann  *Annotation
	}{
		{"empty column labels", &Annotation{RowLabels: []string{"r"}, Font: testFont()}},
		{"empty row labels", &Annotation{ColumnLabels: []string{"c"}, Font: testFont()}},
		{"both empty", &Annotation{Font: testFont()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ByColumns(images, 2, 2, tt.ann)
			if !errors.Is(err, ErrInvalidAnnotation) {
				t.Errorf("error: got %v, want ErrInvalidAnnotation", err)
			}
			if result != nil {
				t.Error("no canvas should be returned on validation failure")
			}
		})
	}
}

func TestAnnotation_CanvasSize(t *testing.T) {
	images, _ := createTiles(4, 10, 10)
	ann := &Annotation{
		ColumnLabels: []string{"a", "b"},
		RowLabels:    []string{"r1", "row2"}, // widest advance: 4*7 = 28px
		Font:         testFont(),
	}

	result, err := ByColumns(images, 2, 2, ann)
	if err != nil {
		t.Fatalf("ByColumns failed: %v", err)
	}

	// margin = 13/2 = 6, leftPadding = 28+12 = 40, topPadding = 13+12 = 25.
	// Grid alone is 22x22.
	b := result.Bounds()
	if b.Dx() != 62 || b.Dy() != 47 {
		t.Errorf("canvas size: got %dx%d, want 62x47", b.Dx(), b.Dy())
	}
}

func TestAnnotation_GridPreservedAtBottomRight(t *testing.T) {
	images, _ := createTiles(4, 10, 10)
	ann := &Annotation{
		ColumnLabels: []string{"a", "b"},
		RowLabels:    []string{"r1", "row2"},
		Font:         testFont(),
	}

	plain, err := ByColumns(images, 2, 2, nil)
	if err != nil {
		t.Fatalf("ByColumns without annotation failed: %v", err)
	}
	annotated, err := ByColumns(images, 2, 2, ann)
	if err != nil {
		t.Fatalf("ByColumns with annotation failed: %v", err)
	}

	const leftPadding, topPadding = 40, 25
	for y := 0; y < 22; y++ {
		for x := 0; x < 22; x++ {
			want := pixelAt(t, plain, x, y)
			got := pixelAt(t, annotated, leftPadding+x, topPadding+y)
			if got != want {
				t.Fatalf("grid pixel (%d,%d) changed: got (%d,%d,%d), want (%d,%d,%d)",
					x, y, got.R, got.G, got.B, want.R, want.G, want.B)
			}
		}
	}
}

func TestAnnotation_LabelsAreDrawn(t *testing.T) {
	images, _ := createTiles(4, 10, 10)
	ann := &Annotation{
		ColumnLabels: []string{"a", "b"},
		RowLabels:    []string{"r1", "row2"},
		Font:         testFont(),
	}

	result, err := ByColumns(images, 2, 2, ann)
	if err != nil {
		t.Fatalf("ByColumns failed: %v", err)
	}

	const leftPadding, topPadding = 40, 25

	// Each column band along the top edge carries ink.
	if !hasInk(t, result, image.Rect(leftPadding, 0, leftPadding+10, topPadding)) {
		t.Error("first column band should contain label ink")
	}
	if !hasInk(t, result, image.Rect(leftPadding+12, 0, leftPadding+22, topPadding)) {
		t.Error("second column band should contain label ink")
	}

	// Each row band along the left edge carries ink.
	if !hasInk(t, result, image.Rect(0, topPadding, leftPadding, topPadding+10)) {
		t.Error("first row band should contain label ink")
	}
	if !hasInk(t, result, image.Rect(0, topPadding+12, leftPadding, topPadding+22)) {
		t.Error("second row band should contain label ink")
	}
}

func TestAnnotation_FewerLabelsThanBands(t *testing.T) {
	images, _ := createTiles(4, 10, 10)
	ann := &Annotation{
		ColumnLabels: []string{"a"}, // one label, two column bands
		RowLabels:    []string{"r"}, // one label, two row bands
		Font:         testFont(),
	}

	result, err := ByColumns(images, 2, 2, ann)
	if err != nil {
		t.Fatalf("ByColumns failed: %v", err)
	}

	// leftPadding = 7+12 = 19, topPadding = 25.
	b := result.Bounds()
	if b.Dx() != 41 || b.Dy() != 47 {
		t.Fatalf("canvas size: got %dx%d, want 41x47", b.Dx(), b.Dy())
	}

	if !hasInk(t, result, image.Rect(19, 0, 29, 25)) {
		t.Error("first column band should contain label ink")
	}
	// Bands without a label stay blank.
	if hasInk(t, result, image.Rect(31, 0, 41, 25)) {
		t.Error("second column band should stay white")
	}
	if !hasInk(t, result, image.Rect(0, 25, 19, 35)) {
		t.Error("first row band should contain label ink")
	}
	if hasInk(t, result, image.Rect(0, 37, 19, 47)) {
		t.Error("second row band should stay white")
	}
}

func TestAnnotation_CenteredWithinBand(t *testing.T) {
	images, _ := createTiles(1, 40, 40)
	ann := &Annotation{
		ColumnLabels: []string{"ab"}, // 14px of advance in a 40px band
		RowLabels:    []string{"ab"},
		Font:         testFont(),
	}

	result, err := ByColumns(images, 0, 1, ann)
	if err != nil {
		t.Fatalf("ByColumns failed: %v", err)
	}

	// leftPadding = 14+12 = 26, topPadding = 25. The column band spans
	// x in [26,66); ink should sit in its middle third, not at the edges.
	if hasInk(t, result, image.Rect(26, 0, 33, 25)) {
		t.Error("column label should not touch the left edge of its band")
	}
	if hasInk(t, result, image.Rect(59, 0, 66, 25)) {
		t.Error("column label should not touch the right edge of its band")
	}
	if !hasInk(t, result, image.Rect(33, 0, 59, 25)) {
		t.Error("column label should sit in the middle of its band")
	}
}
