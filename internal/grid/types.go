package grid

import "golang.org/x/image/font"

// Annotation describes the optional labels drawn around a composed grid:
// one label per column band along the top edge and one per row band along
// the left edge. Labels are consumed by band index; bands past the end of
// a label slice stay blank. Both slices must be non-empty when an
// annotation is requested.
type Annotation struct {
	ColumnLabels []string
	RowLabels    []string
	Font         Font
}

// Font pairs a glyph source with the point size it was created at.
// font.Face does not expose its size, and the annotation layout derives
// its margins and top padding from it.
type Font struct {
	Face font.Face
	Size int
}
