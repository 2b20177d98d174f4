// Package grid arranges equally-sized raster images into a rectangular
// grid for visual comparison, optionally surrounded by centered row and
// column labels.
//
// The tile size is taken from the first image in the sequence. Images
// whose size differs are cropped to the tile size from their top-left
// corner before placement; cropping allocates a new image and never
// mutates the source. Images smaller than the tile size are placed as-is.
//
// # Coordinate System
//
// Tiles are placed left-to-right, top-to-bottom in row-major order
// starting at (0,0), with a fixed pixel gap between adjacent tiles.
// (0,0) is the top-left corner, X increases rightward, Y downward.
//
// # Thread Safety
//
// All operations are pure transforms over the images they are given and
// the canvases they allocate themselves. Concurrent calls are safe as
// long as the caller does not mutate an input image while a call that
// references it is in flight.
package grid
