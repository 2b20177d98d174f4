// Package imaging provides the file-level image services the grid
// composer is built on: loading images through a thread-safe cache and
// saving composed canvases.
//
// Decoding supports PNG, JPEG, GIF, and WebP. Encoding is chosen from the
// output file extension. All operations work with standard Go image.Image
// types; (0,0) is the top-left corner, X increases rightward, Y downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Save is stateless and
// can be called concurrently for different paths.
package imaging
