// Package graphics provides the geometry, color, and style primitives shared
// by every widget, and the Canvas capability the toolkit draws through.
//
// # Coordinate convention
//
// The origin is the top-left corner, +x grows right, +y grows down, and all
// logical units are float64 pixels. Every angular value in a public API is in
// degrees; compass headings are measured clockwise from north (12 o'clock).
// Canvas implementations convert to radians internally.
//
// # Color convention
//
// Colors are 8-bit ARGB packed into a uint32 (0xAARRGGBB).
//
// The Canvas interface is consumed, never owned: the toolkit issues primitive
// draw calls against it and leaves surface creation, font loading, and window
// lifecycle to the backend. A software reference backend lives in pkg/raster,
// and PictureRecorder records draw passes for inspection and replay.
package graphics
