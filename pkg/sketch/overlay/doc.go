// Package overlay implements the additive triangle overlay sketch.
//
// Each frame composites several triangles onto an index buffer. Every
// triangle spans two adjacent canvas sides: one random point on a starting
// side, one on the next side clockwise, and the corner the two sides share.
// Triangles are drawn with intensity 1 and added together, so each pixel's
// value counts the triangles covering it. The count, modulo the palette
// length, selects the pixel's colour.
//
// # Sides
//
// Sides run clockwise: top, right, bottom, left. [NextSide] wraps left back
// to top, so a starting side and its successor are always adjacent and
// [CornerPoint] is always well defined.
//
// # Remap
//
// [Remap] reads the index buffer and writes colours into a separate
// destination. The index buffer is left untouched, which keeps the
// operation idempotent: remapping the same buffer with the same palette
// again produces the same pixels.
package overlay
