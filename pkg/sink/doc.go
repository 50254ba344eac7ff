// Package sink encodes sketch frames into output artifacts.
//
// [RenderPNG] produces the image itself; [RenderJSON] produces a manifest
// describing the frame (seed, palette, shapes or washes) so a render can be
// identified and reproduced later.
//
// Both renderers take functional options:
//
//	png, err := sink.RenderPNG(frame, sink.WithScale(2))
//	manifest, err := sink.RenderJSON(frame, sink.WithJSONSeed(seed))
package sink
