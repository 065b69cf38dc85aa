// Package raster renders scene documents to plain image.RGBA frames with
// no GPU and no window, so frames can be produced headless, out of order,
// and in parallel.
//
// The entry point is [Renderer]: give it a validated document and ask for
// any frame by number.
//
//	r, err := raster.NewRenderer(doc)
//	if err != nil { ... }
//	img, err := r.RenderFrame(120)
//
// RenderFrame is safe for concurrent use; every call draws onto a fresh
// canvas and the renderer's shared state (resolved configs, font faces,
// prebuilt QR codes) is read-only or internally locked. The same frame
// number always produces identical pixels.
//
// Strokes and fills rasterize through golang.org/x/image/vector. Text is
// drawn with the Go font family via golang.org/x/image/font/opentype.
// Effect rotation applies to vector geometry (stickmen, shapes, icons);
// text and QR codes honor translation, scale, and opacity only.
package raster
