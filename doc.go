// Package rawfb renders 2D scenes straight into a memory-mapped display
// surface using software rasterization.
//
// # Overview
//
// rawfb needs no windowing system. Drawing happens on a [Pixmap], an RGB pixel
// buffer allocated once and reused every frame. Scene content is expressed as
// calls to a small set of primitives:
//
//   - [DrawLine]: integer Bresenham line
//   - [DrawLineWidth]: antialiased variable-width line
//   - [DrawCircle], [DrawHalfCircle]: midpoint circle outlines
//   - [FloodFill]: 4-connected region fill
//   - [DrawPolygon], [FillPolygon]: closed outlines and scanline fills
//
// # Compositing
//
// A frame is assembled from two pixmaps. The canvas holds the scene, the
// composition frame covers the whole display:
//
//	frame := rawfb.NewPixmap(1366, 768)
//	canvas := rawfb.NewPixmap(1000, 500)
//
//	frame.Clear(rawfb.Gray(33))
//	canvas.Clear(rawfb.Black)
//	rawfb.DrawCircle(canvas, rawfb.Pt(500, 250), 40, rawfb.White)
//
//	rawfb.Overlay(frame, canvas, rawfb.Pt(683, 384), rawfb.OverlayOptions{
//	    Border:      true,
//	    BorderColor: rawfb.Gray(99),
//	})
//	rawfb.FlushToSurface(frame, dev)
//
// [FlushToSurface] writes B, G, R, A bytes at offset x*bpp + y*stride of any
// [Surface]. Concrete surfaces (Linux fbdev, in-memory) live in the surface
// sub-package.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Coordinates may be negative or beyond the buffer; every write is clipped.
package rawfb
