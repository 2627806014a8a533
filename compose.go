package rawfb

// Surface is a writable device pixel store, typically a memory-mapped
// display. The core borrows it for the duration of one FlushToSurface call.
type Surface interface {
	// Width returns the visible width in pixels.
	Width() int

	// Height returns the visible height in pixels.
	Height() int

	// Stride returns the number of bytes per row.
	Stride() int

	// BytesPerPixel returns the distance in bytes between horizontally
	// adjacent pixels (bits per pixel / 8).
	BytesPerPixel() int

	// Pix returns the raw pixel memory.
	Pix() []byte
}

// OverlayOptions controls how Overlay places a source pixmap.
type OverlayOptions struct {
	// Border draws a one-pixel outline just outside the placed region.
	Border bool

	// BorderColor is the color of the outline.
	BorderColor RGB
}

// Overlay copies every pixel of src into dst, centered at center: the
// top-left of src lands on center - (w/2, h/2). Pixels falling outside dst
// are clipped.
//
// With opts.Border set, the rows directly above and below and the columns
// directly left and right of the placed region are painted in
// opts.BorderColor. The four diagonal corner pixels are left untouched.
func Overlay(dst, src *Pixmap, center Point, opts OverlayOptions) {
	w, h := src.width, src.height
	origin := center.Sub(Pt(w/2, h/2))

	for y := range h {
		row := src.data[y*w : (y+1)*w]
		for x, c := range row {
			dst.SetPixel(Pt(origin.X+x, origin.Y+y), c)
		}
	}

	if !opts.Border {
		return
	}
	for y := range h {
		dst.SetPixel(Pt(origin.X-1, origin.Y+y), opts.BorderColor)
		dst.SetPixel(Pt(origin.X+w, origin.Y+y), opts.BorderColor)
	}
	for x := range w {
		dst.SetPixel(Pt(origin.X+x, origin.Y-1), opts.BorderColor)
		dst.SetPixel(Pt(origin.X+x, origin.Y+h), opts.BorderColor)
	}
}

// FlushToSurface copies pm onto s. The pixel (x, y) is written at byte offset
// x*s.BytesPerPixel() + y*s.Stride() as Blue, Green, Red and a fully opaque
// Alpha byte.
//
// Only the area shared by pm and s is copied. Pixels whose four bytes would
// run past the end of s.Pix() are skipped.
func FlushToSurface(pm *Pixmap, s Surface) {
	pix := s.Pix()
	bpp, stride := s.BytesPerPixel(), s.Stride()
	w := min(pm.width, s.Width())
	h := min(pm.height, s.Height())

	for y := range h {
		row := pm.data[y*pm.width : y*pm.width+w]
		for x, c := range row {
			off := x*bpp + y*stride
			if off < 0 || off+4 > len(pix) {
				continue
			}
			pix[off+0] = c.B
			pix[off+1] = c.G
			pix[off+2] = c.R
			pix[off+3] = 0xff
		}
	}
}
