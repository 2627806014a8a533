package rawfb

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a fixed-size RGB pixel buffer stored row-major.
//
// A Pixmap is allocated once and then cleared and redrawn in place; none of
// its drawing methods allocate after the first flood fill has sized the
// scratch stack. A Pixmap is not safe for concurrent use.
type Pixmap struct {
	width  int
	height int
	data   []RGB

	// stack is scratch space reused by FloodFill.
	stack []Point
}

// NewPixmap creates a new pixmap with the given dimensions.
// Non-positive dimensions produce an empty pixmap on which every write is a no-op.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]RGB, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixels, row by row.
func (p *Pixmap) Data() []RGB {
	return p.data
}

// inside reports whether (x, y) addresses a pixel of p.
func (p *Pixmap) inside(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel sets the color of a single pixel.
// Positions outside the pixmap are silently ignored.
func (p *Pixmap) SetPixel(pt Point, c RGB) {
	if !p.inside(pt.X, pt.Y) {
		return
	}
	p.data[pt.Y*p.width+pt.X] = c
}

// Pixel returns the color at pt and whether pt lies inside the pixmap.
func (p *Pixmap) Pixel(pt Point) (RGB, bool) {
	if !p.inside(pt.X, pt.Y) {
		return RGB{}, false
	}
	return p.data[pt.Y*p.width+pt.X], true
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGB) {
	for i := range p.data {
		p.data[i] = c
	}
}

// ClearRect fills the part of r that overlaps the pixmap.
func (p *Pixmap) ClearRect(r image.Rectangle, c RGB) {
	r = r.Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.data[y*p.width : (y+1)*p.width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = c
		}
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.data {
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c, _ := p.Pixel(Pt(x, y))
	return c
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
