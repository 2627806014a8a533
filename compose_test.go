package rawfb

import "testing"

// byteSurface is a minimal in-memory Surface.
type byteSurface struct {
	w, h, stride, bpp int
	pix               []byte
}

func newByteSurface(w, h, stride, bpp int) *byteSurface {
	return &byteSurface{w: w, h: h, stride: stride, bpp: bpp, pix: make([]byte, stride*h)}
}

func (s *byteSurface) Width() int         { return s.w }
func (s *byteSurface) Height() int        { return s.h }
func (s *byteSurface) Stride() int        { return s.stride }
func (s *byteSurface) BytesPerPixel() int { return s.bpp }
func (s *byteSurface) Pix() []byte        { return s.pix }

func TestOverlayAndFlush(t *testing.T) {
	x := RGB{10, 20, 30}
	src := NewPixmap(10, 10)
	src.Clear(x)
	dst := NewPixmap(100, 100)
	dst.Clear(Black)

	Overlay(dst, src, Pt(50, 50), OverlayOptions{})

	s := newByteSurface(100, 100, 400, 4)
	FlushToSurface(dst, s)

	off := 45*4 + 45*400
	got := s.pix[off : off+4]
	if got[0] != x.B || got[1] != x.G || got[2] != x.R || got[3] != 255 {
		t.Errorf("surface bytes at (45,45) = %v, want [%d %d %d 255]", got, x.B, x.G, x.R)
	}

	off = 44*4 + 44*400
	if got := s.pix[off : off+4]; got[0] != 0 || got[3] != 255 {
		t.Errorf("surface bytes at (44,44) = %v, want black opaque", got)
	}
}

func TestOverlayPlacement(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		center       Point
		wantTopLeft  Point
		wantBotRight Point
	}{
		{"even", 10, 10, Pt(50, 50), Pt(45, 45), Pt(54, 54)},
		{"odd", 3, 5, Pt(10, 10), Pt(9, 8), Pt(11, 12)},
		{"wide", 20, 2, Pt(30, 5), Pt(20, 4), Pt(39, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewPixmap(tt.w, tt.h)
			src.Clear(White)
			dst := NewPixmap(64, 64)
			Overlay(dst, src, tt.center, OverlayOptions{})

			got := painted(dst, Black)
			if len(got) != tt.w*tt.h {
				t.Fatalf("painted %d pixels, want %d", len(got), tt.w*tt.h)
			}
			if got[0] != tt.wantTopLeft || got[len(got)-1] != tt.wantBotRight {
				t.Errorf("placed at %v..%v, want %v..%v",
					got[0], got[len(got)-1], tt.wantTopLeft, tt.wantBotRight)
			}
		})
	}
}

func TestOverlayBorder(t *testing.T) {
	src := NewPixmap(4, 4)
	src.Clear(White)
	dst := NewPixmap(20, 20)
	Overlay(dst, src, Pt(10, 10), OverlayOptions{Border: true, BorderColor: Red})

	// Placed region is (8,8)..(11,11).
	for i := 8; i <= 11; i++ {
		for _, p := range []Point{{7, i}, {12, i}, {i, 7}, {i, 12}} {
			if got, _ := dst.Pixel(p); got != Red {
				t.Errorf("border pixel %v = %v, want %v", p, got, Red)
			}
		}
	}
	for _, p := range []Point{{7, 7}, {12, 7}, {7, 12}, {12, 12}} {
		if got, _ := dst.Pixel(p); got != Black {
			t.Errorf("corner %v = %v, want untouched", p, got)
		}
	}
	if got := len(painted(dst, Black)); got != 16+16 {
		t.Errorf("painted %d pixels, want 32", got)
	}
}

func TestOverlayClipped(t *testing.T) {
	src := NewPixmap(10, 10)
	src.Clear(White)
	dst := NewPixmap(8, 8)
	Overlay(dst, src, Pt(0, 0), OverlayOptions{Border: true, BorderColor: Red})

	// Top-left lands at (-5,-5); only (0..4, 0..4) is visible, plus the
	// right and bottom border segments at x=5 and y=5.
	if got, _ := dst.Pixel(Pt(4, 4)); got != White {
		t.Errorf("Pixel(4, 4) = %v, want %v", got, White)
	}
	if got, _ := dst.Pixel(Pt(5, 2)); got != Red {
		t.Errorf("Pixel(5, 2) = %v, want border %v", got, Red)
	}
	if got, _ := dst.Pixel(Pt(6, 6)); got != Black {
		t.Errorf("Pixel(6, 6) = %v, want %v", got, Black)
	}
}

func TestFlushToSurfaceStride(t *testing.T) {
	pm := NewPixmap(4, 2)
	pm.SetPixel(Pt(1, 1), RGB{1, 2, 3})

	// Rows padded to 20 bytes.
	s := newByteSurface(4, 2, 20, 4)
	FlushToSurface(pm, s)

	off := 1*4 + 1*20
	if got := s.pix[off : off+4]; got[0] != 3 || got[1] != 2 || got[2] != 1 || got[3] != 255 {
		t.Errorf("bytes at (1,1) = %v, want [3 2 1 255]", got)
	}
	for i := 16; i < 20; i++ {
		if s.pix[i] != 0 {
			t.Errorf("row padding byte %d = %d, want untouched", i, s.pix[i])
		}
	}
}

func TestFlushToSurfaceSizeMismatch(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(White)

	small := newByteSurface(3, 2, 12, 4)
	FlushToSurface(pm, small)
	for i, b := range small.pix {
		if b != 255 {
			t.Fatalf("byte %d = %d, want 255", i, b)
		}
	}

	large := newByteSurface(20, 20, 80, 4)
	FlushToSurface(pm, large)
	if off := 15*4 + 15*80; large.pix[off+3] != 0 {
		t.Error("pixel outside the pixmap was written")
	}

	// A surface that under-reports its memory must not panic.
	short := &byteSurface{w: 10, h: 10, stride: 40, bpp: 4, pix: make([]byte, 50)}
	FlushToSurface(pm, short)
	if short.pix[44] != 255 || short.pix[48] != 0 {
		t.Errorf("short surface bytes = %v", short.pix[40:50])
	}
}

func BenchmarkFlushToSurface(b *testing.B) {
	pm := NewPixmap(1366, 768)
	s := newByteSurface(1366, 768, 1366*4, 4)
	b.ReportAllocs()
	for b.Loop() {
		FlushToSurface(pm, s)
	}
}
