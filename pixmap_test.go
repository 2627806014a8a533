package rawfb

import (
	"image"
	"path/filepath"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"small", 10, 10, 10, 10},
		{"wide", 1000, 1, 1000, 1},
		{"screen", 1366, 768, 1366, 768},
		{"negative", -5, 3, 0, 3},
		{"empty", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(tt.width, tt.height)
			if pm.Width() != tt.wantW || pm.Height() != tt.wantH {
				t.Errorf("NewPixmap(%d, %d) = %dx%d, want %dx%d",
					tt.width, tt.height, pm.Width(), pm.Height(), tt.wantW, tt.wantH)
			}
			if len(pm.Data()) != tt.wantW*tt.wantH {
				t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), tt.wantW*tt.wantH)
			}
		})
	}
}

func TestSetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := RGB{10, 20, 30}
	pm.SetPixel(Pt(3, 7), c)

	got, ok := pm.Pixel(Pt(3, 7))
	if !ok || got != c {
		t.Errorf("Pixel(3, 7) = %v, %v, want %v, true", got, ok, c)
	}
	if got := pm.Data()[7*10+3]; got != c {
		t.Errorf("row-major layout: Data()[73] = %v, want %v", got, c)
	}
}

// TestSetPixel_OutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestSetPixel_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	oob := []Point{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100}, {10, 10},
	}
	for _, p := range oob {
		pm.SetPixel(p, White)
		if _, ok := pm.Pixel(p); ok {
			t.Errorf("Pixel(%v) reported inside", p)
		}
	}

	for i, v := range pm.Data() {
		if v != Black {
			t.Fatalf("out-of-bounds write modified pixel %d: got %v", i, v)
		}
	}
}

func TestClear(t *testing.T) {
	pm := NewPixmap(7, 5)
	pm.SetPixel(Pt(1, 1), Red)
	pm.Clear(Gray(33))
	for i, v := range pm.Data() {
		if v != Gray(33) {
			t.Fatalf("pixel %d = %v after Clear, want %v", i, v, Gray(33))
		}
	}
}

func TestClearRect(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)
	pm.ClearRect(image.Rect(-5, 8, 3, 20), Blue)

	for y := range 10 {
		for x := range 10 {
			got, _ := pm.Pixel(Pt(x, y))
			want := Black
			if x < 3 && y >= 8 {
				want = Blue
			}
			if got != want {
				t.Errorf("Pixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestToImage(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.Clear(Black)
	pm.SetPixel(Pt(2, 1), RGB{1, 2, 3})

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	c := img.RGBAAt(2, 1)
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 255 {
		t.Errorf("RGBAAt(2, 1) = %v, want {1 2 3 255}", c)
	}
	if a := img.RGBAAt(0, 0).A; a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
}

func TestPixmapImageInterface(t *testing.T) {
	var img image.Image = NewPixmap(3, 3)
	if img.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	_, _, _, a := img.At(1, 1).RGBA()
	if a != 0xffff {
		t.Errorf("At(1, 1) alpha = %d, want 0xffff", a)
	}
}

func TestSavePNG(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(Cyan)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

func BenchmarkClear(b *testing.B) {
	pm := NewPixmap(1366, 768)
	b.ReportAllocs()
	for b.Loop() {
		pm.Clear(Gray(33))
	}
}
