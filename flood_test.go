package rawfb

import (
	"slices"
	"testing"
)

// boxed returns a w x h black pixmap with a rectangle outline in c from
// (x0, y0) to (x1, y1).
func boxed(w, h, x0, y0, x1, y1 int, c RGB) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Clear(Black)
	DrawPolygon(pm, Polygon{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, c)
	return pm
}

func TestFloodFillEnclosed(t *testing.T) {
	pm := boxed(12, 12, 2, 2, 8, 8, Red)
	FloodFill(pm, Pt(5, 5), Red)

	for y := range 12 {
		for x := range 12 {
			got, _ := pm.Pixel(Pt(x, y))
			inBox := x >= 2 && x <= 8 && y >= 2 && y <= 8
			if inBox && got != Red {
				t.Errorf("Pixel(%d, %d) = %v, want %v", x, y, got, Red)
			}
			if !inBox && got != Black {
				t.Errorf("Pixel(%d, %d) = %v outside the border, want %v", x, y, got, Black)
			}
		}
	}
}

func TestFloodFillIdempotent(t *testing.T) {
	pm := boxed(12, 12, 1, 1, 9, 6, Green)
	pm.SetPixel(Pt(4, 3), Blue)
	FloodFill(pm, Pt(3, 3), Green)

	first := slices.Clone(pm.Data())
	FloodFill(pm, Pt(3, 3), Green)
	if !slices.Equal(first, pm.Data()) {
		t.Error("second FloodFill with the same target changed the pixmap")
	}
}

func TestFloodFillDiagonalBoundary(t *testing.T) {
	// An 8-connected diagonal outline blocks a 4-connected fill.
	pm := NewPixmap(20, 20)
	pm.Clear(Black)
	DrawPolygon(pm, Polygon{{10, 1}, {18, 10}, {10, 18}, {1, 10}}, White)
	FloodFill(pm, Pt(10, 10), White)

	for _, p := range []Point{{0, 0}, {19, 0}, {0, 19}, {19, 19}, {3, 3}} {
		if got, _ := pm.Pixel(p); got != Black {
			t.Errorf("Pixel(%v) = %v, fill leaked through the diagonal outline", p, got)
		}
	}
	if got, _ := pm.Pixel(Pt(10, 4)); got != White {
		t.Errorf("Pixel(10, 4) = %v, interior not filled", got)
	}
}

func TestFloodFillNoop(t *testing.T) {
	tests := []struct {
		name  string
		start Point
	}{
		{"seed already target", Pt(2, 2)},
		{"seed left of pixmap", Pt(-1, 5)},
		{"seed below pixmap", Pt(5, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := boxed(12, 12, 2, 2, 8, 8, Red)
			before := slices.Clone(pm.Data())
			FloodFill(pm, tt.start, Red)
			if !slices.Equal(before, pm.Data()) {
				t.Errorf("FloodFill(%v) modified the pixmap", tt.start)
			}
		})
	}
}

func TestFloodFillUnenclosedFillsReachable(t *testing.T) {
	pm := NewPixmap(6, 4)
	pm.Clear(Black)
	FloodFill(pm, Pt(0, 0), Yellow)
	for i, c := range pm.Data() {
		if c != Yellow {
			t.Fatalf("pixel %d = %v, want the whole pixmap filled", i, c)
		}
	}
}

func TestFloodFillLargeRegion(t *testing.T) {
	pm := NewPixmap(1000, 1000)
	pm.Clear(Black)
	FloodFill(pm, Pt(500, 500), White)
	if got, _ := pm.Pixel(Pt(999, 999)); got != White {
		t.Errorf("corner = %v after filling a 1000x1000 region", got)
	}
}

func TestFloodFillReusesStack(t *testing.T) {
	pm := NewPixmap(64, 64)
	border := Polygon{{4, 4}, {60, 8}, {50, 60}, {8, 40}}
	allocs := testing.AllocsPerRun(10, func() {
		pm.Clear(Black)
		DrawPolygon(pm, border, Red)
		FloodFill(pm, Pt(30, 30), Red)
	})
	if allocs != 0 {
		t.Errorf("steady-state fill allocated %v times per run, want 0", allocs)
	}
}

func BenchmarkFloodFill(b *testing.B) {
	pm := NewPixmap(1000, 500)
	b.ReportAllocs()
	for b.Loop() {
		pm.Clear(Black)
		FloodFill(pm, Pt(500, 250), White)
	}
}
