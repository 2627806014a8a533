package rawfb

import (
	"slices"
	"testing"
)

// offsets returns the painted pixels of pm relative to center.
func offsets(pm *Pixmap, center Point) map[Point]bool {
	out := make(map[Point]bool)
	for _, p := range painted(pm, Black) {
		out[p.Sub(center)] = true
	}
	return out
}

func TestDrawCircleSmall(t *testing.T) {
	tests := []struct {
		radius int
		want   []Point
	}{
		{0, []Point{{0, 0}}},
		{1, []Point{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}},
		{2, []Point{
			{-2, -1}, {-2, 0}, {-2, 1}, {-1, -2}, {-1, 2}, {0, -2},
			{0, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 0}, {2, 1},
		}},
	}
	for _, tt := range tests {
		center := Pt(5, 5)
		pm := NewPixmap(11, 11)
		DrawCircle(pm, center, tt.radius, White)
		got := offsets(pm, center)
		if len(got) != len(tt.want) {
			t.Errorf("radius %d: painted %d pixels, want %d", tt.radius, len(got), len(tt.want))
		}
		for _, p := range tt.want {
			if !got[p] {
				t.Errorf("radius %d: offset %v not painted", tt.radius, p)
			}
		}
	}
}

func TestDrawCircleSymmetric(t *testing.T) {
	for r := 1; r <= 40; r++ {
		center := Pt(50, 50)
		pm := NewPixmap(101, 101)
		DrawCircle(pm, center, r, White)
		got := offsets(pm, center)
		for p := range got {
			if !got[Pt(-p.X, p.Y)] {
				t.Fatalf("radius %d: %v has no mirror across the vertical axis", r, p)
			}
			if !got[Pt(p.X, -p.Y)] {
				t.Fatalf("radius %d: %v has no mirror across the horizontal axis", r, p)
			}
		}
	}
}

func TestDrawCircleClosed(t *testing.T) {
	for r := 1; r <= 40; r++ {
		center := Pt(50, 50)
		pm := NewPixmap(101, 101)
		DrawCircle(pm, center, r, White)
		got := offsets(pm, center)
		for p := range got {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && got[Pt(p.X+dx, p.Y+dy)] {
						neighbors++
					}
				}
			}
			if neighbors < 2 {
				t.Fatalf("radius %d: %v has %d neighbors, outline has a gap", r, p, neighbors)
			}
		}
	}
}

func TestDrawHalfCircle(t *testing.T) {
	center := Pt(20, 20)
	for r := 1; r <= 15; r++ {
		full := NewPixmap(41, 41)
		half := NewPixmap(41, 41)
		DrawCircle(full, center, r, White)
		DrawHalfCircle(half, center, r, White)

		fullSet := offsets(full, center)
		for p := range offsets(half, center) {
			if p.Y > 0 {
				t.Errorf("radius %d: half circle painted %v below center", r, p)
			}
			if !fullSet[p] {
				t.Errorf("radius %d: half circle painted %v not on the full circle", r, p)
			}
		}
	}

	pm := NewPixmap(9, 9)
	DrawHalfCircle(pm, Pt(4, 4), 3, White)
	want := []Point{{1, 3}, {2, 2}, {3, 1}, {4, 1}, {5, 1}, {6, 2}, {7, 3}, {1, 4}}
	slices.SortFunc(want, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	if got := painted(pm, Black); !slices.Equal(got, want) {
		t.Errorf("DrawHalfCircle(r=3) painted %v, want %v", got, want)
	}
}

func TestDrawCircleNegativeRadius(t *testing.T) {
	pm := NewPixmap(5, 5)
	DrawCircle(pm, Pt(2, 2), -1, White)
	DrawHalfCircle(pm, Pt(2, 2), -4, White)
	if got := painted(pm, Black); len(got) != 0 {
		t.Errorf("negative radius painted %v", got)
	}
}

func TestDrawCircleClipped(t *testing.T) {
	pm := NewPixmap(10, 10)
	DrawCircle(pm, Pt(0, 0), 5, White)
	DrawCircle(pm, Pt(-100, 400), 30, White)
	if got := painted(pm, Black); len(got) == 0 {
		t.Error("circle at the corner painted nothing")
	}
}
