package rawfb

import (
	"math"
	"slices"
)

// Polygon is an ordered list of vertices. The last vertex connects back to
// the first. Self-intersecting polygons are allowed.
type Polygon []Point

// Translate returns a copy of the polygon moved by d.
func (poly Polygon) Translate(d Point) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = p.Add(d)
	}
	return out
}

// ScanlineIntersections returns the points where the edges of poly cross the
// horizontal line at y, sorted by ascending X.
//
// An edge crosses y when y lies between its endpoint rows, inclusive, and the
// edge is not horizontal. Horizontal edges never contribute. A vertex shared
// by two crossing edges is reported once per edge; callers that need unique
// crossings must deduplicate.
func ScanlineIntersections(poly Polygon, y int) []Point {
	var out []Point
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		if !crosses(a.Y, b.Y, y) {
			continue
		}
		out = append(out, Pt(intersectX(a, b, y), y))
	}
	sortByX(out)
	return out
}

// MergeIntersections concatenates two intersection lists and sorts the
// result by ascending X.
func MergeIntersections(a, b []Point) []Point {
	out := make([]Point, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sortByX(out)
	return out
}

// DrawPolygon draws the closed outline of poly.
func DrawPolygon(pm *Pixmap, poly Polygon, c RGB) {
	for i, a := range poly {
		DrawLine(pm, a, poly[(i+1)%len(poly)], c)
	}
}

// FillPolygon fills poly with the even-odd rule by drawing a horizontal span
// between each consecutive pair of scanline crossings.
// The outline is drawn on top, so the result covers the same pixels as
// DrawPolygon plus the interior.
func FillPolygon(pm *Pixmap, poly Polygon, c RGB) {
	if len(poly) < 3 {
		return
	}
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	minY = max(minY, 0)
	maxY = min(maxY, pm.height-1)

	var xs []int
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			// Edges own rows [top, bottom) so shared vertices pair up.
			lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
			if a.Y == b.Y || y < lo || y >= hi {
				continue
			}
			xs = append(xs, intersectX(a, b, y))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			DrawLine(pm, Pt(xs[i], y), Pt(xs[i+1], y), c)
		}
	}
	DrawPolygon(pm, poly, c)
}

// crosses reports whether the row y lies within [y0, y1] (either order) on a
// non-horizontal edge.
func crosses(y0, y1, y int) bool {
	if y0 == y1 {
		return false
	}
	return (y >= y0 && y <= y1) || (y >= y1 && y <= y0)
}

// intersectX returns the X where the edge a-b meets row y, rounded half away
// from zero. Vertical edges return their shared X.
func intersectX(a, b Point, y int) int {
	if a.X == b.X {
		return a.X
	}
	slope := float64(b.Y-a.Y) / float64(b.X-a.X)
	return int(math.Round(float64(y-a.Y)/slope + float64(a.X)))
}

func sortByX(pts []Point) {
	slices.SortStableFunc(pts, func(p, q Point) int {
		return p.X - q.X
	})
}
