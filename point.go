package rawfb

// Point is an integer pixel position. It may lie outside any buffer.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether p lies strictly inside the axis-aligned box spanned by
// the corners c1 and c2, in any order. A box with zero width or zero height
// contains no point.
func (p Point) In(c1, c2 Point) bool {
	if c1.X == c2.X || c1.Y == c2.Y {
		return false
	}
	minX, maxX := min(c1.X, c2.X), max(c1.X, c2.X)
	minY, maxY := min(c1.Y, c2.Y), max(c1.Y, c2.Y)
	return p.X > minX && p.X < maxX && p.Y > minY && p.Y < maxY
}

// less orders points by X, then by Y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}
