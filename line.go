package rawfb

import "math"

// DrawLine draws a one-pixel line from p0 to p1 using Bresenham's algorithm.
//
// The endpoints are ordered by X (then Y) before rasterizing, so DrawLine
// produces the same pixel set whichever endpoint comes first.
func DrawLine(pm *Pixmap, p0, p1 Point, c RGB) {
	if p1.less(p0) {
		p0, p1 = p1, p0
	}

	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := step(p0.X, p1.X), step(p0.Y, p1.Y)
	err := dx + dy

	x, y := p0.X, p0.Y
	for {
		pm.SetPixel(Pt(x, y), c)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawLineWidth draws an antialiased line of the given width from p0 to p1.
//
// Each visited pixel gets c scaled by its coverage, which falls off linearly
// from 1 inside the stroke to 0 at half the width from the ideal line. The
// loop follows A. Zingl's "plotLineWidth" including its asymmetric
// continuation tests for the x and y steps, so the stroke is not mirrored
// exactly about the ideal line. Width 1 covers every pixel DrawLine visits.
func DrawLineWidth(pm *Pixmap, p0, p1 Point, width float64, c RGB) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := step(x0, x1), step(y0, y1)
	err := dx - dy

	ed := 1.0
	if dx+dy != 0 {
		ed = math.Hypot(float64(dx), float64(dy))
	}

	wd := (width + 1) / 2
	plot := func(x, y, e int) {
		cov := wd - math.Abs(float64(e))/ed
		pm.SetPixel(Pt(x, y), c.Scale(min(cov, 1)))
	}

	for {
		plot(x0, y0, err-dx+dy)

		e2, x2 := err, x0
		if 2*e2 >= -dx { // x step
			e2 += dy
			for y2 := y0; float64(e2) < ed*wd && (y1 != y2 || dx > dy); e2 += dx {
				y2 += sy
				plot(x0, y2, e2)
			}
			if x0 == x1 {
				return
			}
			e2 = err
			err -= dy
			x0 += sx
		}
		if 2*e2 <= dy { // y step
			for e2 = dx - e2; float64(e2) < ed*wd && (x1 != x2 || dx < dy); e2 += dy {
				x2 += sx
				plot(x2, y0, e2)
			}
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// step returns the unit increment that moves from a toward b.
func step(a, b int) int {
	if a < b {
		return 1
	}
	return -1
}
