package rawfb

// DrawCircle draws the outline of a circle using the midpoint algorithm.
//
// One quadrant is walked and reflected into the other three, giving a closed
// 8-connected outline symmetric about both axes through center. A radius of
// zero plots the center; a negative radius draws nothing.
func DrawCircle(pm *Pixmap, center Point, radius int, c RGB) {
	walkCircle(radius, func(x, y int) {
		pm.SetPixel(Pt(center.X-x, center.Y+y), c)
		pm.SetPixel(Pt(center.X-y, center.Y-x), c)
		pm.SetPixel(Pt(center.X+x, center.Y-y), c)
		pm.SetPixel(Pt(center.X+y, center.Y+x), c)
	})
}

// DrawHalfCircle draws the half of a circle outline that lies at or above
// center.Y, from the leftmost point over the top to the right.
func DrawHalfCircle(pm *Pixmap, center Point, radius int, c RGB) {
	walkCircle(radius, func(x, y int) {
		pm.SetPixel(Pt(center.X+x, center.Y-y), c)
		pm.SetPixel(Pt(center.X+y, center.Y+x), c)
	})
}

// walkCircle steps through the second quadrant of a circle of radius r,
// starting at (-r, 0), and calls plot for every point on the way.
func walkCircle(r int, plot func(x, y int)) {
	if r < 0 {
		return
	}
	if r == 0 {
		plot(0, 0)
		return
	}
	x, y := -r, 0
	err := 2 - 2*r
	for x < 0 {
		plot(x, y)
		e := err
		if e <= y {
			y++
			err += y*2 + 1
		}
		if e > x || err > y {
			x++
			err += x*2 + 1
		}
	}
}
