package scene

import "github.com/gogpu/rawfb"

// hull is the ship outline relative to the middle of its keel.
var hull = rawfb.Polygon{
	{X: -80, Y: -40}, {X: 80, Y: -40}, {X: 50, Y: 0}, {X: -50, Y: 0},
}

// fuselage is the plane outline relative to its nose.
var fuselage = rawfb.Polygon{
	{X: 0, Y: 0}, {X: 15, Y: -5}, {X: 45, Y: -8}, {X: 58, Y: -12},
	{X: 71, Y: -15}, {X: 84, Y: -12}, {X: 97, Y: -8}, {X: 147, Y: -11},
	{X: 152, Y: -29}, {X: 162, Y: -33}, {X: 165, Y: -6}, {X: 164, Y: -1},
	{X: 165, Y: 4}, {X: 98, Y: 7}, {X: 111, Y: 32}, {X: 101, Y: 26},
	{X: 84, Y: 8}, {X: 47, Y: 7}, {X: 20, Y: 4},
}

// fish is the outline of a fish relative to the ship's keel point it is
// painted above. Body and tail form one closed region around (0, -25).
var fish = [][2]rawfb.Point{
	// mouth
	{{X: -15, Y: -25}, {X: -5, Y: -30}},
	{{X: -15, Y: -25}, {X: -5, Y: -20}},
	// body
	{{X: -5, Y: -30}, {X: 7, Y: -30}},
	{{X: -5, Y: -20}, {X: 7, Y: -20}},
	// tail root
	{{X: 7, Y: -30}, {X: 7, Y: -26}},
	{{X: 7, Y: -20}, {X: 7, Y: -24}},
	// tail
	{{X: 7, Y: -26}, {X: 14, Y: -30}},
	{{X: 7, Y: -24}, {X: 14, Y: -20}},
	{{X: 14, Y: -30}, {X: 14, Y: -20}},
}

// starburst holds the eight spoke directions of an explosion.
var starburst = [8]rawfb.Point{
	{X: 1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
}

func line(pm *rawfb.Pixmap, at rawfb.Point, x0, y0, x1, y1 int, c rawfb.RGB) {
	rawfb.DrawLine(pm, rawfb.Pt(at.X+x0, at.Y+y0), rawfb.Pt(at.X+x1, at.Y+y1), c)
}

func drawFish(pm *rawfb.Pixmap, at rawfb.Point, c rawfb.RGB) {
	for _, seg := range fish {
		rawfb.DrawLine(pm, at.Add(seg[0]), at.Add(seg[1]), c)
	}
}

// drawCannon draws the turret box with its dome and barrel stub.
func drawCannon(pm *rawfb.Pixmap, at rawfb.Point, c rawfb.RGB) {
	line(pm, at, -10, -10, -10, 30, c)
	line(pm, at, -10, 30, 10, 30, c)
	line(pm, at, 10, 30, 10, -10, c)
	line(pm, at, 10, -10, -10, -10, c)
	rawfb.DrawHalfCircle(pm, rawfb.Pt(at.X, at.Y-10), 10, c)

	at.Y -= 20
	line(pm, at, -5, -5, -5, 2, c)
	line(pm, at, 5, 2, 5, -5, c)
	line(pm, at, 5, -5, -5, -5, c)
}

// drawStickman draws the gunner. Odd frames lower both arms by lift pixels.
func drawStickman(pm *rawfb.Pixmap, at rawfb.Point, lift int, odd bool, c rawfb.RGB) {
	rawfb.DrawCircle(pm, at, 15, c)
	line(pm, at, 0, 15, 0, 50, c)

	arm := lift
	if !odd {
		arm -= 3
	}
	line(pm, at, 0, 30, 20, arm, c)
	line(pm, at, 0, 30, 25, arm+10, c)
}

// drawBird draws the emblem painted on the fuselage.
func drawBird(pm *rawfb.Pixmap, at rawfb.Point, c rawfb.RGB) {
	for _, dx := range []int{0, 20} {
		center := rawfb.Pt(at.X+dx, at.Y)
		rawfb.DrawHalfCircle(pm, center, 10, c)
		rawfb.DrawHalfCircle(pm, center, 5, c)
	}
	line(pm, at, 10, 0, 5, 0, c)
	line(pm, at, -10, 0, -5, 0, c)
	line(pm, at, 15, 0, 10, 0, c)
	line(pm, at, 25, 0, 30, 0, c)
}

// drawTrail draws the five pixel wide streak hanging below a projectile.
func drawTrail(pm *rawfb.Pixmap, top rawfb.Point, length int, c rawfb.RGB) {
	for dx := -2; dx <= 2; dx++ {
		line(pm, top, dx, 0, dx, length, c)
	}
}

// drawBullet draws a shell pointing up.
func drawBullet(pm *rawfb.Pixmap, at rawfb.Point, c rawfb.RGB) {
	line(pm, at, -3, 5, -3, -5, c)
	line(pm, at, 3, 5, 3, -5, c)
	line(pm, at, -3, 5, 3, 5, c)
	line(pm, at, -3, -5, 0, -9, c)
	line(pm, at, 3, -5, 0, -9, c)
}

// drawBomb draws a shell pointing down.
func drawBomb(pm *rawfb.Pixmap, at rawfb.Point, c rawfb.RGB) {
	line(pm, at, -3, 5, -3, -5, c)
	line(pm, at, 3, 5, 3, -5, c)
	line(pm, at, -3, -5, 3, -5, c)
	line(pm, at, -3, 5, 0, 9, c)
	line(pm, at, 3, 5, 0, 9, c)
}

// drawStarburst draws eight spokes from 10*step to 20*step pixels out.
func drawStarburst(pm *rawfb.Pixmap, at rawfb.Point, step int, c rawfb.RGB) {
	for _, d := range starburst {
		rawfb.DrawLine(pm,
			rawfb.Pt(at.X+d.X*10*step, at.Y+d.Y*10*step),
			rawfb.Pt(at.X+d.X*20*step, at.Y+d.Y*20*step), c)
	}
}
