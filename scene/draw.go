package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/rawfb"
)

// Draw paints s onto the canvas pm, which the caller has already cleared.
//
// Layers are painted back to front: the ship with its fish emblems, the
// cannon and gunner, the plane with its bird emblem, the projectiles in
// flight, and finally any explosion. Flood fills rely on each outline being
// closed or clipped by the canvas edge.
func Draw(pm *rawfb.Pixmap, cfg Config, s State) {
	keel := rawfb.Pt(s.ShipX, cfg.ShipY)

	rawfb.DrawPolygon(pm, hull.Translate(keel), cfg.Hull)
	rawfb.FloodFill(pm, rawfb.Pt(keel.X, keel.Y-1), cfg.Hull)

	for _, dx := range []int{20, -20} {
		at := rawfb.Pt(keel.X+dx, keel.Y)
		drawFish(pm, at, cfg.Fish)
		rawfb.FloodFill(pm, rawfb.Pt(at.X, at.Y-25), cfg.Fish)
	}

	odd := s.Counter%2 != 0
	cannon := rawfb.Pt(keel.X, keel.Y-80)
	if !odd {
		cannon.Y -= 3
	}
	drawCannon(pm, cannon, cfg.Hull)
	drawStickman(pm, rawfb.Pt(keel.X-30, keel.Y-90), 15, odd, cfg.Hull)

	nose := rawfb.Pt(s.PlaneX, cfg.PlaneY)
	rawfb.DrawPolygon(pm, fuselage.Translate(nose), cfg.Hull)
	drawBird(pm, rawfb.Pt(nose.X+60, nose.Y), cfg.Hull)
	rawfb.FloodFill(pm, rawfb.Pt(nose.X+59, nose.Y), cfg.Hull)

	for _, b := range s.Bombs {
		if b.Released {
			drawBomb(pm, b.Pos, cfg.Hull)
			drawTrail(pm, b.Pos, cfg.BulletLength, cfg.Hull)
		}
	}
	for _, b := range s.Bullets {
		if b.Released {
			drawBullet(pm, b.Pos, cfg.Hull)
			drawTrail(pm, b.Pos, cfg.BulletLength, cfg.Hull)
		}
	}

	if s.Explosion.Active {
		drawStarburst(pm, s.Explosion.Pos, s.Explosion.Step, ExplosionColor(s.Explosion.Step))
	}
}

var (
	flashRed = colorful.Color{R: 1}
	burntOut = colorful.Color{}
)

// ExplosionColor returns the color of an explosion step steps after it
// started. It fades from pure red by 12 levels per step and stays black once
// the red channel would drop below zero.
func ExplosionColor(step int) rawfb.RGB {
	t := min(max(float64(step)*12/255, 0), 1)
	r, g, b := flashRed.BlendRgb(burntOut, t).RGB255()
	return rawfb.RGB{R: r, G: g, B: b}
}
