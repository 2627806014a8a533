package scene

import "github.com/gogpu/rawfb"

// Projectile is a bullet or a bomb. Pos keeps its last value after the
// projectile leaves the screen.
type Projectile struct {
	Pos      rawfb.Point
	Released bool
}

// Explosion is a fading starburst. Step counts the frames since it started.
type Explosion struct {
	Active bool
	Pos    rawfb.Point
	Step   int
}

// State is everything that changes between frames.
type State struct {
	Counter int // frame counter; its parity drives the stickman animation

	ShipX        int
	ShipMoveLeft bool

	PlaneX int

	Bullets [2]Projectile
	Bombs   [2]Projectile

	Explosion Explosion
}

// NewState returns the opening frame: the ship at the right turn-around
// point heading left, the plane at the right canvas edge, and one bullet and
// one bomb in flight.
func NewState(cfg Config) State {
	shipX := cfg.Width - cfg.ShipMargin
	planeX := cfg.Width
	return State{
		ShipX:        shipX,
		ShipMoveLeft: true,
		PlaneX:       planeX,
		Bullets: [2]Projectile{
			{Pos: cfg.muzzle(shipX), Released: true},
			{Pos: rawfb.Pt(0, cfg.ShipY-120)},
		},
		Bombs: [2]Projectile{
			{Pos: rawfb.Pt(planeX, cfg.PlaneY+120), Released: true},
			{Pos: rawfb.Pt(0, cfg.PlaneY-120)},
		},
	}
}

// Advance returns the state one frame after s.
//
// The plane flies left, bombs fall and bullets rise in alternating pairs,
// hits start an explosion, and the ship patrols between its turn-around
// points. Advance does not modify s.
func Advance(cfg Config, s State) State {
	if s.Explosion.Active {
		s.Explosion.Step++
		if s.Explosion.Step >= cfg.ExplosionSteps {
			s.Explosion = Explosion{}
		}
	}

	s.PlaneX -= cfg.PlaneSpeed
	s.Bombs = advanceBombs(cfg, s.Bombs, s.PlaneX)
	s.Bullets = advanceBullets(cfg, s.Bullets, s.ShipX)

	if hit, ok := detectHit(cfg, &s); ok {
		s.Explosion.Active = true
		s.Explosion.Pos = hit
	}

	if s.PlaneX <= -cfg.PlaneSpan {
		s.PlaneX = cfg.Width
	}

	switch {
	case s.ShipX <= cfg.ShipMargin:
		s.ShipMoveLeft = false
	case s.ShipX >= cfg.Width-cfg.ShipMargin:
		s.ShipMoveLeft = true
	}
	if s.ShipMoveLeft {
		s.ShipX -= cfg.ShipSpeed
	} else {
		s.ShipX += cfg.ShipSpeed
	}

	s.Counter++
	return s
}

// advanceBombs drops the pair. The second bomb leaves the plane once the
// first passes two thirds of the canvas; the first leaves again once the
// second passes one third.
func advanceBombs(cfg Config, b [2]Projectile, planeX int) [2]Projectile {
	release := rawfb.Pt(planeX, cfg.PlaneY+15)

	if b[0].Released {
		b[0].Pos.Y += cfg.BombSpeed
		if b[0].Pos.Y >= 2*cfg.Height/3 && !b[1].Released {
			b[1] = Projectile{Pos: release, Released: true}
		}
		if b[0].Pos.Y >= cfg.bombFloor() {
			b[0].Released = false
		}
	}

	if b[1].Released {
		b[1].Pos.Y += cfg.BombSpeed
		if b[1].Pos.Y >= cfg.Height/3 && !b[0].Released {
			b[0] = Projectile{Pos: release, Released: true}
		}
		if b[1].Pos.Y >= cfg.secondBombFloor() {
			b[1].Released = false
		}
	}
	return b
}

// advanceBullets fires the pair upwards. Each bullet releases the other once
// it climbs above one third of the canvas.
func advanceBullets(cfg Config, b [2]Projectile, shipX int) [2]Projectile {
	muzzle := cfg.muzzle(shipX)

	if b[0].Released {
		b[0].Pos.Y -= cfg.BulletSpeed
		if b[0].Pos.Y <= cfg.Height/3 && !b[1].Released {
			b[1] = Projectile{Pos: muzzle, Released: true}
		}
		if b[0].Pos.Y <= -cfg.BulletLength {
			b[0].Released = false
		}
	}

	if b[1].Released {
		b[1].Pos.Y -= cfg.BulletSpeed
		if b[1].Pos.Y <= cfg.Height/3 && !b[0].Released {
			b[0] = Projectile{Pos: muzzle, Released: true}
		}
		if b[1].Pos.Y <= 0 {
			b[1].Released = false
		}
	}
	return b
}

// detectHit reports the first projectile inside a target box: bullets
// against the plane, then bombs against the ship. Spent projectiles keep
// their last position and still count.
func detectHit(cfg Config, s *State) (rawfb.Point, bool) {
	planeMin := rawfb.Pt(s.PlaneX-5, cfg.PlaneY-15)
	planeMax := rawfb.Pt(s.PlaneX+170, cfg.PlaneY+15)
	for _, b := range s.Bullets {
		if b.Pos.In(planeMin, planeMax) {
			return b.Pos, true
		}
	}

	shipMin := rawfb.Pt(s.ShipX-50, cfg.ShipY-100)
	shipMax := rawfb.Pt(s.ShipX+50, cfg.ShipY+30)
	for _, b := range s.Bombs {
		if b.Pos.In(shipMin, shipMax) {
			return b.Pos, true
		}
	}
	return rawfb.Point{}, false
}
