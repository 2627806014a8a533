package scene

import "github.com/gogpu/rawfb"

// Config describes the canvas, the screen it is shown on, and the motion
// parameters of every actor.
type Config struct {
	// Width and Height are the canvas dimensions.
	Width, Height int

	// ScreenWidth and ScreenHeight are the device dimensions. Only bomb
	// floors derive from them.
	ScreenWidth, ScreenHeight int

	ShipY      int // water line of the hull
	ShipSpeed  int
	ShipMargin int // turn-around distance from either canvas edge

	PlaneY     int
	PlaneSpeed int
	PlaneSpan  int // the plane wraps once it is this far past the left edge

	BulletSpeed  int
	BulletLength int // length of the trail behind a bullet or bomb
	BombSpeed    int

	ExplosionSteps int

	Hull rawfb.RGB // ship, plane, cannon, stickman and projectiles
	Fish rawfb.RGB
}

// DefaultConfig returns the 1000x500 scene shown on a 1366x768 screen.
func DefaultConfig() Config {
	return Config{
		Width:        1000,
		Height:       500,
		ScreenWidth:  1366,
		ScreenHeight: 768,

		ShipY:      490,
		ShipSpeed:  5,
		ShipMargin: 80,

		PlaneY:     50,
		PlaneSpeed: 10,
		PlaneSpan:  170,

		BulletSpeed:  5,
		BulletLength: 20,
		BombSpeed:    10,

		ExplosionSteps: 20,

		Hull: rawfb.Gray(99),
		Fish: rawfb.RGB{R: 87, G: 255, B: 92},
	}
}

// bombFloor is where the first bomb of a pair disappears.
func (c Config) bombFloor() int {
	return c.ScreenHeight - (c.ScreenHeight-c.Height)/2
}

// secondBombFloor is where the second bomb of a pair disappears.
func (c Config) secondBombFloor() int {
	return c.ScreenHeight - 150
}

// muzzle is where bullets leave the cannon for a ship at x.
func (c Config) muzzle(x int) rawfb.Point {
	return rawfb.Pt(x, c.ShipY-120)
}
