// Package scene holds the ship and plane animation drawn on the canvas.
//
// The scene is split into a pure simulation step and a renderer:
//
//	cfg := scene.DefaultConfig()
//	s := scene.NewState(cfg)
//	for {
//	    canvas.Clear(rawfb.Black)
//	    scene.Draw(canvas, cfg, s)
//	    s = scene.Advance(cfg, s)
//	}
//
// Draw touches pixels only through the rasterizer primitives of package
// rawfb (lines, circles, polygons and flood fill). Advance never draws.
package scene
