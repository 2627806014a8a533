package rawfb

// FloodFill repaints start and every pixel 4-connected to it whose color
// differs from target, stopping at pixels that already equal target and at
// the pixmap edges.
//
// The region must be enclosed by pixels of the target color. Otherwise the
// fill spreads over everything reachable in the pixmap. This is not checked.
//
// Pending positions are kept on an explicit stack owned by the pixmap, so
// large regions cannot exhaust the goroutine stack.
func FloodFill(pm *Pixmap, start Point, target RGB) {
	stack := append(pm.stack[:0], start)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !pm.inside(p.X, p.Y) {
			continue
		}
		i := p.Y*pm.width + p.X
		if pm.data[i].Equal(target) {
			continue
		}
		pm.data[i] = target

		// Reverse order, so right is visited first.
		stack = append(stack,
			Pt(p.X, p.Y-1),
			Pt(p.X-1, p.Y),
			Pt(p.X, p.Y+1),
			Pt(p.X+1, p.Y),
		)
	}
	pm.stack = stack
}
