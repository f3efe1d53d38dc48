package types

// SafeAdd adds b to a and wraps the result into [0, limit).
// A b of limit-1 steps a back by one without signed arithmetic.
func SafeAdd(a, b, limit int) int {
	r := (a + b) % limit
	if r < 0 {
		r += limit
	}
	return r
}

// Add1 steps value forward by one, wrapping at limit
func Add1(value, limit int) int {
	return SafeAdd(value, 1, limit)
}

// Sub1 steps value back by one, wrapping at limit
func Sub1(value, limit int) int {
	return SafeAdd(value, limit-1, limit)
}

// Clamp returns current+delta if it stays inside [0, bound).
// Otherwise current is returned unchanged: the coordinate stops at the wall.
func Clamp(current, delta, bound int) int {
	next := current + delta
	if next < 0 || next >= bound {
		return current
	}
	return next
}

// Step moves p by v, clamping each axis independently
func (g Grid) Step(p, v Point) Point {
	return Point{
		X: Clamp(p.X, v.X, g.Width),
		Y: Clamp(p.Y, v.Y, g.Height),
	}
}

// Wrap moves p by the unsigned deltas d, wrapping each axis
func (g Grid) Wrap(p, d Point) Point {
	return Point{
		X: SafeAdd(p.X, d.X, g.Width),
		Y: SafeAdd(p.Y, d.Y, g.Height),
	}
}
