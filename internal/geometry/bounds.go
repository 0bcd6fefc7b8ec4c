package geometry

// rotationAbout composes a rotation of deg degrees around the center of r.
func rotationAbout(r Rect, deg float64) Matrix2D {
	cx, cy := r.Center()
	return Translate(cx, cy).Multiply(RotateDegrees(deg)).Multiply(Translate(-cx, -cy))
}

// RotatedBounds returns the axis-aligned bounding box of a rect rotated by
// deg degrees around its own center.
func RotatedBounds(r Rect, deg float64) Rect {
	if deg == 0 {
		return r
	}
	return rotationAbout(r, deg).TransformRect(r)
}

// RotatedContains reports whether the point (px, py) falls inside a rect
// rotated by deg degrees around its own center. The point is mapped back
// into the rect's local space through the inverse rotation.
func RotatedContains(r Rect, deg float64, px, py float64) bool {
	if deg == 0 {
		return r.Contains(px, py)
	}
	lx, ly := rotationAbout(r, deg).Invert().TransformPoint(px, py)
	return r.Contains(lx, ly)
}
