package graphics

import "golang.org/x/image/math/f64"

// Transform is a 2D affine transform mapping local coordinates to world
// coordinates. The zero value is not the identity; use [Identity].
//
// The matrix is stored row-major as
//
//	| a b tx |
//	| c d ty |
type Transform struct {
	m f64.Aff3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// Translation returns a transform that moves points by (dx, dy).
func Translation(dx, dy float64) Transform {
	return Transform{m: f64.Aff3{1, 0, dx, 0, 1, dy}}
}

// Scaling returns a transform that scales by (sx, sy) around the origin.
func Scaling(sx, sy float64) Transform {
	return Transform{m: f64.Aff3{sx, 0, 0, 0, sy, 0}}
}

// Matrix returns the underlying affine matrix.
func (t Transform) Matrix() f64.Aff3 {
	return t.m
}

// IsZero reports whether t is the zero value (not a valid transform).
func (t Transform) IsZero() bool {
	return t.m == f64.Aff3{}
}

// Then returns the transform that applies t first and then next.
func (t Transform) Then(next Transform) Transform {
	a, b := next.m, t.m
	return Transform{m: f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}}
}

// PreTranslate returns a transform that first moves by (dx, dy) and then
// applies t. This is how a child offset composes onto a parent's
// local-to-world transform.
func (t Transform) PreTranslate(dx, dy float64) Transform {
	return Translation(dx, dy).Then(t)
}

// Apply maps a point through the transform.
func (t Transform) Apply(p Offset) Offset {
	return Offset{
		X: t.m[0]*p.X + t.m[1]*p.Y + t.m[2],
		Y: t.m[3]*p.X + t.m[4]*p.Y + t.m[5],
	}
}

// ApplyRect maps the rectangle's corners and returns their bounding box.
func (t Transform) ApplyRect(r Rect) Rect {
	p0 := t.Apply(Offset{X: r.Left, Y: r.Top})
	out := Rect{Left: p0.X, Top: p0.Y, Right: p0.X, Bottom: p0.Y}
	for _, p := range []Offset{
		{X: r.Right, Y: r.Top},
		{X: r.Left, Y: r.Bottom},
		{X: r.Right, Y: r.Bottom},
	} {
		q := t.Apply(p)
		out = out.Union(Rect{Left: q.X, Top: q.Y, Right: q.X, Bottom: q.Y})
	}
	return out
}

// Equal reports whether two transforms are approximately equal.
func (t Transform) Equal(other Transform) bool {
	for i := range t.m {
		if !floatEqual(t.m[i], other.m[i]) {
			return false
		}
	}
	return true
}
