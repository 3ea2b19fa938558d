package arbor

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is the mandatory component at index 0 of every GameObject. It
// holds the object's local position, rotation (radians) and scale.
type Transform struct {
	Base

	Position Vec2
	Rotation float64
	Scale    Vec2
}

func newTransform() *Transform {
	return &Transform{Scale: Vec2{1, 1}}
}

// SetPosition sets the local position.
func (t *Transform) SetPosition(x, y float64) {
	t.Position = Vec2{x, y}
}

// Translate moves the local position by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.Position.X += dx
	t.Position.Y += dy
}

// SetRotation sets the rotation in radians.
func (t *Transform) SetRotation(r float64) {
	t.Rotation = r
}

// SetScale sets the scale factors.
func (t *Transform) SetScale(sx, sy float64) {
	t.Scale = Vec2{sx, sy}
}

// LocalMatrix computes the local affine matrix [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(Position)
func (t *Transform) LocalMatrix() [6]float64 {
	sin, cos := math.Sincos(t.Rotation)
	sx, sy := t.Scale.X, t.Scale.Y
	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		t.Position.X, t.Position.Y,
	}
}

// WorldMatrix composes the local matrices of this Transform and all of its
// owner's ancestors. A detached Transform returns its local matrix.
func (t *Transform) WorldMatrix() [6]float64 {
	local := t.LocalMatrix()
	if t.owner == nil {
		return local
	}
	p, ok := t.owner.parent.(*GameObject)
	if !ok {
		return local
	}
	pt := p.Transform()
	if pt == nil {
		return local
	}
	return multiplyAffine(pt.WorldMatrix(), local)
}

// WorldPosition returns the Transform's origin in world space.
func (t *Transform) WorldPosition() Vec2 {
	m := t.WorldMatrix()
	return Vec2{m[4], m[5]}
}

// LocalToWorld converts a local-space point to world space.
func (t *Transform) LocalToWorld(p Vec2) Vec2 {
	x, y := transformPoint(t.WorldMatrix(), p.X, p.Y)
	return Vec2{x, y}
}

// WorldToLocal converts a world-space point to this Transform's local space.
func (t *Transform) WorldToLocal(p Vec2) Vec2 {
	x, y := transformPoint(invertAffine(t.WorldMatrix()), p.X, p.Y)
	return Vec2{x, y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
