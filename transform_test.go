package arbor

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- LocalMatrix ---

func TestLocalMatrixIdentity(t *testing.T) {
	tr := newTransform()
	assertMatrix(t, "identity", tr.LocalMatrix(), identityTransform)
}

func TestLocalMatrixTranslation(t *testing.T) {
	tr := newTransform()
	tr.SetPosition(10, 20)
	assertMatrix(t, "translate", tr.LocalMatrix(), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalMatrixScale(t *testing.T) {
	tr := newTransform()
	tr.SetScale(2, 3)
	assertMatrix(t, "scale", tr.LocalMatrix(), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalMatrixRotation90(t *testing.T) {
	tr := newTransform()
	tr.SetRotation(math.Pi / 2)
	assertMatrix(t, "rot90", tr.LocalMatrix(), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestTranslate(t *testing.T) {
	tr := newTransform()
	tr.SetPosition(1, 1)
	tr.Translate(2, -3)
	if tr.Position != (Vec2{3, -2}) {
		t.Errorf("Position = %v, want {3 -2}", tr.Position)
	}
}

// --- multiplyAffine / invertAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	assertMatrix(t, "translations", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 23})
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "m*inv=id", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineRotated(t *testing.T) {
	tr := newTransform()
	tr.SetScale(2, 1)
	tr.SetRotation(math.Pi / 3)
	tr.SetPosition(4, -7)
	m := tr.LocalMatrix()
	assertMatrix(t, "m*inv=id", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	m := [6]float64{0, 0, 0, 1, 5, 5}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

// --- World space ---

func TestWorldPositionParentChild(t *testing.T) {
	s := NewScene()
	parent := NewGameObject(s)
	child := NewGameObject(parent)
	parent.Transform().SetPosition(100, 0)
	child.Transform().SetPosition(10, 0)

	wp := child.Transform().WorldPosition()
	assertNear(t, "child.x", wp.X, 110)
	assertNear(t, "child.y", wp.Y, 0)
}

func TestWorldPositionIncludesRoot(t *testing.T) {
	s := NewScene()
	s.Root().Transform().SetPosition(5, 5)
	g := NewGameObject(s)
	wp := g.Transform().WorldPosition()
	if wp != (Vec2{5, 5}) {
		t.Errorf("WorldPosition = %v, want {5 5}", wp)
	}
}

func TestWorldPositionRotatedParent(t *testing.T) {
	parent := NewGameObject(nil)
	parent.Transform().SetRotation(math.Pi / 2)
	child := NewGameObject(parent)
	child.Transform().SetPosition(10, 0)

	wp := child.Transform().WorldPosition()
	assertNear(t, "x", wp.X, 0)
	assertNear(t, "y", wp.Y, 10)
}

func TestWorldMatrixDetached(t *testing.T) {
	tr := newTransform()
	tr.SetPosition(3, 4)
	assertMatrix(t, "detached", tr.WorldMatrix(), tr.LocalMatrix())
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	parent := NewGameObject(nil)
	parent.Transform().SetPosition(50, 30)
	parent.Transform().SetScale(2, 2)
	parent.Transform().SetRotation(0.3)
	child := NewGameObject(parent)
	child.Transform().SetPosition(10, 5)

	tr := child.Transform()
	p := Vec2{7, -3}
	back := tr.WorldToLocal(tr.LocalToWorld(p))
	assertNear(t, "x", back.X, p.X)
	assertNear(t, "y", back.Y, p.Y)
}

func TestDeepHierarchy(t *testing.T) {
	root := NewGameObject(nil)
	cur := root
	for i := 0; i < 10; i++ {
		next := NewGameObject(cur)
		next.Transform().SetPosition(1, 0)
		cur = next
	}
	assertNear(t, "deep.x", cur.Transform().WorldPosition().X, 10)
}
