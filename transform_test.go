package headerview

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertAffine(t *testing.T, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if !approxEqual(got[i], want[i], epsilon) {
			t.Errorf("matrix[%d] = %v, want %v (got %v)", i, got[i], want[i], got)
			return
		}
	}
}

func TestComputeLocalTransformIdentity(t *testing.T) {
	n := NewContainer("n")
	assertAffine(t, computeLocalTransform(n), identityTransform)
}

func TestComputeLocalTransformTranslate(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(10, 20)
	assertAffine(t, computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestComputeLocalTransformScaleAboutPivot(t *testing.T) {
	n := NewContainer("n")
	n.SetPivot(50, 25)
	n.SetPosition(50, 25)
	n.SetScale(2, 2)

	// The pivot point stays fixed.
	m := computeLocalTransform(n)
	x, y := transformPoint(m, 50, 25)
	if !approxEqual(x, 50, epsilon) || !approxEqual(y, 25, epsilon) {
		t.Errorf("pivot maps to (%v, %v), want (50, 25)", x, y)
	}
	x, y = transformPoint(m, 0, 0)
	if !approxEqual(x, -50, epsilon) || !approxEqual(y, -25, epsilon) {
		t.Errorf("origin maps to (%v, %v), want (-50, -25)", x, y)
	}
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 4, 5}
	assertAffine(t, multiplyAffine(identityTransform, m), m)
	assertAffine(t, multiplyAffine(m, identityTransform), m)
}

func TestInvertAffineRoundTrip(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, -6}
	inv := invertAffine(m)
	assertAffine(t, multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineSingular(t *testing.T) {
	assertAffine(t, invertAffine([6]float64{}), identityTransform)
}

func TestUpdateWorldTransformNested(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	child := NewContainer("child")
	root.AddChild(parent)
	parent.AddChild(child)
	parent.SetPosition(100, 50)
	parent.SetScale(2, 2)
	child.SetPosition(10, 5)

	updateWorldTransform(root, identityTransform, 1, false)

	x, y := child.LocalToWorld(0, 0)
	if !approxEqual(x, 120, epsilon) || !approxEqual(y, 60, epsilon) {
		t.Errorf("child origin = (%v, %v), want (120, 60)", x, y)
	}
}

func TestUpdateWorldTransformClearsDirty(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)
	updateWorldTransform(root, identityTransform, 1, false)
	if root.transformDirty || child.transformDirty {
		t.Error("dirty flags should be cleared")
	}
}

func TestWorldAlphaMultiplies(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)
	root.SetAlpha(0.5)
	child.SetAlpha(0.4)
	updateWorldTransform(root, identityTransform, 1, false)
	if !approxEqual(child.WorldAlpha(), 0.2, epsilon) {
		t.Errorf("WorldAlpha = %v, want 0.2", child.WorldAlpha())
	}
}

func TestWorldToLocalInverse(t *testing.T) {
	root := NewContainer("root")
	n := NewContainer("n")
	root.AddChild(n)
	n.SetPosition(30, 40)
	n.SetScale(2, 2)
	updateWorldTransform(root, identityTransform, 1, false)

	wx, wy := n.LocalToWorld(5, 7)
	lx, ly := n.WorldToLocal(wx, wy)
	if !approxEqual(lx, 5, epsilon) || !approxEqual(ly, 7, epsilon) {
		t.Errorf("round trip = (%v, %v), want (5, 7)", lx, ly)
	}
}

func TestRefreshWorldTransformFromRoot(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewContainer("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	root.SetPosition(0, 15)
	mid.SetPosition(0, 20)

	refreshWorldTransform(leaf)

	_, y := leaf.LocalToWorld(0, 0)
	if !approxEqual(y, 35, epsilon) {
		t.Errorf("leaf world Y = %v, want 35", y)
	}
}

func TestSettersMarkDirty(t *testing.T) {
	setters := map[string]func(n *Node){
		"SetPosition": func(n *Node) { n.SetPosition(1, 2) },
		"SetY":        func(n *Node) { n.SetY(3) },
		"SetScale":    func(n *Node) { n.SetScale(2, 2) },
		"SetPivot":    func(n *Node) { n.SetPivot(1, 1) },
		"SetAlpha":    func(n *Node) { n.SetAlpha(0.5) },
		"MarkDirty":   func(n *Node) { n.MarkDirty() },
	}
	for name, set := range setters {
		n := NewContainer("n")
		n.transformDirty = false
		set(n)
		if !n.transformDirty {
			t.Errorf("%s did not mark dirty", name)
		}
	}
}
