package headerview

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenAlphaReachesTarget(t *testing.T) {
	node := NewContainer("alpha")

	g := TweenAlpha(node, 0, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha at midpoint = %f, want ~0.5", node.Alpha)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Alpha) > 0.01 {
		t.Errorf("Alpha = %f, want ~0", node.Alpha)
	}
}

func TestTweenFloatArbitraryField(t *testing.T) {
	node := NewContainer("owner")
	value := 10.0

	g := TweenFloat(node, &value, 30, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(value-30) > 0.01 {
		t.Errorf("value = %f, want ~30", value)
	}
}

func TestTweenPairMovesBothFields(t *testing.T) {
	node := NewContainer("owner")
	x, y := 0.0, 100.0

	g := TweenPair(node, &x, &y, 50, 0, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(x-50) > 0.01 || math.Abs(y) > 0.01 {
		t.Errorf("(x, y) = (%f, %f), want ~(50, 0)", x, y)
	}
}

func TestTweenMarksNodeDirty(t *testing.T) {
	node := NewContainer("owner")
	node.transformDirty = false

	g := TweenAlpha(node, 0.5, 1.0, ease.Linear)
	g.Update(0.1)

	if !node.transformDirty {
		t.Error("Update should mark the target dirty")
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	node := NewContainer("gone")
	value := 0.0
	g := TweenFloat(node, &value, 10, 1.0, ease.Linear)

	node.Dispose()
	g.Update(0.5)

	if !g.Done {
		t.Error("expected Done after target disposal")
	}
	if value != 0 {
		t.Errorf("value = %f, want 0 (no writes after disposal)", value)
	}
}

func TestTweenUpdateAfterDoneIsNoop(t *testing.T) {
	node := NewContainer("n")
	g := TweenAlpha(node, 0, 0.5, ease.Linear)
	g.Update(0.5)
	node.Alpha = 0.7

	g.Update(0.5)

	if node.Alpha != 0.7 {
		t.Errorf("Alpha = %f, want 0.7 (no writes after Done)", node.Alpha)
	}
}
