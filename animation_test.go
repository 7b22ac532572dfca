package folio

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenValue(t *testing.T) {
	v := 10.0
	g := TweenValue(&v, 20, 1, ease.Linear)
	g.Update(0.5)
	if !approxEqual(v, 15, 1e-4) {
		t.Errorf("v = %v at half time, want 15", v)
	}
	if g.Done {
		t.Error("Done before the end")
	}
	g.Update(0.6)
	if v != 20 || !g.Done {
		t.Errorf("v = %v, Done = %v; want 20, true", v, g.Done)
	}
	// Finished groups no longer write.
	v = 3
	g.Update(1)
	if v != 3 {
		t.Errorf("finished group wrote %v", v)
	}
}

func TestTweenReveal(t *testing.T) {
	p := &Panel{Shift: 40}
	g := TweenReveal(p, 0.8, ease.InOutQuad)
	g.Update(0.8)
	if p.Alpha != 1 || p.Shift != 0 || !g.Done {
		t.Errorf("panel = (%v, %v), Done = %v", p.Alpha, p.Shift, g.Done)
	}
}

func TestTweenFinish(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 5, 10, ease.OutQuad)
	g.Finish()
	if v != 5 || !g.Done {
		t.Errorf("v = %v, Done = %v", v, g.Done)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 7, 0, ease.Linear)
	g.Update(0)
	if v != 7 || !g.Done {
		t.Errorf("v = %v, Done = %v", v, g.Done)
	}
}

func TestTweenGroupNilSafe(t *testing.T) {
	var g *TweenGroup
	g.Update(1)
	g.Finish()
}
