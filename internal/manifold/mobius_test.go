package manifold

import (
	"errors"
	"math"
	"testing"

	"github.com/macma/seamtrace/internal/geom"
	"github.com/macma/seamtrace/internal/topo"
)

func normalAt(t *testing.T, m Mapping, u, v float64) geom.Vec3 {
	t.Helper()
	_, ru, rv, err := m.Map(u, v)
	if err != nil {
		t.Fatalf("map(%g, %g) failed: %v", u, v, err)
	}
	n, ok := ru.Cross(rv).Normalized()
	if !ok {
		t.Fatalf("degenerate normal at (%g, %g)", u, v)
	}
	return n
}

func testOrthogonality(t *testing.T, m Mapping) {
	t.Helper()
	maxDot := 0.0
	for i := 0; i < 20; i++ {
		u := float64(i) * 2 * math.Pi / 19
		for j := 0; j < 10; j++ {
			v := -0.4 + float64(j)*0.8/9
			_, ru, rv, err := m.Map(u, v)
			if err != nil {
				t.Fatalf("map(%g, %g) failed: %v", u, v, err)
			}
			run, _ := ru.Normalized()
			rvn, _ := rv.Normalized()
			dot := math.Abs(run.Dot(rvn))
			if dot > maxDot {
				maxDot = dot
			}
		}
	}
	if maxDot > 0.1 {
		t.Errorf("%s tangents not orthogonal: max |ru·rv| = %g", m.Name(), maxDot)
	}
}

func TestMobiusOrthogonality(t *testing.T)   { testOrthogonality(t, NewMobius()) }
func TestCylinderOrthogonality(t *testing.T) { testOrthogonality(t, NewCylinder()) }

func TestMobiusNormalFlip(t *testing.T) {
	m := NewMobius()
	v := 0.2

	dot := normalAt(t, m, 0, v).Dot(normalAt(t, m, 2*math.Pi, v))
	if dot > -0.9 {
		t.Errorf("expected normal flip after one loop, dot = %g", dot)
	}
}

func TestCylinderNormalPreserved(t *testing.T) {
	c := NewCylinder()
	v := 0.2

	dot := normalAt(t, c, 0, v).Dot(normalAt(t, c, 2*math.Pi, v))
	if dot < 0.9 {
		t.Errorf("expected normal preserved after one loop, dot = %g", dot)
	}
}

func TestMobiusPositionAfterLoop(t *testing.T) {
	m := NewMobius()
	v := 0.2

	start, _, _, _ := m.Map(0, v)
	end, _, _, _ := m.Map(2*math.Pi, v)
	dist := end.Sub(start).Norm()

	// After one loop the twist lands the point on the other side of the
	// seam, |v| away in the embedding scale.
	expected := m.Width * 2 * v
	if math.Abs(dist-expected) > 0.15 {
		t.Errorf("loop offset %g, expected about %g", dist, expected)
	}
}

func TestCylinderPositionAfterLoop(t *testing.T) {
	c := NewCylinder()

	start, _, _, _ := c.Map(0, 0.2)
	end, _, _, _ := c.Map(2*math.Pi, 0.2)
	if dist := end.Sub(start).Norm(); dist > 1e-12 {
		t.Errorf("cylinder loop should close, got offset %g", dist)
	}
}

func TestMobiusParityAlternatesPerLoop(t *testing.T) {
	m := NewMobius()

	// At loop boundaries u = 2πk the indicator is cos(πk) = ±1, well
	// away from the seam, so the sign is numerically unambiguous.
	for k := 0; k < 4; k++ {
		u := float64(k) * 2 * math.Pi
		if got := m.Parity(u, 0.2); got != k%2 {
			t.Errorf("parity at loop %d: got %d, want %d", k, got, k%2)
		}
	}
}

func TestMobiusParityAtLoopMidpoints(t *testing.T) {
	m := NewMobius()

	// At midpoints u = (2k+1)π the indicator cos(u/2) sits within a few
	// ulp of its zero; the rounded value lands on the side matching the
	// loop's twist, so the alternation holds there too.
	for k := 0; k < 4; k++ {
		u := float64(2*k+1) * math.Pi
		if got := m.Parity(u, 0.2); got != k%2 {
			t.Errorf("parity at loop %d midpoint: got %d, want %d", k, got, k%2)
		}
	}
}

func TestMobiusParityTransitionCount(t *testing.T) {
	m := NewMobius()

	n := 400
	prev := m.Parity(0, 0.2)
	transitions := 0
	for i := 1; i < n; i++ {
		u := float64(i) * 8 * math.Pi / float64(n-1)
		p := m.Parity(u, 0.2)
		if p != prev {
			transitions++
		}
		prev = p
	}
	if transitions != 4 {
		t.Errorf("expected 4 parity transitions over 4 loops, got %d", transitions)
	}
}

func TestCylinderParityConstant(t *testing.T) {
	c := NewCylinder()
	for i := 0; i < 100; i++ {
		u := float64(i) * 8 * math.Pi / 99
		if c.Parity(u, 0.2) != 0 {
			t.Fatalf("cylinder parity must be 0, got 1 at u=%g", u)
		}
	}
}

func TestMobiusParityPurity(t *testing.T) {
	m := NewMobius()
	for i := 0; i < 50; i++ {
		u := float64(i) * 0.37
		if m.Parity(u, 0.1) != m.Parity(u, 0.1) {
			t.Fatal("parity must be deterministic")
		}
	}
}

func TestMapRejectsNonFinite(t *testing.T) {
	for _, m := range []Mapping{NewMobius(), NewCylinder(), NewKlein()} {
		_, _, _, err := m.Map(math.NaN(), 0.2)
		if !errors.Is(err, topo.ErrDomain) {
			t.Errorf("%s: expected ErrDomain for NaN input, got %v", m.Name(), err)
		}
		_, _, _, err = m.Map(0, math.Inf(1))
		if !errors.Is(err, topo.ErrDomain) {
			t.Errorf("%s: expected ErrDomain for Inf input, got %v", m.Name(), err)
		}
	}
}

func TestMobiusDegenerateCenter(t *testing.T) {
	m := NewMobius()
	// v = -R/(W·cos(u/2)) collapses the strip onto the axis circle; ru
	// still has a z component there, so the mapping itself stays valid.
	_, ru, _, err := m.Map(0, -m.Radius/m.Width)
	if err != nil {
		t.Fatalf("unexpected error at center pinch: %v", err)
	}
	if ru.Norm() < geom.DegenerateNorm {
		t.Error("ru should keep its twist component at the pinch")
	}
}

func TestMobiusParams(t *testing.T) {
	m := NewMobius()
	m.SetParam("width", 0.3)
	if m.GetParams()["width"] != 0.3 {
		t.Error("width param not applied")
	}
}
