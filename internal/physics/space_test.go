package physics

import (
	"math"
	"testing"
)

func TestGravityIntegration(t *testing.T) {
	s := NewSpace()
	s.Gravity = Vec{0, 900}

	body := NewBody(1, MomentForCircle(1, 10))
	body.SetPosition(Vec{100, 100})
	s.AddBody(body)
	s.AddShape(NewCircle(body, 10))

	s.Step(0.1)

	if got := body.Velocity().Y; math.Abs(got-90) > 1e-9 {
		t.Fatalf("vel.Y=%v, want 90", got)
	}
	if got := body.Position().Y; math.Abs(got-109) > 1e-9 {
		t.Fatalf("pos.Y=%v, want 109", got)
	}
	if got := body.Position().X; got != 100 {
		t.Fatalf("pos.X=%v, want 100 (no horizontal force)", got)
	}
}

func TestSubstepsFallMonotonically(t *testing.T) {
	s := NewSpace()
	s.Gravity = Vec{0, 900}
	body := NewBody(4, MomentForCircle(4, 5))
	body.SetPosition(Vec{50, 0})
	s.AddBody(body)
	s.AddShape(NewCircle(body, 5))

	prev := body.Position().Y
	for i := 0; i < 5; i++ {
		s.Step(1.0 / 60 / 5)
		if y := body.Position().Y; y <= prev {
			t.Fatalf("substep %d: y=%v did not advance past %v", i, y, prev)
		} else {
			prev = y
		}
	}
}

func TestCircleBouncesOffSegment(t *testing.T) {
	s := NewSpace()
	s.Gravity = Vec{0, 900}

	wall := NewSegment(NewStaticBody(), Vec{0, 100}, Vec{200, 100}, 10)
	wall.Elasticity = 0.9
	s.AddShape(wall)

	body := NewBody(1, MomentForCircle(1, 15))
	body.SetPosition(Vec{100, 80}) // overlapping the wall's reach
	body.SetVelocity(Vec{0, 50})
	s.AddBody(body)
	c := NewCircle(body, 15)
	c.Elasticity = 0.9
	s.AddShape(c)

	s.Step(0.01)

	if got := body.Velocity().Y; got >= 0 {
		t.Fatalf("vel.Y=%v, want negative (bounced upward)", got)
	}
}

func TestDynamicCirclesSeparate(t *testing.T) {
	s := NewSpace()

	a := NewBody(1, MomentForCircle(1, 10))
	a.SetPosition(Vec{100, 100})
	a.SetVelocity(Vec{20, 0})
	s.AddBody(a)
	s.AddShape(NewCircle(a, 10))

	b := NewBody(1, MomentForCircle(1, 10))
	b.SetPosition(Vec{112, 100}) // overlapping: centers 12 apart, radii sum 20
	s.AddBody(b)
	s.AddShape(NewCircle(b, 10))

	s.Step(0.01)

	if a.Velocity().X >= 20 {
		t.Fatalf("a.vel.X=%v, want reduced by the collision", a.Velocity().X)
	}
	if b.Velocity().X <= 0 {
		t.Fatalf("b.vel.X=%v, want pushed rightward", b.Velocity().X)
	}
}

func TestSiblingShapesNeverCollide(t *testing.T) {
	s := NewSpace()
	body := NewBody(1, MomentForBox(1, 30, 30))
	body.SetPosition(Vec{100, 100})
	s.AddBody(body)
	// two overlapping shapes on one body, like the DELETE cross
	s.AddShape(NewPoly(body, []Vec{{-15, -5}, {15, -5}, {15, 5}, {-15, 5}}))
	s.AddShape(NewPoly(body, []Vec{{-5, -15}, {5, -15}, {5, 15}, {-5, 15}}))

	s.Step(0.01)

	if v := body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("vel=%+v, want zero (no gravity, no self-collision)", v)
	}
}

func TestRemoveDetaches(t *testing.T) {
	s := NewSpace()
	s.Gravity = Vec{0, 900}
	body := NewBody(1, MomentForCircle(1, 10))
	c := NewCircle(body, 10)
	s.AddBody(body)
	s.AddShape(c)

	s.RemoveShape(c)
	s.RemoveBody(body)
	if s.BodyCount() != 0 {
		t.Fatalf("BodyCount=%d after removal, want 0", s.BodyCount())
	}

	s.Step(0.1)
	if body.Velocity().Y != 0 {
		t.Fatalf("removed body still integrated: vel.Y=%v", body.Velocity().Y)
	}

	// removing again is a no-op
	s.RemoveShape(c)
	s.RemoveBody(body)
}

func TestMomentForPolyMatchesBox(t *testing.T) {
	square := []Vec{{-15, -15}, {15, -15}, {15, 15}, {-15, 15}}
	got := MomentForPoly(2, square)
	want := MomentForBox(2, 30, 30)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("MomentForPoly=%v, MomentForBox=%v", got, want)
	}
}
