package physics

const (
	correctionPercent = 0.2  // fraction of penetration corrected per step
	penetrationSlop   = 0.01 // penetration allowed before correction kicks in
)

// Space holds every registered body and shape and advances them through
// time. Not safe for concurrent use; the render loop is its only caller.
type Space struct {
	Gravity    Vec
	Iterations int // impulse-solver passes per step

	bodies   []*Body
	dynamics []Shape // dynamic shapes, bounding-circle contacts
	segments []*Segment
}

func NewSpace() *Space {
	return &Space{Iterations: 10}
}

// AddBody registers a dynamic body for integration. Static bodies need no
// registration.
func (s *Space) AddBody(b *Body) {
	s.bodies = append(s.bodies, b)
}

func (s *Space) AddShape(sh Shape) {
	if seg, ok := sh.(*Segment); ok {
		s.segments = append(s.segments, seg)
		return
	}
	s.dynamics = append(s.dynamics, sh)
}

// RemoveShape deregisters a shape. Removing a shape that was never added is
// a no-op.
func (s *Space) RemoveShape(sh Shape) {
	if seg, ok := sh.(*Segment); ok {
		for i, x := range s.segments {
			if x == seg {
				s.segments = append(s.segments[:i], s.segments[i+1:]...)
				return
			}
		}
		return
	}
	for i, x := range s.dynamics {
		if x == sh {
			s.dynamics = append(s.dynamics[:i], s.dynamics[i+1:]...)
			return
		}
	}
}

func (s *Space) RemoveBody(b *Body) {
	for i, x := range s.bodies {
		if x == b {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return
		}
	}
}

// BodyCount reports registered dynamic bodies, for tests and debugging.
func (s *Space) BodyCount() int { return len(s.bodies) }

// Step advances the simulation by dt seconds: apply gravity, resolve
// contacts, integrate positions. Callers substep (several small dt per
// frame) for collision accuracy at high velocity.
func (s *Space) Step(dt float64) {
	for _, b := range s.bodies {
		if b.static() {
			continue
		}
		b.vel = b.vel.Add(s.Gravity.Scale(dt))
	}

	for it := 0; it < s.Iterations; it++ {
		s.solveContacts()
	}

	for _, b := range s.bodies {
		if b.static() {
			continue
		}
		b.pos = b.pos.Add(b.vel.Scale(dt))
		b.angle += b.angVel * dt
	}
}

func (s *Space) solveContacts() {
	for i := 0; i < len(s.dynamics); i++ {
		a := s.dynamics[i]
		for j := i + 1; j < len(s.dynamics); j++ {
			b := s.dynamics[j]
			if a.Body() == b.Body() {
				continue // sibling shapes on one body (the cross) never collide
			}
			s.collideDynamic(a, b)
		}
		for _, seg := range s.segments {
			s.collideSegment(a, seg)
		}
	}
}

func (s *Space) collideDynamic(a, b Shape) {
	ca, ra := a.proxy()
	cb, rb := b.proxy()
	delta := cb.Sub(ca)
	dist := delta.Length()
	if dist >= ra+rb {
		return
	}
	var normal Vec
	if dist == 0 {
		normal = Vec{0, 1}
	} else {
		normal = delta.Scale(1 / dist)
	}
	contact := ca.Add(normal.Scale(ra))
	s.resolve(a, b, normal, ra+rb-dist, contact)
}

func (s *Space) collideSegment(a Shape, seg *Segment) {
	ca, ra := a.proxy()
	closest := seg.closest(ca)
	delta := ca.Sub(closest)
	dist := delta.Length()
	reach := ra + seg.Radius
	if dist >= reach {
		return
	}
	var normal Vec
	if dist == 0 {
		normal = Vec{0, -1}
	} else {
		normal = delta.Scale(1 / dist)
	}
	// normal points from the wall toward the shape; resolve expects
	// a->b, so treat the segment as "a" and the shape as "b".
	contact := closest.Add(normal.Scale(seg.Radius))
	s.resolve(seg, a, normal, reach-dist, contact)
}

// resolve applies an impulse pushing b along normal (and a against it),
// then corrects residual penetration positionally.
func (s *Space) resolve(a, b Shape, normal Vec, penetration float64, contact Vec) {
	ba, bb := a.Body(), b.Body()

	ra := contact.Sub(ba.pos)
	rb := contact.Sub(bb.pos)
	velA := ba.vel.Add(ra.Perp().Scale(ba.angVel))
	velB := bb.vel.Add(rb.Perp().Scale(bb.angVel))
	rv := velB.Sub(velA)

	alongNormal := rv.Dot(normal)
	if alongNormal > 0 {
		return // separating
	}

	ea, fa := a.material()
	eb, fb := b.material()
	e := ea * eb
	mu := fa * fb

	invMassSum := ba.invMass + bb.invMass
	if invMassSum == 0 {
		return
	}
	raN := ra.Cross(normal)
	rbN := rb.Cross(normal)
	denom := invMassSum + raN*raN*ba.invMoment + rbN*rbN*bb.invMoment

	j := -(1 + e) * alongNormal / denom
	impulse := normal.Scale(j)
	ba.applyImpulse(impulse.Scale(-1), contact)
	bb.applyImpulse(impulse, contact)

	// friction along the tangent, clamped by the normal impulse
	tangent := rv.Sub(normal.Scale(alongNormal)).Normalize()
	jt := -rv.Dot(tangent) / denom
	if jt > mu*j {
		jt = mu * j
	} else if jt < -mu*j {
		jt = -mu * j
	}
	ft := tangent.Scale(jt)
	ba.applyImpulse(ft.Scale(-1), contact)
	bb.applyImpulse(ft, contact)

	if penetration > penetrationSlop {
		corr := normal.Scale(correctionPercent * (penetration - penetrationSlop) / invMassSum)
		if !ba.static() {
			ba.pos = ba.pos.Sub(corr.Scale(ba.invMass))
		}
		if !bb.static() {
			bb.pos = bb.pos.Add(corr.Scale(bb.invMass))
		}
	}
}
