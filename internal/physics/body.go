package physics

type Body struct {
	pos    Vec
	vel    Vec
	angle  float64
	angVel float64

	mass      float64
	invMass   float64
	moment    float64
	invMoment float64
}

// NewBody creates a dynamic body with the given mass and moment of inertia.
func NewBody(mass, moment float64) *Body {
	b := &Body{mass: mass, moment: moment}
	if mass > 0 {
		b.invMass = 1 / mass
	}
	if moment > 0 {
		b.invMoment = 1 / moment
	}
	return b
}

// NewStaticBody creates an immovable body (infinite mass), used for walls.
func NewStaticBody() *Body {
	return &Body{}
}

func (b *Body) Position() Vec      { return b.pos }
func (b *Body) Velocity() Vec      { return b.vel }
func (b *Body) Angle() float64     { return b.angle }
func (b *Body) Mass() float64      { return b.mass }
func (b *Body) SetPosition(p Vec)  { b.pos = p }
func (b *Body) SetVelocity(v Vec)  { b.vel = v }
func (b *Body) SetAngularVelocity(w float64) { b.angVel = w }

func (b *Body) static() bool { return b.invMass == 0 }

// applyImpulse applies an impulse at a world-space contact point, updating
// both linear and angular velocity.
func (b *Body) applyImpulse(impulse, contact Vec) {
	if b.static() {
		return
	}
	b.vel = b.vel.Add(impulse.Scale(b.invMass))
	r := contact.Sub(b.pos)
	b.angVel += r.Cross(impulse) * b.invMoment
}

// MomentForCircle returns the moment of inertia of a solid circle of the
// given radius about its center.
func MomentForCircle(mass, radius float64) float64 {
	return 0.5 * mass * radius * radius
}

// MomentForBox returns the moment of inertia of a solid box about its center.
func MomentForBox(mass, width, height float64) float64 {
	return mass * (width*width + height*height) / 12
}

// MomentForPoly returns the moment of inertia of a solid polygon about the
// body origin.
func MomentForPoly(mass float64, verts []Vec) float64 {
	var num, den float64
	n := len(verts)
	for i := 0; i < n; i++ {
		v1 := verts[i]
		v2 := verts[(i+1)%n]
		cross := v2.Cross(v1)
		num += cross * (v1.Dot(v1) + v1.Dot(v2) + v2.Dot(v2))
		den += cross
	}
	if den == 0 {
		return 0
	}
	return mass * num / (6 * den)
}
