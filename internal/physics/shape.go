package physics

// Shape is a collision volume attached to a body. Dynamic shapes collide
// through a bounding-circle proxy, which keeps the solver small while the
// renderer still draws the exact outline.
type Shape interface {
	Body() *Body
	// proxy returns the world-space bounding circle used for contacts.
	proxy() (center Vec, radius float64)
	material() (elasticity, friction float64)
}

// Material carries the surface constants shared by every shape kind.
type Material struct {
	Elasticity float64
	Friction   float64
}

type Circle struct {
	Material
	body   *Body
	Radius float64
}

func NewCircle(body *Body, radius float64) *Circle {
	return &Circle{body: body, Radius: radius}
}

func (c *Circle) Body() *Body { return c.body }

func (c *Circle) proxy() (Vec, float64) { return c.body.pos, c.Radius }

func (c *Circle) material() (float64, float64) { return c.Elasticity, c.Friction }

// Poly is a convex polygon given by body-local vertices.
type Poly struct {
	Material
	body  *Body
	verts []Vec
	bound float64
}

func NewPoly(body *Body, verts []Vec) *Poly {
	p := &Poly{body: body, verts: verts}
	for _, v := range verts {
		if l := v.Length(); l > p.bound {
			p.bound = l
		}
	}
	return p
}

func (p *Poly) Body() *Body { return p.body }

func (p *Poly) proxy() (Vec, float64) { return p.body.pos, p.bound }

func (p *Poly) material() (float64, float64) { return p.Elasticity, p.Friction }

// Vertices returns the polygon's corners in world space.
func (p *Poly) Vertices() []Vec {
	out := make([]Vec, len(p.verts))
	for i, v := range p.verts {
		out[i] = p.body.pos.Add(v.Rotate(p.body.angle))
	}
	return out
}

// Segment is a thick line segment on a static body, used for the funnel
// walls. A and B are world coordinates since static bodies sit at the origin.
type Segment struct {
	Material
	body   *Body
	A, B   Vec
	Radius float64
}

func NewSegment(body *Body, a, b Vec, radius float64) *Segment {
	return &Segment{body: body, A: a, B: b, Radius: radius}
}

func (s *Segment) Body() *Body { return s.body }

// proxy is unused for segments; the solver special-cases them.
func (s *Segment) proxy() (Vec, float64) {
	mid := s.A.Add(s.B).Scale(0.5)
	return mid, s.B.Sub(s.A).Length()/2 + s.Radius
}

func (s *Segment) material() (float64, float64) { return s.Elasticity, s.Friction }

// closest returns the point on the segment's spine nearest to p.
func (s *Segment) closest(p Vec) Vec {
	ab := s.B.Sub(s.A)
	denom := ab.Dot(ab)
	if denom == 0 {
		return s.A
	}
	t := p.Sub(s.A).Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.A.Add(ab.Scale(t))
}
