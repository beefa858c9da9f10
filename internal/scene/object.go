package scene

import (
	"math/rand"
	"time"

	"logfunnel/internal/domain"
	"logfunnel/internal/physics"
)

// PaletteSize is how many display colors objects cycle through. The color is
// visual variety only, never derived from the event.
const PaletteSize = 6

// Object is one live simulated request. It owns a physics body plus one or
// two collision shapes (the DELETE cross carries two).
type Object struct {
	Event     domain.LogEvent
	Kind      domain.ShapeKind
	Color     int // palette index
	Radius    float64
	SpawnedAt time.Time

	body   *physics.Body
	shapes []physics.Shape
}

func (o *Object) Position() physics.Vec { return o.body.Position() }

// Shapes returns the object's collision shapes for drawing.
func (o *Object) Shapes() []physics.Shape { return o.shapes }

// arrow polygon for POST, pointing up; drawn at double scale while the
// moment keeps the unscaled outline, matching the tuned feel.
var arrowVerts = []physics.Vec{
	{X: 0, Y: -15}, {X: 10, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 15},
	{X: -5, Y: 15}, {X: -5, Y: 5}, {X: -10, Y: 5},
}

var squareVerts = []physics.Vec{
	{X: -15, Y: -15}, {X: 15, Y: -15}, {X: 15, Y: 15}, {X: -15, Y: 15},
}

// the two diagonal quads of the DELETE cross, branch width 10
var crossVerts1 = []physics.Vec{
	{X: -20, Y: -10}, {X: -10, Y: -20}, {X: 20, Y: 10}, {X: 10, Y: 20},
}
var crossVerts2 = []physics.Vec{
	{X: -20, Y: 10}, {X: -10, Y: 20}, {X: 20, Y: -10}, {X: 10, Y: -20},
}

// radiusFor maps an event's size onto [MinRadius, MaxRadius] relative to the
// largest size seen so far. POST, DELETE and 404 always get the minimum.
func radiusFor(ev domain.LogEvent, largestSeen int64) float64 {
	if ev.Status == 404 || ev.Method == domain.MethodPost || ev.Method == domain.MethodDelete {
		return MinRadius
	}
	r := MinRadius
	if largestSeen > 0 {
		scale := float64(ev.Size) / float64(largestSeen)
		if scale > 1 {
			scale = 1
		}
		r = MinRadius + scale*(MaxRadius-MinRadius)
	}
	if r > MaxRadius {
		r = MaxRadius
	}
	return r
}

// newObject maps an event to a body and shapes and registers them with the
// space. largestSeen is the scaling baseline at spawn time.
func newObject(sp *physics.Space, ev domain.LogEvent, largestSeen int64, rnd *rand.Rand, now time.Time) *Object {
	kind := domain.KindFor(ev)
	radius := radiusFor(ev, largestSeen)

	// arrows and crosses keep a nominal mass so size never changes their feel
	mass := radius * radius
	if kind == domain.ShapeArrow || kind == domain.ShapeCross {
		mass = 1
	}

	o := &Object{
		Event:     ev,
		Kind:      kind,
		Color:     rnd.Intn(PaletteSize),
		Radius:    radius,
		SpawnedAt: now,
	}

	switch kind {
	case domain.ShapeArrow:
		scaled := make([]physics.Vec, len(arrowVerts))
		for i, v := range arrowVerts {
			scaled[i] = v.Scale(2)
		}
		o.body = physics.NewBody(mass, physics.MomentForPoly(mass, arrowVerts))
		o.shapes = []physics.Shape{physics.NewPoly(o.body, scaled)}
	case domain.ShapeCross:
		o.body = physics.NewBody(mass, physics.MomentForBox(mass, 30, 30))
		o.shapes = []physics.Shape{
			physics.NewPoly(o.body, crossVerts1),
			physics.NewPoly(o.body, crossVerts2),
		}
	case domain.ShapeSquare:
		o.body = physics.NewBody(mass, physics.MomentForPoly(mass, squareVerts))
		o.shapes = []physics.Shape{physics.NewPoly(o.body, squareVerts)}
	default:
		o.body = physics.NewBody(mass, physics.MomentForCircle(mass, radius))
		o.shapes = []physics.Shape{physics.NewCircle(o.body, radius)}
	}

	for _, sh := range o.shapes {
		switch s := sh.(type) {
		case *physics.Circle:
			s.Elasticity, s.Friction = Elasticity, Friction
		case *physics.Poly:
			s.Elasticity, s.Friction = Elasticity, Friction
		}
	}

	o.body.SetPosition(physics.Vec{
		X: MainAreaWidth - SpawnMarginRight - radius,
		Y: 20 + rnd.Float64()*30,
	})
	o.body.SetVelocity(physics.Vec{
		X: SpawnVX + SpawnVXJitterLo + rnd.Float64()*(SpawnVXJitterHi-SpawnVXJitterLo),
		Y: -SpawnVYJitter + rnd.Float64()*2*SpawnVYJitter,
	})

	sp.AddBody(o.body)
	for _, sh := range o.shapes {
		sp.AddShape(sh)
	}
	return o
}

// remove deregisters the object's shapes and body from the space. Must be
// called exactly once, paired with dropping the object from the live set.
func (o *Object) remove(sp *physics.Space) {
	for _, sh := range o.shapes {
		sp.RemoveShape(sh)
	}
	sp.RemoveBody(o.body)
}
