package scene

import (
	"math/rand"
	"time"

	"logfunnel/internal/domain"
	"logfunnel/internal/physics"
)

// Scene owns the live objects and the physics world registrations behind
// them. All methods run on the render-loop goroutine only.
type Scene struct {
	space   *physics.Space
	funnel  Funnel
	objects []*Object

	largestSeen int64
	rnd         *rand.Rand
	now         func() time.Time
}

func New() *Scene {
	sp, fn := NewFunnelSpace()
	return &Scene{
		space:       sp,
		funnel:      fn,
		largestSeen: SizeFloor,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
}

func (s *Scene) Objects() []*Object { return s.objects }
func (s *Scene) Funnel() Funnel     { return s.funnel }
func (s *Scene) LargestSeen() int64 { return s.largestSeen }

// Spawn turns an event into a live object. Returns false and drops the
// event when the scene is at capacity.
func (s *Scene) Spawn(ev domain.LogEvent) bool {
	if len(s.objects) >= MaxObjects {
		return false
	}
	o := newObject(s.space, ev, s.largestSeen, s.rnd, s.now())
	s.objects = append(s.objects, o)
	if ev.Size > s.largestSeen {
		s.largestSeen = ev.Size
	}
	return true
}

// Step advances the physics world one frame, split into Substeps equal
// slices for collision accuracy.
func (s *Scene) Step(frameDT float64) {
	dt := frameDT / Substeps
	for i := 0; i < Substeps; i++ {
		s.space.Step(dt)
	}
}

// Reap removes objects that left through the funnel opening, then objects
// past their despawn time. The exit check runs first so an object eligible
// for both in the same frame counts as a clean exit.
func (s *Scene) Reap() {
	now := s.now()
	kept := s.objects[:0]
	for _, o := range s.objects {
		pos := o.Position()
		exited := pos.Y > ScreenHeight &&
			pos.X >= FunnelOpeningLeft && pos.X <= FunnelOpeningRight
		if exited || now.Sub(o.SpawnedAt) > DespawnAfter {
			o.remove(s.space)
			continue
		}
		kept = append(kept, o)
	}
	// clear trailing slots so removed objects can be collected
	for i := len(kept); i < len(s.objects); i++ {
		s.objects[i] = nil
	}
	s.objects = kept
}

// ResetScale drops the radius-scaling baseline back to the floor. Only
// future spawns are affected.
func (s *Scene) ResetScale() {
	s.largestSeen = SizeFloor
}
