// Package scene owns the simulation: world geometry, the event-to-object
// mapping, object lifecycle, the scrolling activity list, and rate stats.
package scene

import (
	"time"

	"logfunnel/internal/physics"
)

// World geometry, in virtual pixels. The canvas scales these to terminal
// cells at render time.
const (
	ScreenWidth    = 1200.0
	ScreenHeight   = 800.0
	MainAreaWidth  = 850.0
	InfoPanelWidth = ScreenWidth - MainAreaWidth

	FunnelTopY         = 300.0
	FunnelEndWidth     = 150.0
	FunnelCenterX      = MainAreaWidth / 2
	FunnelOpeningLeft  = FunnelCenterX - FunnelEndWidth/2
	FunnelOpeningRight = FunnelCenterX + FunnelEndWidth/2

	Gravity       = 900.0
	Elasticity    = 0.9
	Friction      = 0.5
	WallThickness = 10.0
	Substeps      = 5

	MaxObjects = 100
	MinRadius  = 15.0
	MaxRadius  = 60.0

	SpawnVX          = -250.0
	SpawnVXJitterLo  = -200.0
	SpawnVXJitterHi  = 100.0
	SpawnVYJitter    = 50.0
	SpawnMarginRight = 20.0

	DespawnAfter = 10 * time.Second

	// Info panel scroll metrics.
	LineSpacing      = 20.0
	ScrollAreaHeight = ScreenHeight - 100
	FadeStartY       = ScrollAreaHeight - 6*LineSpacing
	FadeEndY         = ScrollAreaHeight
	MaxLabelLen      = 35

	SizeFloor     = 1000 // reset baseline for the largest-size-seen scale
	RateBufferCap = 3600
)

// Funnel is the pair of static walls narrowing toward the bottom opening.
type Funnel struct {
	Left, Right *physics.Segment
}

// NewFunnelSpace builds the physics world: gravity plus the two angled
// walls. Objects exiting between the walls' lower endpoints leave the scene.
func NewFunnelSpace() (*physics.Space, Funnel) {
	sp := physics.NewSpace()
	sp.Gravity = physics.Vec{X: 0, Y: Gravity}
	sp.Iterations = 20

	static := physics.NewStaticBody()
	left := physics.NewSegment(static,
		physics.Vec{X: 0, Y: FunnelTopY},
		physics.Vec{X: FunnelOpeningLeft, Y: ScreenHeight},
		WallThickness)
	right := physics.NewSegment(static,
		physics.Vec{X: MainAreaWidth, Y: FunnelTopY},
		physics.Vec{X: FunnelOpeningRight, Y: ScreenHeight},
		WallThickness)
	left.Elasticity = Elasticity
	right.Elasticity = Elasticity
	sp.AddShape(left)
	sp.AddShape(right)

	return sp, Funnel{Left: left, Right: right}
}
