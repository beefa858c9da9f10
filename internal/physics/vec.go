// Package physics is a small 2D rigid-body solver: bodies carry mass and
// velocity, shapes attach to bodies, and a Space integrates gravity and
// resolves contacts with impulses. It exposes only what the funnel scene
// needs: register, deregister, step, and per-body state.
package physics

import "math"

type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec      { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec      { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Dot(o Vec) float64  { return v.X*o.X + v.Y*o.Y }
func (v Vec) Cross(o Vec) float64 { return v.X*o.Y - v.Y*o.X }
func (v Vec) Length() float64    { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec) Perp() Vec { return Vec{-v.Y, v.X} }

func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Rotate rotates v by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}
