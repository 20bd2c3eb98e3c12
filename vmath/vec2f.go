package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector for collision geometry
// Screen convention: +X right, +Y down
type Vec2F struct {
	X, Y float64
}

// V2F is shorthand construction
func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FDistSq returns squared distance between two points
func V2FDistSq(a, b Vec2F) float64 {
	return V2FMagSq(V2FSub(a, b))
}

// V2FNormalize returns unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FRotate rotates v by angle radians (closed-form 2D rotation)
func V2FRotate(v Vec2F, angle float64) Vec2F {
	sin, cos := math.Sincos(angle)
	return Vec2F{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// V2FPerp returns vector rotated 90° counter-clockwise
func V2FPerp(v Vec2F) Vec2F {
	return Vec2F{-v.Y, v.X}
}

// V2FPerpCW returns vector rotated 90° clockwise
// For a loop wound (-,-) -> (+,-) -> (+,+) this is the outward side
func V2FPerpCW(v Vec2F) Vec2F {
	return Vec2F{v.Y, -v.X}
}

// V2FMin returns component-wise minimum
func V2FMin(a, b Vec2F) Vec2F {
	return Vec2F{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
}

// V2FMax returns component-wise maximum
func V2FMax(a, b Vec2F) Vec2F {
	return Vec2F{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}

// V2FClamp clamps each component of v into [lo, hi]
func V2FClamp(v, lo, hi Vec2F) Vec2F {
	return V2FMax(lo, V2FMin(v, hi))
}

// V2FApproxEqual compares with absolute tolerance eps per component
func V2FApproxEqual(a, b Vec2F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
