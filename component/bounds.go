package component

import (
	"math"

	"github.com/lixenwraith/worldstore/vmath"
)

// ShapeKind tags the active CollisionBounds variant
type ShapeKind uint8

const (
	ShapeNone ShapeKind = iota // Zero-value bounds only, never produced by a constructor
	ShapeCircle
	ShapeAABB
	ShapeWall
	ShapeMesh
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeAABB:
		return "aabb"
	case ShapeWall:
		return "wall"
	case ShapeMesh:
		return "mesh"
	default:
		return "none"
	}
}

// Shape is the sealed set of collider variants
// Only Circle, AABB, *Wall and *Mesh implement it; the tag is derived from the payload so the two cannot disagree
type Shape interface {
	Kind() ShapeKind
	// Extent returns the local-space axis-aligned box enclosing the shape
	Extent() AABB
	clone() Shape
}

// Circle is an inline radius collider centered on the entity origin
type Circle struct {
	Radius float64
}

func (Circle) Kind() ShapeKind { return ShapeCircle }

func (c Circle) Extent() AABB {
	return AABB{
		Min: vmath.V2F(-c.Radius, -c.Radius),
		Max: vmath.V2F(c.Radius, c.Radius),
	}
}

func (c Circle) clone() Shape { return c }

// AABB is an inline axis-aligned box in local space
type AABB struct {
	Min, Max vmath.Vec2F
}

func (AABB) Kind() ShapeKind { return ShapeAABB }

func (a AABB) Extent() AABB { return a }

func (a AABB) clone() Shape { return a }

// Size returns Max - Min
func (a AABB) Size() vmath.Vec2F {
	return vmath.V2FSub(a.Max, a.Min)
}

// Center returns the box midpoint
func (a AABB) Center() vmath.Vec2F {
	return vmath.V2FScale(vmath.V2FAdd(a.Min, a.Max), 0.5)
}

// Translate offsets the box by p
func (a AABB) Translate(p vmath.Vec2F) AABB {
	return AABB{Min: vmath.V2FAdd(a.Min, p), Max: vmath.V2FAdd(a.Max, p)}
}

// Overlaps reports whether two boxes intersect, touching edges count
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// Contains reports whether p lies inside or on the box
func (a AABB) Contains(p vmath.Vec2F) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// Edge is one oriented side of a wall with its precomputed outward unit normal
type Edge struct {
	Start, End vmath.Vec2F
	Normal     vmath.Vec2F
}

// Wall is a rotated rectangle: bounding box plus 4 oriented edges forming a closed loop
// Heap payload, read-only after construction
type Wall struct {
	bounds AABB
	edges  []Edge
}

func (*Wall) Kind() ShapeKind { return ShapeWall }

func (w *Wall) Extent() AABB { return w.bounds }

func (w *Wall) clone() Shape {
	edges := make([]Edge, len(w.edges))
	copy(edges, w.edges)
	return &Wall{bounds: w.bounds, edges: edges}
}

// Bounds returns the axis-aligned box of the rotated corners
func (w *Wall) Bounds() AABB { return w.bounds }

// EdgeCount returns the number of edges, always 4 for constructed walls
func (w *Wall) EdgeCount() int { return len(w.edges) }

// Edge returns edge i; edge i ends where edge (i+1)%4 starts
func (w *Wall) Edge(i int) Edge { return w.edges[i] }

// Mesh is a caller-provided local-space polygon with a conservative broad-phase radius
// Heap payload, read-only after construction
type Mesh struct {
	vertices    []vmath.Vec2F
	boundRadius float64
}

func (*Mesh) Kind() ShapeKind { return ShapeMesh }

func (m *Mesh) Extent() AABB {
	if len(m.vertices) == 0 {
		return Circle{Radius: m.boundRadius}.Extent()
	}
	box := AABB{Min: m.vertices[0], Max: m.vertices[0]}
	for _, v := range m.vertices[1:] {
		box.Min = vmath.V2FMin(box.Min, v)
		box.Max = vmath.V2FMax(box.Max, v)
	}
	return box
}

func (m *Mesh) clone() Shape {
	vertices := make([]vmath.Vec2F, len(m.vertices))
	copy(vertices, m.vertices)
	return &Mesh{vertices: vertices, boundRadius: m.boundRadius}
}

// VertexCount returns the number of polygon vertices
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// Vertex returns vertex i in local space
func (m *Mesh) Vertex(i int) vmath.Vec2F { return m.vertices[i] }

// BoundRadius returns the broad-phase radius
func (m *Mesh) BoundRadius() float64 { return m.boundRadius }

// CollisionBounds is the collider component, holding exactly one Shape
// Copying a CollisionBounds value shares the read-only Wall/Mesh payload; Clone produces an independent copy
type CollisionBounds struct {
	shape Shape
}

// NewCircle creates circle bounds
func NewCircle(radius float64) CollisionBounds {
	return CollisionBounds{shape: Circle{Radius: radius}}
}

// NewAABB creates a box of the given size centered on the origin: min = -size/2, max = +size/2
func NewAABB(size vmath.Vec2F) CollisionBounds {
	half := vmath.V2FScale(size, 0.5)
	return CollisionBounds{shape: AABB{
		Min: vmath.V2FScale(half, -1),
		Max: half,
	}}
}

// NewWall creates a size-sized rectangle rotated by angle radians around its center
// Corners wind (-,-) -> (+,-) -> (+,+) -> (-,+), so the clockwise perpendicular of each edge points outward
func NewWall(size vmath.Vec2F, angle float64) CollisionBounds {
	hw, hh := size.X/2, size.Y/2
	corners := [4]vmath.Vec2F{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	for i := range corners {
		corners[i] = vmath.V2FRotate(corners[i], angle)
	}

	bounds := AABB{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		bounds.Min = vmath.V2FMin(bounds.Min, c)
		bounds.Max = vmath.V2FMax(bounds.Max, c)
	}

	edges := make([]Edge, 4)
	for i := range corners {
		start, end := corners[i], corners[(i+1)%4]
		dir := vmath.V2FSub(end, start)
		edges[i] = Edge{
			Start:  start,
			End:    end,
			Normal: vmath.V2FNormalize(vmath.V2FPerpCW(dir)),
		}
	}

	return CollisionBounds{shape: &Wall{bounds: bounds, edges: edges}}
}

// NewMesh creates mesh bounds; vertices are copied so the caller keeps ownership of its slice
// A non-positive boundRadius is replaced by the farthest vertex distance
func NewMesh(vertices []vmath.Vec2F, boundRadius float64) CollisionBounds {
	owned := make([]vmath.Vec2F, len(vertices))
	copy(owned, vertices)
	if boundRadius <= 0 {
		for _, v := range owned {
			boundRadius = math.Max(boundRadius, vmath.V2FMag(v))
		}
	}
	return CollisionBounds{shape: &Mesh{vertices: owned, boundRadius: boundRadius}}
}

// Kind returns the active variant tag
func (b CollisionBounds) Kind() ShapeKind {
	if b.shape == nil {
		return ShapeNone
	}
	return b.shape.Kind()
}

// Shape returns the active variant for type switches
func (b CollisionBounds) Shape() Shape {
	return b.shape
}

// Extent returns the local-space broad-phase box, zero box for empty bounds
func (b CollisionBounds) Extent() AABB {
	if b.shape == nil {
		return AABB{}
	}
	return b.shape.Extent()
}

// Circle returns the circle payload if active
func (b CollisionBounds) Circle() (Circle, bool) {
	c, ok := b.shape.(Circle)
	return c, ok
}

// AABB returns the box payload if active
func (b CollisionBounds) AABB() (AABB, bool) {
	a, ok := b.shape.(AABB)
	return a, ok
}

// Wall returns the wall payload if active
func (b CollisionBounds) Wall() (*Wall, bool) {
	w, ok := b.shape.(*Wall)
	return w, ok
}

// Mesh returns the mesh payload if active
func (b CollisionBounds) Mesh() (*Mesh, bool) {
	m, ok := b.shape.(*Mesh)
	return m, ok
}

// Clone deep-copies heap payloads; inline variants copy trivially
func (b CollisionBounds) Clone() CollisionBounds {
	if b.shape == nil {
		return b
	}
	return CollisionBounds{shape: b.shape.clone()}
}
