package physics

import (
	"math"

	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/vmath"
)

// polygon is a convex world-space outline with outward unit normals, one per edge
type polygon struct {
	points  []vmath.Vec2F
	normals []vmath.Vec2F
}

// disc is a world-space circle; meshes collide through their bounding radius
type disc struct {
	center vmath.Vec2F
	radius float64
}

// Overlaps reports whether bounds a placed at pa intersects bounds b placed at pb
// Touching counts as overlap. Zero-value bounds never overlap anything.
func Overlaps(a component.CollisionBounds, pa vmath.Vec2F, b component.CollisionBounds, pb vmath.Vec2F) bool {
	if a.Kind() == component.ShapeNone || b.Kind() == component.ShapeNone {
		return false
	}

	// Broad phase on extents
	if !worldExtent(a, pa).Overlaps(worldExtent(b, pb)) {
		return false
	}

	da, aRound := asDisc(a, pa)
	db, bRound := asDisc(b, pb)
	switch {
	case aRound && bRound:
		r := da.radius + db.radius
		return vmath.V2FDistSq(da.center, db.center) <= r*r
	case aRound:
		return discPolygon(da, asPolygon(b, pb))
	case bRound:
		return discPolygon(db, asPolygon(a, pa))
	default:
		return polygonsOverlap(asPolygon(a, pa), asPolygon(b, pb))
	}
}

// worldExtent is the placed broad-phase box; meshes use their bounding radius like the narrow phase
func worldExtent(b component.CollisionBounds, p vmath.Vec2F) component.AABB {
	if m, ok := b.Mesh(); ok {
		r := m.BoundRadius()
		return component.AABB{Min: vmath.V2F(p.X-r, p.Y-r), Max: vmath.V2F(p.X+r, p.Y+r)}
	}
	return b.Extent().Translate(p)
}

func asDisc(b component.CollisionBounds, p vmath.Vec2F) (disc, bool) {
	if c, ok := b.Circle(); ok {
		return disc{center: p, radius: c.Radius}, true
	}
	if m, ok := b.Mesh(); ok {
		return disc{center: p, radius: m.BoundRadius()}, true
	}
	return disc{}, false
}

func asPolygon(b component.CollisionBounds, p vmath.Vec2F) polygon {
	if w, ok := b.Wall(); ok {
		poly := polygon{
			points:  make([]vmath.Vec2F, w.EdgeCount()),
			normals: make([]vmath.Vec2F, w.EdgeCount()),
		}
		for i := range poly.points {
			e := w.Edge(i)
			poly.points[i] = vmath.V2FAdd(e.Start, p)
			poly.normals[i] = e.Normal
		}
		return poly
	}

	box, _ := b.AABB()
	box = box.Translate(p)
	return polygon{
		points: []vmath.Vec2F{
			box.Min,
			{X: box.Max.X, Y: box.Min.Y},
			box.Max,
			{X: box.Min.X, Y: box.Max.Y},
		},
		normals: []vmath.Vec2F{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}},
	}
}

// polygonsOverlap is a separating axis test over both normal sets
func polygonsOverlap(a, b polygon) bool {
	for _, axis := range a.normals {
		if separated(a, b, axis) {
			return false
		}
	}
	for _, axis := range b.normals {
		if separated(a, b, axis) {
			return false
		}
	}
	return true
}

func separated(a, b polygon, axis vmath.Vec2F) bool {
	aMin, aMax := project(a.points, axis)
	bMin, bMax := project(b.points, axis)
	return aMax < bMin || bMax < aMin
}

func project(points []vmath.Vec2F, axis vmath.Vec2F) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		d := vmath.V2FDot(p, axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// discPolygon tests a circle against a convex polygon: center inside, or any edge within radius
func discPolygon(d disc, poly polygon) bool {
	inside := true
	for i, n := range poly.normals {
		if vmath.V2FDot(n, vmath.V2FSub(d.center, poly.points[i])) > 0 {
			inside = false
			break
		}
	}
	if inside {
		return true
	}

	rSq := d.radius * d.radius
	for i, start := range poly.points {
		end := poly.points[(i+1)%len(poly.points)]
		if vmath.V2FDistSq(d.center, closestOnSegment(d.center, start, end)) <= rSq {
			return true
		}
	}
	return false
}

func closestOnSegment(p, a, b vmath.Vec2F) vmath.Vec2F {
	ab := vmath.V2FSub(b, a)
	lenSq := vmath.V2FMagSq(ab)
	if lenSq == 0 {
		return a
	}
	t := vmath.V2FDot(vmath.V2FSub(p, a), ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return vmath.V2FAdd(a, vmath.V2FScale(ab, t))
}
