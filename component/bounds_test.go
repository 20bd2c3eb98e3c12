package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/worldstore/vmath"
)

const eps = 1e-9

func TestNewCircle(t *testing.T) {
	b := NewCircle(3)
	require.Equal(t, ShapeCircle, b.Kind())

	c, ok := b.Circle()
	require.True(t, ok)
	assert.Equal(t, 3.0, c.Radius)

	_, ok = b.AABB()
	assert.False(t, ok)
	assert.Equal(t, AABB{Min: vmath.V2F(-3, -3), Max: vmath.V2F(3, 3)}, b.Extent())
}

func TestNewAABB(t *testing.T) {
	b := NewAABB(vmath.V2F(4, 2))
	require.Equal(t, ShapeAABB, b.Kind())

	box, ok := b.AABB()
	require.True(t, ok)
	assert.Equal(t, vmath.V2F(-2, -1), box.Min)
	assert.Equal(t, vmath.V2F(2, 1), box.Max)
	assert.Equal(t, vmath.V2F(4, 2), box.Size())
	assert.Equal(t, vmath.V2F(0, 0), box.Center())
}

func TestNewWallAxisAligned(t *testing.T) {
	b := NewWall(vmath.V2F(2, 2), 0)
	require.Equal(t, ShapeWall, b.Kind())

	w, ok := b.Wall()
	require.True(t, ok)
	assert.True(t, vmath.V2FApproxEqual(w.Bounds().Min, vmath.V2F(-1, -1), eps))
	assert.True(t, vmath.V2FApproxEqual(w.Bounds().Max, vmath.V2F(1, 1), eps))

	require.Equal(t, 4, w.EdgeCount())
	want := []vmath.Vec2F{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	for i, n := range want {
		assert.True(t, vmath.V2FApproxEqual(w.Edge(i).Normal, n, eps),
			"edge %d normal = %v, want %v", i, w.Edge(i).Normal, n)
	}
}

func TestNewWallLoopAndOutwardNormals(t *testing.T) {
	sizes := []vmath.Vec2F{{X: 2, Y: 2}, {X: 10, Y: 1}, {X: 0.5, Y: 7}}
	angles := []float64{0, 0.3, math.Pi / 4, math.Pi / 2, 2.5, math.Pi, -1.1}

	for _, size := range sizes {
		for _, angle := range angles {
			w, ok := NewWall(size, angle).Wall()
			require.True(t, ok)
			require.Equal(t, 4, w.EdgeCount())

			var centroid vmath.Vec2F
			for i := 0; i < 4; i++ {
				centroid = vmath.V2FAdd(centroid, w.Edge(i).Start)
			}
			centroid = vmath.V2FScale(centroid, 0.25)

			for i := 0; i < 4; i++ {
				e := w.Edge(i)
				next := w.Edge((i + 1) % 4)
				assert.True(t, vmath.V2FApproxEqual(e.End, next.Start, eps),
					"size %v angle %v: edge %d does not close onto %d", size, angle, i, (i+1)%4)

				assert.InDelta(t, 1.0, vmath.V2FMag(e.Normal), eps)
				assert.InDelta(t, 0.0, vmath.V2FDot(e.Normal, vmath.V2FSub(e.End, e.Start)), eps)

				mid := vmath.V2FScale(vmath.V2FAdd(e.Start, e.End), 0.5)
				assert.Greater(t, vmath.V2FDot(e.Normal, vmath.V2FSub(mid, centroid)), 0.0,
					"size %v angle %v: edge %d normal points inward", size, angle, i)

				assert.True(t, w.Bounds().Contains(e.Start))
			}
		}
	}
}

func TestNewWallRotatedBounds(t *testing.T) {
	w, _ := NewWall(vmath.V2F(2, 2), math.Pi/4).Wall()
	r := math.Sqrt2
	assert.True(t, vmath.V2FApproxEqual(w.Bounds().Min, vmath.V2F(-r, -r), eps))
	assert.True(t, vmath.V2FApproxEqual(w.Bounds().Max, vmath.V2F(r, r), eps))
}

func TestNewMeshCopiesVertices(t *testing.T) {
	verts := []vmath.Vec2F{{X: 0, Y: -2}, {X: 2, Y: 1}, {X: -2, Y: 1}}
	b := NewMesh(verts, 0)
	verts[0] = vmath.V2F(100, 100)

	m, ok := b.Mesh()
	require.True(t, ok)
	require.Equal(t, 3, m.VertexCount())
	assert.Equal(t, vmath.V2F(0, -2), m.Vertex(0))
	assert.InDelta(t, math.Sqrt(5), m.BoundRadius(), eps)
	assert.Equal(t, AABB{Min: vmath.V2F(-2, -2), Max: vmath.V2F(2, 1)}, b.Extent())

	explicit, _ := NewMesh(verts, 9).Mesh()
	assert.Equal(t, 9.0, explicit.BoundRadius())
}

func TestCloneDeepCopiesHeapPayloads(t *testing.T) {
	wall := NewWall(vmath.V2F(4, 2), 0.7)
	wallCopy := wall.Clone()
	w1, _ := wall.Wall()
	w2, _ := wallCopy.Wall()
	require.NotSame(t, w1, w2)
	assert.Equal(t, w1.Bounds(), w2.Bounds())

	// Mutating the original backing array must not leak into the clone
	w1.edges[0].Normal = vmath.V2F(42, 42)
	assert.NotEqual(t, w1.Edge(0), w2.Edge(0))

	mesh := NewMesh([]vmath.Vec2F{{X: 1, Y: 0}, {X: 0, Y: 1}}, 1)
	meshCopy := mesh.Clone()
	m1, _ := mesh.Mesh()
	m2, _ := meshCopy.Mesh()
	require.NotSame(t, m1, m2)
	m1.vertices[0] = vmath.V2F(-9, -9)
	assert.Equal(t, vmath.V2F(1, 0), m2.Vertex(0))

	circle := NewCircle(1)
	assert.Equal(t, circle, circle.Clone())
}

func TestZeroBounds(t *testing.T) {
	var b CollisionBounds
	assert.Equal(t, ShapeNone, b.Kind())
	assert.Equal(t, "none", b.Kind().String())
	assert.Equal(t, AABB{}, b.Extent())
	assert.Equal(t, b, b.Clone())
	_, ok := b.Wall()
	assert.False(t, ok)
}

func TestShapeKindNamesMatchVariants(t *testing.T) {
	tests := []struct {
		b    CollisionBounds
		kind ShapeKind
		name string
	}{
		{NewCircle(1), ShapeCircle, "circle"},
		{NewAABB(vmath.V2F(1, 1)), ShapeAABB, "aabb"},
		{NewWall(vmath.V2F(1, 1), 0), ShapeWall, "wall"},
		{NewMesh([]vmath.Vec2F{{X: 1}}, 1), ShapeMesh, "mesh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.b.Kind())
			assert.Equal(t, tt.kind, tt.b.Shape().Kind())
			assert.Equal(t, tt.name, tt.b.Kind().String())
		})
	}
}

func TestAABBOverlaps(t *testing.T) {
	a := AABB{Min: vmath.V2F(0, 0), Max: vmath.V2F(2, 2)}
	assert.True(t, a.Overlaps(AABB{Min: vmath.V2F(1, 1), Max: vmath.V2F(3, 3)}))
	assert.True(t, a.Overlaps(AABB{Min: vmath.V2F(2, 0), Max: vmath.V2F(3, 1)}))
	assert.False(t, a.Overlaps(AABB{Min: vmath.V2F(2.1, 0), Max: vmath.V2F(3, 1)}))
	assert.Equal(t, AABB{Min: vmath.V2F(5, 5), Max: vmath.V2F(7, 7)}, a.Translate(vmath.V2F(5, 5)))
}

func TestHealthDamageHeal(t *testing.T) {
	h := HealthComponent{Current: 5, Max: 10}
	assert.False(t, h.Damage(3))
	assert.True(t, h.Damage(4))
	assert.Equal(t, 0, h.Current)
	assert.False(t, h.Damage(1), "already dead")
	h.Heal(100)
	assert.Equal(t, 10, h.Current)
	assert.False(t, h.IsDead())
}
