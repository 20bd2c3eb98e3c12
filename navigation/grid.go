package navigation

import "slices"

// Cell flags for the navigation grid
const (
	CellOpen    uint8 = 0
	CellBlocked uint8 = 1 << 0
	CellHazard  uint8 = 1 << 1 // Walkable but avoided by AI
)

// Grid is the world's coarse walkability map consumed by the pathfinding collaborator
// Flat row-major storage, index y*Width + x
type Grid struct {
	Width, Height int
	CellSize      float64 // World units per cell
	cells         []uint8
}

// NewGrid creates an all-open grid
func NewGrid(width, height int, cellSize float64) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		cells:    make([]uint8, width*height),
	}
}

// InBounds reports whether (x, y) is a valid cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Flags returns the cell flags; out-of-bounds cells read as blocked
func (g *Grid) Flags(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return CellBlocked
	}
	return g.cells[y*g.Width+x]
}

// SetFlags overwrites cell flags, out-of-bounds writes are ignored
func (g *Grid) SetFlags(x, y int, flags uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = flags
}

// Blocked reports whether the cell is impassable
func (g *Grid) Blocked(x, y int) bool {
	return g.Flags(x, y)&CellBlocked != 0
}

// SetBlocked toggles the blocked flag of a cell
func (g *Grid) SetBlocked(x, y int, blocked bool) {
	if !g.InBounds(x, y) {
		return
	}
	idx := y*g.Width + x
	if blocked {
		g.cells[idx] |= CellBlocked
	} else {
		g.cells[idx] &^= CellBlocked
	}
}

// CellAt maps a world position to cell coordinates
func (g *Grid) CellAt(wx, wy float64) (x, y int) {
	size := g.CellSize
	if size <= 0 {
		size = 1
	}
	return int(floorDiv(wx, size)), int(floorDiv(wy, size))
}

// BlockedCount returns the number of blocked cells
func (g *Grid) BlockedCount() int {
	n := 0
	for _, c := range g.cells {
		if c&CellBlocked != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy, nil-safe
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	return &Grid{
		Width:    g.Width,
		Height:   g.Height,
		CellSize: g.CellSize,
		cells:    slices.Clone(g.cells),
	}
}

// Equal compares dimensions and cell contents, nil-safe
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.Width == other.Width &&
		g.Height == other.Height &&
		g.CellSize == other.CellSize &&
		slices.Equal(g.cells, other.cells)
}

func floorDiv(v, size float64) float64 {
	q := v / size
	i := float64(int(q))
	if q < 0 && i != q {
		i--
	}
	return i
}
