package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a
// bounded play field. Objects are inserted by position and index, then nearby
// objects can be queried via a 3x3 neighborhood lookup. Positions outside the
// field fall into the nearest edge cell.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that all potential collisions are found within
// the 3x3 neighborhood.
type SpatialGrid struct {
	width       float64
	height      float64
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering a width×height field.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	g := &SpatialGrid{width: width, height: height}
	g.Reset(cellSize)
	return g
}

// Reset empties the grid and switches it to cellSize. A non-positive size
// makes the whole field one cell. Cell memory is kept when the layout does not
// change.
func (g *SpatialGrid) Reset(cellSize float64) {
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		cellSize = max(g.width, g.height, 1)
	}
	cols := max(1, int(math.Ceil(g.width/cellSize)))
	rows := max(1, int(math.Ceil(g.height/cellSize)))

	g.cellSize = cellSize
	g.invCellSize = 1.0 / cellSize
	if cols == g.cols && rows == g.rows {
		g.Clear()
		return
	}
	g.cols, g.rows = cols, rows
	g.cells = make([]gridCell, cols*rows)
}

// CellSize returns the current cell edge length.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(p Vec2, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around p. If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(p Vec2, fn func(index int) bool) {
	col, row := g.posToCell(p)

	for r := max(0, row-1); r <= min(g.rows-1, row+1); r++ {
		rowOffset := r * g.cols
		for c := max(0, col-1); c <= min(g.cols-1, col+1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts field coordinates to grid cell coordinates, clamped to
// the grid.
func (g *SpatialGrid) posToCell(p Vec2) (col, row int) {
	col = int(math.Floor(p.X * g.invCellSize))
	row = int(math.Floor(p.Y * g.invCellSize))
	col = max(0, min(col, g.cols-1))
	row = max(0, min(row, g.rows-1))
	return col, row
}
