package game

import "math"

// Grid is a uniform spatial partition over the world. Each indexed body
// lives in exactly one cell: the one containing its position.
type Grid struct {
	// Preallocated row-major cells
	cells []*Cell

	cellSize   float64
	numX, numY int
}

// NewGrid creates a grid covering width x height with square cells.
// Partial cells at the far edges are included.
func NewGrid(width, height, cellSize float64) *Grid {
	numX := int(math.Ceil(width / cellSize))
	numY := int(math.Ceil(height / cellSize))
	if numX < 1 {
		numX = 1
	}
	if numY < 1 {
		numY = 1
	}

	cells := make([]*Cell, numX*numY)
	for i := range cells {
		cells[i] = NewCell(16)
	}

	return &Grid{
		cells:    cells,
		cellSize: cellSize,
		numX:     numX,
		numY:     numY,
	}
}

// Dims returns the number of cells along X and Y
func (g *Grid) Dims() (int, int) {
	return g.numX, g.numY
}

// CellSize returns the side length of a cell
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell returns the cell at index i, or nil when out of range
func (g *Grid) Cell(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return g.cells[i]
}

// CellIndex converts a world position to a cell index.
// Positions are rounded to the nearest unit before bucketing and the result
// is clamped into the grid.
func (g *Grid) CellIndex(x, y float64) int {
	cx := int(math.Floor((x + 0.5) / g.cellSize))
	cy := int(math.Floor((y + 0.5) / g.cellSize))

	cx = max(0, min(cx, g.numX-1))
	cy = max(0, min(cy, g.numY-1))

	return cx + cy*g.numX
}

// CellBounds returns the world rectangle covered by cell i
func (g *Grid) CellBounds(i int) Rect {
	col := i % g.numX
	row := i / g.numX
	return Rect{
		X:      float64(col) * g.cellSize,
		Y:      float64(row) * g.cellSize,
		Width:  g.cellSize,
		Height: g.cellSize,
	}
}

// Place indexes the body under its current position.
// It is a no-op if the body is already in the right cell.
func (g *Grid) Place(b *Body) {
	idx := g.CellIndex(b.Pos.X, b.Pos.Y)
	if idx == b.cell {
		return
	}

	if old := g.Cell(b.cell); old != nil {
		old.Remove(b)
	}
	g.cells[idx].Add(b)
	b.cell = idx
}

// Remove drops the body from the cell it is indexed in
func (g *Grid) Remove(b *Body) {
	if c := g.Cell(b.cell); c != nil {
		c.Remove(b)
	}
	b.cell = -1
}

// Count returns the number of indexed bodies
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		n += c.Count
	}
	return n
}

// Neighborhood appends to dst the indices of the cells consulted for a
// point: the home cell, the nearer horizontal neighbor, the nearer vertical
// neighbor and the diagonal between those two. Between one and five cells.
//
// Bodies just across the far edge of the home cell are not seen. This keeps
// the per-body cost bounded at the price of missing some distant pairs.
func (g *Grid) Neighborhood(x, y float64, dst []int) []int {
	home := g.CellIndex(x, y)
	col := home % g.numX
	row := home / g.numX
	dst = append(dst, home)

	hasLeft := col > 0
	hasRight := col < g.numX-1
	hasTop := row > 0
	hasBottom := row < g.numY-1

	dx := 0
	switch {
	case hasLeft && hasRight:
		leftEdge := float64(col) * g.cellSize
		rightEdge := float64(col+1) * g.cellSize
		if math.Abs(x-leftEdge) < math.Abs(x-rightEdge) {
			dx = -1
		} else {
			dx = 1
		}
	case hasLeft:
		dx = -1
	case hasRight:
		dx = 1
	}

	dy := 0
	switch {
	case hasTop && hasBottom:
		topEdge := float64(row) * g.cellSize
		bottomEdge := float64(row+1) * g.cellSize
		if math.Abs(y-topEdge) < math.Abs(y-bottomEdge) {
			dy = -1
		} else {
			dy = 1
		}
	case hasTop:
		dy = -1
	case hasBottom:
		dy = 1
	}

	if dx != 0 {
		dst = append(dst, home+dx)
	}
	if dy != 0 {
		dst = append(dst, home+dy*g.numX)
	}
	if dx != 0 && dy != 0 {
		dst = append(dst, home+dx+dy*g.numX)
	}

	return dst
}

// Neighbors appends every body indexed in the neighborhood of (x, y) to dst.
// Callers scan the returned copy so they may safely mutate the grid.
func (g *Grid) Neighbors(x, y float64, cellBuf []int, dst []*Body) ([]int, []*Body) {
	cellBuf = g.Neighborhood(x, y, cellBuf[:0])
	for _, idx := range cellBuf {
		dst = append(dst, g.cells[idx].Bodies()...)
	}
	return cellBuf, dst
}
