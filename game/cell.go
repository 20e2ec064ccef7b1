package game

// Cell is one square of the spatial grid holding the bodies whose
// positions fall inside it. Order is not significant.
type Cell struct {
	// Bodies in this cell (preallocated slice)
	bodies []*Body

	// Current count of indexed bodies
	Count int
}

// NewCell creates a new cell with preallocated body storage
func NewCell(initialCapacity int) *Cell {
	return &Cell{
		bodies: make([]*Body, 0, initialCapacity),
	}
}

// Add inserts a body into this cell
func (c *Cell) Add(b *Body) {
	for i := 0; i < c.Count; i++ {
		if c.bodies[i] == b {
			return // Already in cell
		}
	}

	if c.Count < len(c.bodies) {
		c.bodies[c.Count] = b
	} else {
		c.bodies = append(c.bodies, b)
	}
	c.Count++
}

// Remove takes a body out of this cell. Returns false if it was not there.
func (c *Cell) Remove(b *Body) bool {
	for i := 0; i < c.Count; i++ {
		if c.bodies[i] == b {
			// Swap with last element and decrease count
			c.bodies[i] = c.bodies[c.Count-1]
			c.bodies[c.Count-1] = nil
			c.Count--
			return true
		}
	}
	return false
}

// Contains reports whether the body is indexed in this cell
func (c *Cell) Contains(b *Body) bool {
	for i := 0; i < c.Count; i++ {
		if c.bodies[i] == b {
			return true
		}
	}
	return false
}

// Bodies returns the bodies in this cell. The slice aliases cell storage
// and must not be held across a Place or Remove.
func (c *Cell) Bodies() []*Body {
	return c.bodies[:c.Count]
}
