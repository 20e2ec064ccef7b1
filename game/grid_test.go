package game

import (
	"math/rand"
	"slices"
	"testing"
)

func newIndexedBody(x, y float64) *Body {
	return &Body{Pos: Vec2{X: x, Y: y}, Mass: DefaultMass, Width: MeteorSize, Height: MeteorSize, alive: true, cell: -1}
}

func TestNewGridDims(t *testing.T) {
	tests := []struct {
		size, cell float64
		wantX      int
	}{
		{7000, 1000, 7},
		{5000, 600, 9},
		{10000, 1500, 7},
		{500, 1000, 1},
	}

	for _, tt := range tests {
		g := NewGrid(tt.size, tt.size, tt.cell)
		nx, ny := g.Dims()
		if nx != tt.wantX || ny != tt.wantX {
			t.Errorf("Grid(%v, %v): expected %dx%d, got %dx%d", tt.size, tt.cell, tt.wantX, tt.wantX, nx, ny)
		}
		if g.Len() != nx*ny {
			t.Errorf("Expected %d cells, got %d", nx*ny, g.Len())
		}
	}
}

func TestCellIndex(t *testing.T) {
	g := NewGrid(7000, 7000, 1000)

	tests := []struct {
		x, y float64
		want int
	}{
		{0, 0, 0},
		{999.4, 0, 0},
		{999.6, 0, 1},
		{1500, 1500, 8},
		{6999, 6999, 48},
		{7000, 7000, 48},
		{-50, -50, 0},
	}

	for _, tt := range tests {
		if got := g.CellIndex(tt.x, tt.y); got != tt.want {
			t.Errorf("CellIndex(%v, %v): expected %d, got %d", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestPlaceInvariant(t *testing.T) {
	g := NewGrid(7000, 7000, 1000)
	rng := rand.New(rand.NewSource(7))

	bodies := make([]*Body, 200)
	for i := range bodies {
		bodies[i] = newIndexedBody(rng.Float64()*7000, rng.Float64()*7000)
		g.Place(bodies[i])
	}

	// Move everything a few times and re-place
	for round := 0; round < 5; round++ {
		for _, b := range bodies {
			b.Pos = Vec2{X: 1 + rng.Float64()*6998, Y: 1 + rng.Float64()*6998}
			g.Place(b)

			if b.Cell() != g.CellIndex(b.Pos.X, b.Pos.Y) {
				t.Fatalf("Expected cell %d, got %d", g.CellIndex(b.Pos.X, b.Pos.Y), b.Cell())
			}
		}
	}

	if g.Count() != len(bodies) {
		t.Errorf("Expected %d indexed bodies, got %d", len(bodies), g.Count())
	}

	for _, b := range bodies {
		found := 0
		for i := 0; i < g.Len(); i++ {
			if g.Cell(i).Contains(b) {
				found++
			}
		}
		if found != 1 {
			t.Errorf("Expected body in exactly one cell, found in %d", found)
		}
	}
}

func TestPlaceSameCellIsNoop(t *testing.T) {
	g := NewGrid(7000, 7000, 1000)
	b := newIndexedBody(1500, 1500)

	g.Place(b)
	b.Pos.X += 10
	g.Place(b)

	if g.Count() != 1 {
		t.Errorf("Expected 1 indexed body, got %d", g.Count())
	}
	if b.Cell() != 8 {
		t.Errorf("Expected cell 8, got %d", b.Cell())
	}
}

func TestRemove(t *testing.T) {
	g := NewGrid(7000, 7000, 1000)
	a := newIndexedBody(1500, 1500)
	b := newIndexedBody(1600, 1600)
	g.Place(a)
	g.Place(b)

	g.Remove(a)

	if g.Cell(8).Contains(a) {
		t.Error("Expected removed body to be gone from its cell")
	}
	if !g.Cell(8).Contains(b) {
		t.Error("Expected other body to remain")
	}
	if a.Cell() != -1 {
		t.Errorf("Expected cell -1 after removal, got %d", a.Cell())
	}

	// Removing twice is harmless
	g.Remove(a)
	if g.Count() != 1 {
		t.Errorf("Expected 1 indexed body, got %d", g.Count())
	}
}

func TestNeighborhoodContainment(t *testing.T) {
	for _, cell := range []float64{LowQuality, MediumQuality, HighQuality} {
		g := NewGrid(MediumWorld, MediumWorld, cell)
		var buf []int
		for x := 1.0; x < MediumWorld; x += 97 {
			for y := 1.0; y < MediumWorld; y += 89 {
				buf = g.Neighborhood(x, y, buf[:0])

				if len(buf) < 1 || len(buf) > 5 {
					t.Fatalf("Expected 1-5 cells at (%v, %v), got %d", x, y, len(buf))
				}
				if !slices.Contains(buf, g.CellIndex(x, y)) {
					t.Fatalf("Neighborhood at (%v, %v) is missing the home cell", x, y)
				}
				for _, idx := range buf {
					if g.Cell(idx) == nil {
						t.Fatalf("Neighborhood at (%v, %v) has out of range cell %d", x, y, idx)
					}
				}
			}
		}
	}
}

func TestNeighborhoodNearestSide(t *testing.T) {
	g := NewGrid(7000, 7000, 1000)

	tests := []struct {
		name string
		x, y float64
		want []int
	}{
		{"upper left of interior cell", 1100, 1100, []int{0, 1, 7, 8}},
		{"lower right of interior cell", 1900, 1900, []int{8, 9, 15, 16}},
		{"world corner", 100, 100, []int{0, 1, 7, 8}},
		{"far corner", 6900, 6900, []int{40, 41, 47, 48}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Neighborhood(tt.x, tt.y, nil)
			slices.Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNeighborhoodSingleCell(t *testing.T) {
	g := NewGrid(500, 500, 1000)
	got := g.Neighborhood(250, 250, nil)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Expected only the home cell, got %v", got)
	}
}

func TestNeighborhoodSkipsFarSide(t *testing.T) {
	g := NewGrid(7000, 7000, 1000)
	near := newIndexedBody(950, 1500)  // left neighbor column, close side
	far := newIndexedBody(2050, 1500)  // right neighbor column, far side
	self := newIndexedBody(1100, 1500) // close to the left edge
	g.Place(near)
	g.Place(far)
	g.Place(self)

	_, got := g.Neighbors(self.Pos.X, self.Pos.Y, nil, nil)
	if !slices.Contains(got, near) {
		t.Error("Expected body in the nearer horizontal cell to be found")
	}
	if slices.Contains(got, far) {
		t.Error("Expected body in the farther horizontal cell to be skipped")
	}
}
