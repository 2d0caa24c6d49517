package pointsampler

import "testing"

func TestNewGridResolution(t *testing.T) {
	tests := []struct {
		name     string
		domain   []Range
		cellSize float64
		want     []int
	}{
		{"unit square / 0.1", unitSquare, 0.1, []int{10, 10}},
		{"uneven axes", []Range{{Min: 0, Max: 1}, {Min: 0, Max: 0.35}}, 0.1, []int{10, 4}},
		{"cell larger than axis", []Range{{Min: 0, Max: 0.1}}, 1.0, []int{1}},
		{"degenerate axis", []Range{{Min: 0.5, Max: 0.5}, {Min: 0, Max: 1}}, 0.25, []int{1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.domain, tt.cellSize)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := g.Resolution()
			if len(got) != len(tt.want) {
				t.Fatalf("resolution length: got %d, want %d", len(got), len(tt.want))
			}
			for d := range got {
				if got[d] != tt.want[d] {
					t.Errorf("axis %d: got %d, want %d", d, got[d], tt.want[d])
				}
			}
		})
	}
}

func TestNewGridInvalidArgs(t *testing.T) {
	if _, err := NewGrid(unitSquare, 0); err == nil {
		t.Error("expected error for zero cell size")
	}
	if _, err := NewGrid(unitSquare, -0.1); err == nil {
		t.Error("expected error for negative cell size")
	}
	if _, err := NewGrid([]Range{{Min: 1, Max: 0}}, 0.1); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestGridCellIndex(t *testing.T) {
	g, err := NewGrid(unitSquare, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		p    Point
		want []int
	}{
		{"interior", Point{0.25, 0.75}, []int{2, 7}},
		{"origin", Point{0, 0}, []int{0, 0}},
		{"far corner clamps to last cell", Point{1, 1}, []int{9, 9}},
		{"out of domain clamps", Point{-5, 2}, []int{0, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.CellIndex(tt.p)
			for d := range tt.want {
				if got[d] != tt.want[d] {
					t.Errorf("axis %d: got %d, want %d", d, got[d], tt.want[d])
				}
			}
		})
	}
}

func TestGridConflictUniform(t *testing.T) {
	const minDist = 0.05
	g, err := NewGrid(unitSquare, 0.02)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Insert(Point{0.5, 0.5})

	tests := []struct {
		name string
		cand Point
		want bool
	}{
		{"too close", Point{0.52, 0.5}, true},
		{"exactly coincident", Point{0.5, 0.5}, true},
		{"just far enough", Point{0.58, 0.5}, false},
		{"diagonal too close", Point{0.52, 0.52}, true},
		{"far away", Point{0.9, 0.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.HasConflict(tt.cand, nil, minDist); got != tt.want {
				t.Errorf("HasConflict(%v) = %v, want %v", tt.cand, got, tt.want)
			}
		})
	}
}

func TestGridConflictScaledUsesMaxRadius(t *testing.T) {
	// Stored point has scale 2 (radius 0.1), candidate scale 1 (radius 0.05).
	// The threshold is the max of the two, so a candidate at distance 0.055
	// conflicts even though its own radius alone would admit it.
	scale := func(p Point) float64 {
		if p[0] < 0.52 {
			return 2
		}
		return 1
	}

	g, err := NewGrid(unitSquare, 0.02)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Insert(Point{0.5, 0.5})

	if !g.HasConflict(Point{0.555, 0.5}, scale, 0.05) {
		t.Error("candidate inside the stored point's larger radius should conflict")
	}
	if g.HasConflict(Point{0.555, 0.5}, nil, 0.05) {
		t.Error("without scaling the same candidate is clear at distance 0.055")
	}
}

func TestGridConflictAcrossCells(t *testing.T) {
	// Radius 0.05 with cell size 0.01 forces the odometer to scan a 11x11
	// cell window; a stored point 4 cells away must still be found.
	g, err := NewGrid(unitSquare, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Insert(Point{0.5, 0.5})

	if !g.HasConflict(Point{0.54, 0.5}, nil, 0.05) {
		t.Error("conflict 4 cells away not detected")
	}
}

func TestGridConflictNearBoundary(t *testing.T) {
	// The odometer must skip cells outside the grid without missing real
	// occupants near the domain boundary.
	g, err := NewGrid(unitSquare, 0.02)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Insert(Point{0.01, 0.01})

	if !g.HasConflict(Point{0.0, 0.0}, nil, 0.05) {
		t.Error("conflict at domain corner not detected")
	}
	if g.HasConflict(Point{0.2, 0.2}, nil, 0.05) {
		t.Error("spurious conflict away from the stored point")
	}
}

func TestGridInsertLastWriterWins(t *testing.T) {
	g, err := NewGrid(unitSquare, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both points map to the same cell; the slot keeps the later one.
	g.Insert(Point{0.1, 0.1})
	g.Insert(Point{0.4, 0.4})

	if g.HasConflict(Point{0.1, 0.1}, nil, 0.05) {
		t.Error("evicted occupant still reported as a conflict")
	}
	if !g.HasConflict(Point{0.41, 0.4}, nil, 0.05) {
		t.Error("current occupant not reported as a conflict")
	}
}
