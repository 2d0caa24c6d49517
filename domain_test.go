package pointsampler

import (
	"reflect"
	"testing"
)

var unitSquare = []Range{{Min: 0, Max: 1}, {Min: 0, Max: 1}}

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		name    string
		domain  []Range
		wantErr bool
	}{
		{"valid 2D", unitSquare, false},
		{"valid degenerate axis", []Range{{Min: 1, Max: 1}}, false},
		{"empty", nil, true},
		{"min > max", []Range{{Min: 0, Max: 1}, {Min: 2, Max: 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDomain(tt.domain)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUniformPoints(t *testing.T) {
	pts, err := UniformPoints(200, unitSquare, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 200 {
		t.Fatalf("got %d points, want 200", len(pts))
	}
	for i, p := range pts {
		if len(p) != 2 {
			t.Fatalf("point %d has %d dims, want 2", i, len(p))
		}
		if !inDomain(p, unitSquare) {
			t.Errorf("point %d = %v outside domain", i, p)
		}
	}
}

func TestUniformPointsDeterminism(t *testing.T) {
	a, err := UniformPoints(50, unitSquare, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := UniformPoints(50, unitSquare, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different point sequences")
	}

	c, _ := UniformPoints(50, unitSquare, 43)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical point sequences")
	}
}

func TestUniformPointsInvalidArgs(t *testing.T) {
	if _, err := UniformPoints(-1, unitSquare, 0); err == nil {
		t.Error("expected error for negative count")
	}
	if _, err := UniformPoints(10, []Range{{Min: 1, Max: 0}}, 0); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestFilterInRange(t *testing.T) {
	pts := []Point{{0.5, 0.5}, {2, 3}, {-1, 0}, {1, 1}}
	got, err := FilterInRange(pts, unitSquare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Point{{0.5, 0.5}, {1, 1}} // boundary is inclusive
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRescalePoints(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {0.5, 0.5}}
	target := []Range{{Min: 10, Max: 20}, {Min: 100, Max: 200}}
	if err := RescalePoints(pts, target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Point{{10, 100}, {20, 200}, {15, 150}}
	for i := range want {
		if !pointsAlmostEqual(pts[i], want[i], 1e-12) {
			t.Errorf("point %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestRefitToRanges(t *testing.T) {
	pts := []Point{{2, 5}, {4, 5}, {3, 5}}
	target := []Range{{Min: 0, Max: 1}, {Min: -1, Max: 1}}
	if err := RefitToRanges(pts, target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// x spans [2, 4] and maps onto [0, 1]; y is degenerate and centers.
	want := []Point{{0, 0}, {1, 0}, {0.5, 0}}
	for i := range want {
		if !pointsAlmostEqual(pts[i], want[i], 1e-12) {
			t.Errorf("point %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestRefitToRangesEmpty(t *testing.T) {
	if err := RefitToRanges(nil, unitSquare); err != nil {
		t.Errorf("unexpected error for empty input: %v", err)
	}
}
