package pointsampler

import (
	"fmt"
	"math"
)

// Grid is an incremental spatial hash used by the Poisson disk sampler to
// answer "is any accepted point within the exclusion radius of this
// candidate?" in O(1) amortized time while the point set grows.
//
// The domain is partitioned into hypercube cells of side cellSize. With the
// uniform sampler's choice of cellSize = minDist/sqrt(N), at most one
// accepted point can occupy a cell, so each cell stores a single point slot
// (last writer wins). Scale-warped samplers keep this representation but
// must rely on HasConflict's radius-dependent cell window for correctness,
// since the one-point-per-cell invariant only holds approximately near
// density discontinuities.
//
// Grid is distinct from SpatialIndex on purpose: the index is static per
// build, while the sampler inserts points one at a time.
type Grid struct {
	domain   []Range
	cellSize float64
	res      []int   // cells per axis
	cells    []Point // flat row-major slots, nil = empty
}

// NewGrid creates a grid over the domain with the given cell size. The
// per-axis resolution is ceil(axisLength/cellSize), with a minimum of one
// cell per axis.
func NewGrid(domain []Range, cellSize float64) (*Grid, error) {
	if err := validateDomain(domain); err != nil {
		return nil, err
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("pointsampler: cell size must be > 0, got %v", cellSize)
	}

	res := make([]int, len(domain))
	total := 1
	for d := range domain {
		n := int(math.Ceil(domain[d].Length() / cellSize))
		if n < 1 {
			n = 1
		}
		res[d] = n
		total *= n
	}

	return &Grid{
		domain:   domain,
		cellSize: cellSize,
		res:      res,
		cells:    make([]Point, total),
	}, nil
}

// CellSize returns the side length of a grid cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Resolution returns the number of cells along each axis.
func (g *Grid) Resolution() []int { return g.res }

// cellCoords writes the per-axis cell coordinates of p into out. The point
// is clamped to the domain first, and the resulting index is clamped to the
// grid resolution, so out-of-domain points map to a boundary cell.
func (g *Grid) cellCoords(p Point, out []int) {
	for d := range g.domain {
		v := math.Min(math.Max(p[d], g.domain[d].Min), g.domain[d].Max)
		idx := int(math.Floor((v - g.domain[d].Min) / g.cellSize))
		if idx >= g.res[d] {
			idx = g.res[d] - 1
		}
		if idx < 0 {
			idx = 0
		}
		out[d] = idx
	}
}

// CellIndex returns the per-axis cell coordinates that p maps to.
func (g *Grid) CellIndex(p Point) []int {
	out := make([]int, len(g.domain))
	g.cellCoords(p, out)
	return out
}

// linearIndex converts per-axis cell coordinates to a flat slice index,
// axis 0 varying fastest.
func (g *Grid) linearIndex(coords []int) int {
	idx := 0
	stride := 1
	for d := range coords {
		idx += coords[d] * stride
		stride *= g.res[d]
	}
	return idx
}

// Insert stores p in its owning cell, replacing any previous occupant.
func (g *Grid) Insert(p Point) {
	coords := make([]int, len(g.domain))
	g.cellCoords(p, coords)
	g.cells[g.linearIndex(coords)] = p
}

// HasConflict reports whether any stored point lies closer to the candidate
// than the larger of the two scaled exclusion radii. scale maps a position
// to a radius multiplier applied to baseMinDist; pass nil for a constant
// scale of one.
//
// The search window is the hypercube of cells within ceil(r/cellSize) of the
// candidate's cell on every axis, walked with an iterative odometer so the
// scan stops at the first conflict. Window volume grows as (2r+1)^N; the
// grid is intended for low-dimensional domains.
func (g *Grid) HasConflict(candidate Point, scale ScaleFunc, baseMinDist float64) bool {
	scaledCand := baseMinDist
	if scale != nil {
		scaledCand = scale(candidate) * baseMinDist
	}

	dims := len(g.domain)
	center := make([]int, dims)
	g.cellCoords(candidate, center)

	radius := int(math.Ceil(scaledCand / g.cellSize))

	// Odometer over cell offsets in [-radius, radius] per axis.
	offsets := make([]int, dims)
	for d := range offsets {
		offsets[d] = -radius
	}
	cell := make([]int, dims)

	for {
		inGrid := true
		for d := 0; d < dims; d++ {
			v := center[d] + offsets[d]
			if v < 0 || v >= g.res[d] {
				inGrid = false
				break
			}
			cell[d] = v
		}

		if inGrid {
			if q := g.cells[g.linearIndex(cell)]; q != nil {
				thresh := scaledCand
				if scale != nil {
					if s := scale(q) * baseMinDist; s > thresh {
						thresh = s
					}
				}
				if candidate.DistanceSquared(q) < thresh*thresh {
					return true
				}
			}
		}

		// Increment with carry; done once the highest axis wraps.
		d := 0
		for d < dims {
			offsets[d]++
			if offsets[d] <= radius {
				break
			}
			offsets[d] = -radius
			d++
		}
		if d == dims {
			return false
		}
	}
}
