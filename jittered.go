package pointsampler

import (
	"fmt"
	"math"
)

// JitteredGridStaggered generates up to count points on a jittered grid: the
// domain is split into cells of roughly equal volume, a random subset of
// cells is chosen, and one point is placed in each at a jittered position.
//
// jitter[d] in [0, 1] is the fraction of the cell size along axis d used as
// the jitter window (1 = anywhere in the cell, 0 = cell center).
// stagger[d] shifts a point by stagger[d] * cellSize along axis d for every
// higher axis whose cell index is odd, producing brick-like offset layouts.
// Both slices must have one entry per domain axis.
//
// When count exceeds the number of cells, one point per cell is returned.
func JitteredGridStaggered(count int, domain []Range, jitter, stagger []float64, seed uint64) ([]Point, error) {
	if count < 0 {
		return nil, fmt.Errorf("pointsampler: count must be >= 0, got %d", count)
	}
	if err := validateDomain(domain); err != nil {
		return nil, err
	}
	dims := len(domain)
	if len(jitter) != dims {
		return nil, fmt.Errorf("pointsampler: jitter has %d entries, want %d", len(jitter), dims)
	}
	if len(stagger) != dims {
		return nil, fmt.Errorf("pointsampler: stagger has %d entries, want %d", len(stagger), dims)
	}
	for d, j := range jitter {
		if j < 0 || j > 1 {
			return nil, fmt.Errorf("pointsampler: jitter[%d] must be in [0, 1], got %v", d, j)
		}
	}
	if count == 0 {
		return []Point{}, nil
	}

	rng := newRand(seed)

	// Aim for cells of equal volume: cell side = (volume/count)^(1/N).
	volume := 1.0
	for d := range domain {
		volume *= domain[d].Length()
	}
	cellEstimate := math.Pow(volume/float64(count), 1/float64(dims))

	res := make([]int, dims)
	total := 1
	for d := range domain {
		n := 1
		if cellEstimate > 0 {
			n = int(domain[d].Length() / cellEstimate)
		}
		if n < 1 {
			n = 1
		}
		res[d] = n
		total *= n
	}

	// Enumerate all cells, then visit a shuffled prefix.
	cells := make([][]int, total)
	for linear := 0; linear < total; linear++ {
		coords := make([]int, dims)
		div := 1
		for d := 0; d < dims; d++ {
			coords[d] = (linear / div) % res[d]
			div *= res[d]
		}
		cells[linear] = coords
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	limit := count
	if limit > total {
		limit = total
	}

	points := make([]Point, 0, limit)
	for _, coords := range cells[:limit] {
		p := make(Point, dims)
		for d := 0; d < dims; d++ {
			cellSize := domain[d].Length() / float64(res[d])

			jitterRange := jitter[d] * cellSize
			jitterCenter := (1 - jitter[d]) * 0.5 * cellSize
			j := rng.Float64() * jitterRange

			staggerOffset := 0.0
			for k := d + 1; k < dims; k++ {
				if coords[k]%2 == 1 {
					staggerOffset += stagger[d] * cellSize
				}
			}

			p[d] = domain[d].Min + float64(coords[d])*cellSize + jitterCenter + j + staggerOffset
		}
		points = append(points, p)
	}

	return points, nil
}

// JitteredGrid is JitteredGridStaggered with full jitter and no stagger: one
// uniformly placed point inside each selected cell.
func JitteredGrid(count int, domain []Range, seed uint64) ([]Point, error) {
	if err := validateDomain(domain); err != nil {
		return nil, err
	}
	dims := len(domain)
	jitter := make([]float64, dims)
	stagger := make([]float64, dims)
	for d := range jitter {
		jitter[d] = 1
	}
	return JitteredGridStaggered(count, domain, jitter, stagger, seed)
}
