package pointsampler

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ScaleFunc maps a position to a local exclusion-radius multiplier. The
// effective minimum distance at point p is scale(p) * baseMinDist, which
// lets a single sampling run mix dense and sparse regions.
type ScaleFunc func(Point) float64

// PoissonConfig controls Poisson disk sampling.
// Start with [DefaultPoissonConfig] and override the fields you need.
type PoissonConfig struct {
	// BaseMinDist is the minimum distance between any two points before
	// scaling. Must be > 0. No default.
	BaseMinDist float64

	// Scale varies the exclusion radius over the domain. Two points p, q are
	// accepted only if their distance is at least
	// max(Scale(p), Scale(q)) * BaseMinDist. nil means a constant scale of 1
	// (uniform sampling).
	Scale ScaleFunc

	// Attempts is the number of candidate placements tried around an active
	// point before it is retired. Default: 30.
	Attempts int

	// Seed initializes the sampler's random generator. Identical seed and
	// parameters produce identical output.
	Seed uint64
}

// DefaultPoissonConfig returns a PoissonConfig with reasonable defaults.
// BaseMinDist is required and has no default.
func DefaultPoissonConfig() PoissonConfig {
	return PoissonConfig{Attempts: 30}
}

func (cfg *PoissonConfig) applyDefaults() {
	if cfg.Attempts == 0 {
		cfg.Attempts = 30
	}
}

func (cfg *PoissonConfig) validate() error {
	if cfg.BaseMinDist <= 0 {
		return fmt.Errorf("pointsampler: BaseMinDist must be > 0, got %v", cfg.BaseMinDist)
	}
	if cfg.Attempts < 1 {
		return fmt.Errorf("pointsampler: Attempts must be >= 1, got %d", cfg.Attempts)
	}
	return nil
}

// PoissonDisk generates up to count points inside the domain such that every
// pair (p, q) satisfies ||p-q|| >= max(scale(p), scale(q)) * BaseMinDist,
// using Bridson's dart-throwing algorithm with an incremental grid for
// neighborhood rejection.
//
// Fewer than count points are returned when the domain saturates before the
// target is reached; that is a normal outcome, not an error. Callers that
// need exactly count points should inspect the result length and re-invoke
// with different parameters.
//
// Coordinates must be finite; NaN or Inf inputs from Scale yield unspecified
// results.
func PoissonDisk(count int, domain []Range, cfg PoissonConfig) ([]Point, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("pointsampler: count must be >= 0, got %d", count)
	}
	if err := validateDomain(domain); err != nil {
		return nil, err
	}
	if count == 0 {
		return []Point{}, nil
	}

	rng := newRand(cfg.Seed)
	dims := len(domain)

	// Cell size sized so a cell's diagonal equals the base minimum distance:
	// under a uniform scale no cell can hold two accepted points.
	cellSize := cfg.BaseMinDist / math.Sqrt(float64(dims))
	grid, err := NewGrid(domain, cellSize)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, count)
	active := make([]Point, 0, count)

	first := randomPointIn(domain, rng)
	points = append(points, first)
	active = append(active, first)
	grid.Insert(first)

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	for len(active) > 0 && len(points) < count {
		pick := rng.IntN(len(active))
		center := active[pick]

		accepted := false
		for i := 0; i < cfg.Attempts && len(points) < count; i++ {
			cand := randomPointAround(center, cfg.BaseMinDist, cfg.Scale, normal, rng)
			if !inDomain(cand, domain) {
				continue
			}
			if grid.HasConflict(cand, cfg.Scale, cfg.BaseMinDist) {
				continue
			}

			points = append(points, cand)
			active = append(active, cand)
			grid.Insert(cand)
			accepted = true
		}

		if !accepted {
			// Retire the exhausted point; swap-pop, order is not meaningful.
			active[pick] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return points, nil
}

// PoissonDiskUniform generates up to count points with a constant minimum
// distance minDist. It is PoissonDisk with a unit scale.
func PoissonDiskUniform(count int, domain []Range, minDist float64, seed uint64) ([]Point, error) {
	cfg := DefaultPoissonConfig()
	cfg.BaseMinDist = minDist
	cfg.Seed = seed
	return PoissonDisk(count, domain, cfg)
}

// randomPointAround draws a candidate in the spherical annulus
// [r, 2r) around center, where r is the scaled minimum distance at center.
// The direction is a unit vector from normalized Gaussian deviates, which is
// uniform on the sphere in any dimension.
func randomPointAround(center Point, baseMinDist float64, scale ScaleFunc, normal distuv.Normal, rng *rand.Rand) Point {
	dims := len(center)

	dir := make(Point, dims)
	for {
		var lengthSq float64
		for d := 0; d < dims; d++ {
			dir[d] = normal.Rand()
			lengthSq += dir[d] * dir[d]
		}
		if lengthSq > 0 {
			length := math.Sqrt(lengthSq)
			for d := 0; d < dims; d++ {
				dir[d] /= length
			}
			break
		}
	}

	scaled := baseMinDist
	if scale != nil {
		scaled = scale(center) * baseMinDist
	}
	r := distuv.Uniform{Min: scaled, Max: 2 * scaled, Src: rng}.Rand()

	cand := make(Point, dims)
	for d := 0; d < dims; d++ {
		cand[d] = center[d] + dir[d]*r
	}
	return cand
}
