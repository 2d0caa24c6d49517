package pointsampler

import "fmt"

// RelaxConfig controls k-nearest-neighbor repulsion relaxation.
// Start with [DefaultRelaxConfig] and override the fields you need.
// A zero field means "use the default", so a no-op run is expressed by
// not calling Relax rather than by a zero StepSize or Iterations.
type RelaxConfig struct {
	// KNeighbors is the number of nearest neighbors each point is pushed
	// away from. Zero means the default of 8.
	KNeighbors int

	// StepSize is the distance a point moves per iteration. The repulsion
	// vector is unit-normalized before scaling, so no point ever moves more
	// than StepSize in one iteration. Zero means the default of 0.1.
	StepSize float64

	// Iterations is the fixed number of relaxation passes. There is no
	// convergence check; total displacement is bounded by
	// StepSize * Iterations. Zero means the default of 10.
	Iterations int
}

// DefaultRelaxConfig returns a RelaxConfig with reasonable defaults.
func DefaultRelaxConfig() RelaxConfig {
	return RelaxConfig{KNeighbors: 8, StepSize: 0.1, Iterations: 10}
}

func (cfg *RelaxConfig) applyDefaults() {
	if cfg.KNeighbors == 0 {
		cfg.KNeighbors = 8
	}
	if cfg.StepSize == 0 {
		cfg.StepSize = 0.1
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = 10
	}
}

func (cfg *RelaxConfig) validate() error {
	if cfg.KNeighbors < 1 {
		return fmt.Errorf("pointsampler: KNeighbors must be >= 1, got %d", cfg.KNeighbors)
	}
	if cfg.StepSize < 0 {
		return fmt.Errorf("pointsampler: StepSize must be >= 0, got %v", cfg.StepSize)
	}
	if cfg.Iterations < 0 {
		return fmt.Errorf("pointsampler: Iterations must be >= 0, got %d", cfg.Iterations)
	}
	return nil
}

// Relax smooths a point set in place by iteratively pushing each point away
// from its nearest neighbors, reducing clumping and producing a more
// blue-noise-like distribution.
//
// Each iteration rebuilds the spatial index over the current positions, then
// moves every point simultaneously: neighbor offsets are weighted by inverse
// squared distance, summed, unit-normalized, and scaled by StepSize. All
// queries within one iteration see the previous iteration's positions.
//
// Exactly coincident points repel each other with a zero vector, so they are
// nudged apart along deterministic index-derived axes instead of sticking
// together forever.
func Relax(points []Point, cfg RelaxConfig) error {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return err
	}
	if len(points) < 2 {
		return nil
	}

	dims := len(points[0])

	for iter := 0; iter < cfg.Iterations; iter++ {
		index := NewSpatialIndex(points)
		next := make([]Point, len(points))

		for i, p := range points {
			// k+1 because the query point matches itself at distance zero.
			indices, distsSq := index.KNN(p, cfg.KNeighbors+1)

			offset := make(Point, dims)
			coincident := false
			for j, nb := range indices {
				if nb == i {
					continue
				}
				if distsSq[j] == 0 {
					coincident = true
				}
				delta := p.Sub(points[nb])
				w := 1 / (distsSq[j] + 1e-6) // guard against division by zero
				for d := 0; d < dims; d++ {
					offset[d] += delta[d] * w
				}
			}

			if coincident && offset.NormSquared() == 0 {
				axis := (i / 2) % dims
				if i%2 == 0 {
					offset[axis] = 1
				} else {
					offset[axis] = -1
				}
			}

			next[i] = p.Add(offset.Normalized().Scale(cfg.StepSize))
		}

		for i := range points {
			copy(points[i], next[i])
		}
	}

	return nil
}
