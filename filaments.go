package pointsampler

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// FilamentConfig controls random-walk filament generation.
// Start with [DefaultFilamentConfig] and override the fields you need.
type FilamentConfig struct {
	// Filaments is the number of independent walks.
	Filaments int

	// PointsPerFilament is the number of core points laid down per walk.
	PointsPerFilament int

	// StepSize is the distance between consecutive core points.
	// Must be > 0.
	StepSize float64

	// Persistence blends the previous direction with a random perturbation
	// at each step: 1 walks straight, 0 forgets its direction entirely.
	// Must be in [0, 1]. Default: 0.8.
	Persistence float64

	// GaussianSigma is the standard deviation of the scatter cloud around
	// each core point. 0 disables scatter.
	GaussianSigma float64

	// GaussianSamples is the number of scatter points drawn per core point.
	// Scatter points falling outside the domain are discarded.
	GaussianSamples int

	// Seed initializes the generator's random state.
	Seed uint64
}

// DefaultFilamentConfig returns a FilamentConfig with reasonable defaults.
func DefaultFilamentConfig() FilamentConfig {
	return FilamentConfig{Persistence: 0.8}
}

func (cfg *FilamentConfig) applyDefaults() {
	if cfg.Persistence == 0 {
		cfg.Persistence = 0.8
	}
}

func (cfg *FilamentConfig) validate() error {
	if cfg.Filaments < 0 {
		return fmt.Errorf("pointsampler: Filaments must be >= 0, got %d", cfg.Filaments)
	}
	if cfg.PointsPerFilament < 0 {
		return fmt.Errorf("pointsampler: PointsPerFilament must be >= 0, got %d", cfg.PointsPerFilament)
	}
	if cfg.StepSize <= 0 {
		return fmt.Errorf("pointsampler: StepSize must be > 0, got %v", cfg.StepSize)
	}
	if cfg.Persistence < 0 || cfg.Persistence > 1 {
		return fmt.Errorf("pointsampler: Persistence must be in [0, 1], got %v", cfg.Persistence)
	}
	if cfg.GaussianSigma < 0 {
		return fmt.Errorf("pointsampler: GaussianSigma must be >= 0, got %v", cfg.GaussianSigma)
	}
	if cfg.GaussianSamples < 0 {
		return fmt.Errorf("pointsampler: GaussianSamples must be >= 0, got %d", cfg.GaussianSamples)
	}
	return nil
}

// RandomWalkFilaments generates filamentary point structures: each filament
// is a persistent random walk starting at a uniform position in the domain,
// optionally thickened by a Gaussian scatter cloud around every core point.
//
// The second return value holds one entry per returned point: zero for core
// filament points and the distance from the core point for scatter points,
// useful as a thickness diagnostic. Callers that only need positions can
// ignore it.
//
// Core points are not clipped against the domain (a walk may wander out);
// scatter points outside the domain are discarded.
func RandomWalkFilaments(domain []Range, cfg FilamentConfig) ([]Point, []float64, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	if err := validateDomain(domain); err != nil {
		return nil, nil, err
	}

	rng := newRand(cfg.Seed)
	dims := len(domain)

	uniform := distuv.Uniform{Min: -1, Max: 1, Src: rng}
	scatter := distuv.Normal{Mu: 0, Sigma: cfg.GaussianSigma, Src: rng}

	scatterSamples := cfg.GaussianSamples
	if cfg.GaussianSigma == 0 {
		scatterSamples = 0
	}

	capacity := cfg.Filaments * cfg.PointsPerFilament * (1 + cfg.GaussianSamples)
	points := make([]Point, 0, capacity)
	distances := make([]float64, 0, capacity)

	for f := 0; f < cfg.Filaments; f++ {
		p := randomPointIn(domain, rng)
		dir := randomUnitDir(dims, uniform)

		for i := 0; i < cfg.PointsPerFilament; i++ {
			points = append(points, p.Clone())
			distances = append(distances, 0)

			for g := 0; g < scatterSamples; g++ {
				q := p.Clone()
				var distSq float64
				for d := 0; d < dims; d++ {
					off := scatter.Rand()
					q[d] += off
					distSq += off * off
				}
				if inDomain(q, domain) {
					points = append(points, q)
					distances = append(distances, math.Sqrt(distSq))
				}
			}

			// Blend the heading with a random perturbation and renormalize.
			perturb := randomUnitDir(dims, uniform)
			for d := 0; d < dims; d++ {
				dir[d] = cfg.Persistence*dir[d] + (1-cfg.Persistence)*perturb[d]
			}
			dir = dir.Normalized()

			p = p.Add(dir.Scale(cfg.StepSize))
		}
	}

	return points, distances, nil
}

// randomUnitDir draws a unit direction from uniform deviates in [-1, 1],
// redrawing in the degenerate zero-length case.
func randomUnitDir(dims int, uniform distuv.Uniform) Point {
	dir := make(Point, dims)
	for {
		var lengthSq float64
		for d := 0; d < dims; d++ {
			dir[d] = uniform.Rand()
			lengthSq += dir[d] * dir[d]
		}
		if lengthSq > 0 {
			return dir.Scale(1 / math.Sqrt(lengthSq))
		}
	}
}
