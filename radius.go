package pointsampler

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RadiusFunc draws one exclusion radius per accepted point for the
// variable-radius sampler. Implementations must draw all randomness from the
// supplied generator so that sampling stays reproducible.
type RadiusFunc func(rng *rand.Rand) float64

// FixedRadius returns a generator that always yields r.
func FixedRadius(r float64) RadiusFunc {
	return func(*rand.Rand) float64 { return r }
}

// PowerLawRadius returns a generator drawing radii from a power-law density
// p(r) ~ r^-alpha on [min, max] by inverse-CDF sampling.
func PowerLawRadius(min, max, alpha float64) RadiusFunc {
	return func(rng *rand.Rand) float64 {
		u := rng.Float64()
		if alpha == 1 {
			return min * math.Pow(max/min, u)
		}
		e := 1 - alpha
		lo := math.Pow(min, e)
		hi := math.Pow(max, e)
		return math.Pow(lo+u*(hi-lo), 1/e)
	}
}

// WeibullRadius returns a generator drawing radii from a Weibull distribution
// with scale lambda and shape k.
func WeibullRadius(lambda, k float64) RadiusFunc {
	return func(rng *rand.Rand) float64 {
		return distuv.Weibull{K: k, Lambda: lambda, Src: rng}.Rand()
	}
}

// WeibullFloorRadius is WeibullRadius with draws clamped to at least min, so
// no exclusion radius falls below a hard floor.
func WeibullFloorRadius(lambda, k, min float64) RadiusFunc {
	weibull := WeibullRadius(lambda, k)
	return func(rng *rand.Rand) float64 {
		return math.Max(min, weibull(rng))
	}
}

// VariableRadiusConfig controls the variable-radius Poisson disk sampler.
type VariableRadiusConfig struct {
	// Radius draws the exclusion radius for each candidate. Required.
	Radius RadiusFunc

	// MaxAttempts bounds the total candidate draws at n * MaxAttempts.
	// Default: 30.
	MaxAttempts int

	// Seed initializes the sampler's random generator.
	Seed uint64
}

func (cfg *VariableRadiusConfig) applyDefaults() {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 30
	}
}

func (cfg *VariableRadiusConfig) validate() error {
	if cfg.Radius == nil {
		return fmt.Errorf("pointsampler: Radius generator must not be nil")
	}
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("pointsampler: MaxAttempts must be >= 1, got %d", cfg.MaxAttempts)
	}
	return nil
}

// PoissonDiskVariableRadius generates up to n points whose per-point
// exclusion radii are drawn independently from cfg.Radius. A candidate with
// radius r is accepted only if ||cand - p_j|| > r + r_j for every previously
// accepted point p_j, so the exclusion disks never overlap.
//
// Acceptance uses a brute-force scan over all accepted points for each of up
// to n * MaxAttempts draws; with heterogeneous radii the fixed-cell grid of
// the uniform sampler does not apply. Exhausting the attempt budget before
// reaching n is a normal outcome: fewer points are returned, no error.
func PoissonDiskVariableRadius(n int, domain []Range, cfg VariableRadiusConfig) ([]Point, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("pointsampler: n must be >= 0, got %d", n)
	}
	if err := validateDomain(domain); err != nil {
		return nil, err
	}

	rng := newRand(cfg.Seed)
	points := make([]Point, 0, n)
	radii := make([]float64, 0, n)

	budget := n * cfg.MaxAttempts
	for attempt := 0; attempt < budget && len(points) < n; attempt++ {
		cand := randomPointIn(domain, rng)
		r := cfg.Radius(rng)

		ok := true
		for j := range points {
			if cand.Distance(points[j]) <= r+radii[j] {
				ok = false
				break
			}
		}
		if ok {
			points = append(points, cand)
			radii = append(radii, r)
		}
	}

	return points, nil
}

// PoissonDiskPowerLaw samples up to n points with power-law distributed
// exclusion radii on [distMin, distMax] with exponent alpha.
func PoissonDiskPowerLaw(n int, domain []Range, distMin, distMax, alpha float64, seed uint64, maxAttempts int) ([]Point, error) {
	if distMin <= 0 || distMax < distMin {
		return nil, fmt.Errorf("pointsampler: need 0 < distMin <= distMax, got [%v, %v]", distMin, distMax)
	}
	return PoissonDiskVariableRadius(n, domain, VariableRadiusConfig{
		Radius:      PowerLawRadius(distMin, distMax, alpha),
		MaxAttempts: maxAttempts,
		Seed:        seed,
	})
}

// PoissonDiskWeibull samples up to n points with Weibull distributed
// exclusion radii (scale lambda, shape k).
func PoissonDiskWeibull(n int, domain []Range, lambda, k float64, seed uint64, maxAttempts int) ([]Point, error) {
	if lambda <= 0 || k <= 0 {
		return nil, fmt.Errorf("pointsampler: Weibull parameters must be > 0, got lambda=%v k=%v", lambda, k)
	}
	return PoissonDiskVariableRadius(n, domain, VariableRadiusConfig{
		Radius:      WeibullRadius(lambda, k),
		MaxAttempts: maxAttempts,
		Seed:        seed,
	})
}

// PoissonDiskWeibullFloor is PoissonDiskWeibull with radii clamped to at
// least distMin.
func PoissonDiskWeibullFloor(n int, domain []Range, lambda, k, distMin float64, seed uint64, maxAttempts int) ([]Point, error) {
	if lambda <= 0 || k <= 0 {
		return nil, fmt.Errorf("pointsampler: Weibull parameters must be > 0, got lambda=%v k=%v", lambda, k)
	}
	if distMin < 0 {
		return nil, fmt.Errorf("pointsampler: distMin must be >= 0, got %v", distMin)
	}
	return PoissonDiskVariableRadius(n, domain, VariableRadiusConfig{
		Radius:      WeibullFloorRadius(lambda, k, distMin),
		MaxAttempts: maxAttempts,
		Seed:        seed,
	})
}
