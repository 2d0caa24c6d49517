package pointsampler

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Range is a closed interval [Min, Max] along one axis. A sampling domain is
// one Range per dimension.
type Range struct {
	Min, Max float64
}

// Length returns the extent of the range.
func (r Range) Length() float64 { return r.Max - r.Min }

// Contains reports whether v lies inside the range (inclusive).
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// validateDomain checks that the domain has at least one axis and that every
// axis range is well-formed.
func validateDomain(domain []Range) error {
	if len(domain) == 0 {
		return fmt.Errorf("pointsampler: domain must have at least one axis")
	}
	for d, r := range domain {
		if r.Min > r.Max {
			return fmt.Errorf("pointsampler: invalid range for axis %d: min %v > max %v", d, r.Min, r.Max)
		}
	}
	return nil
}

// inDomain reports whether p lies inside every axis range.
func inDomain(p Point, domain []Range) bool {
	for d := range domain {
		if !domain[d].Contains(p[d]) {
			return false
		}
	}
	return true
}

// newRand returns the single deterministic generator used by one call.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// randomPointIn draws one point uniformly inside the domain, sampling each
// axis independently.
func randomPointIn(domain []Range, rng *rand.Rand) Point {
	p := make(Point, len(domain))
	for d := range domain {
		p[d] = distuv.Uniform{Min: domain[d].Min, Max: domain[d].Max, Src: rng}.Rand()
	}
	return p
}

// UniformPoints generates count points uniformly distributed in the domain.
// Two calls with the same arguments produce identical output.
func UniformPoints(count int, domain []Range, seed uint64) ([]Point, error) {
	if count < 0 {
		return nil, fmt.Errorf("pointsampler: count must be >= 0, got %d", count)
	}
	if err := validateDomain(domain); err != nil {
		return nil, err
	}

	rng := newRand(seed)
	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, randomPointIn(domain, rng))
	}
	return points, nil
}

// FilterInRange returns the subset of points lying inside the axis-aligned
// bounding box described by domain. Input order is preserved.
func FilterInRange(points []Point, domain []Range) ([]Point, error) {
	if err := validateDomain(domain); err != nil {
		return nil, err
	}

	filtered := make([]Point, 0, len(points))
	for _, p := range points {
		if inDomain(p, domain) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// RescalePoints maps normalized coordinates in [0, 1] to the given ranges,
// in place. Coordinates outside [0, 1] are extrapolated, not clamped.
func RescalePoints(points []Point, domain []Range) error {
	if err := validateDomain(domain); err != nil {
		return err
	}

	for _, p := range points {
		for d := range domain {
			p[d] = domain[d].Min + p[d]*domain[d].Length()
		}
	}
	return nil
}

// RefitToRanges linearly remaps points, in place, so that their axis-aligned
// bounding box fills the target ranges exactly. A degenerate axis (all points
// share one value) is mapped to the center of its target range.
func RefitToRanges(points []Point, target []Range) error {
	if err := validateDomain(target); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	dims := len(target)
	min := points[0].Clone()
	max := points[0].Clone()
	for _, p := range points[1:] {
		for d := 0; d < dims; d++ {
			min[d] = math.Min(min[d], p[d])
			max[d] = math.Max(max[d], p[d])
		}
	}

	for _, p := range points {
		for d := 0; d < dims; d++ {
			span := max[d] - min[d]
			if math.Abs(span) < 1e-12 {
				p[d] = (target[d].Min + target[d].Max) / 2
				continue
			}
			t := (p[d] - min[d]) / span
			p[d] = target[d].Min + t*target[d].Length()
		}
	}
	return nil
}
