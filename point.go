package pointsampler

import "math"

// Point is a coordinate tuple in N-dimensional space. The dimensionality is
// the slice length and is fixed per point set; all binary operations assume
// both operands have the same length.
//
// Points have value semantics: arithmetic methods return new points and never
// modify the receiver. Use the slice directly for in-place mutation.
type Point []float64

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] + q[i]
	}
	return r
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] - q[i]
	}
	return r
}

// Mul returns the component-wise product p * q.
func (p Point) Mul(q Point) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] * q[i]
	}
	return r
}

// Div returns the component-wise quotient p / q.
func (p Point) Div(q Point) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] / q[i]
	}
	return r
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] * s
	}
	return r
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	var sum float64
	for i := range p {
		sum += p[i] * q[i]
	}
	return sum
}

// NormSquared returns the squared Euclidean length of p.
func (p Point) NormSquared() float64 { return p.Dot(p) }

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Sqrt(p.NormSquared()) }

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 {
	var sum float64
	for i := range p {
		d := p[i] - q[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Sqrt(p.DistanceSquared(q)) }

// Normalized returns p scaled to unit length. The zero vector is returned
// unchanged rather than producing NaNs.
func (p Point) Normalized() Point {
	n := p.Norm()
	if n == 0 {
		return make(Point, len(p))
	}
	return p.Scale(1 / n)
}

// Lerp returns the linear interpolation between p and q at parameter t,
// with t=0 yielding p and t=1 yielding q.
func (p Point) Lerp(q Point, t float64) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = p[i] + (q[i]-p[i])*t
	}
	return r
}

// Clamp returns p with every coordinate clamped to [min, max].
func (p Point) Clamp(min, max float64) Point {
	r := make(Point, len(p))
	for i := range p {
		r[i] = math.Min(math.Max(p[i], min), max)
	}
	return r
}
