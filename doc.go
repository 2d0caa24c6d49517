// Package pointsampler generates and analyzes point distributions in
// arbitrary-dimensional space for procedural content generation, simulation
// seeding, and Monte Carlo sampling.
//
// The core is a grid-accelerated blue-noise sampler: generalized Bridson
// dart throwing with either a constant minimum distance, a spatially varying
// exclusion radius, or per-point radii drawn from a distribution. Around it
// sit the neighbor-graph algorithms that share its spatial-query machinery:
// DBSCAN density clustering, percolation (connected-components) clustering,
// and iterative k-nearest-neighbor relaxation.
//
// Basic usage:
//
//	domain := []pointsampler.Range{{Min: 0, Max: 1}, {Min: 0, Max: 1}}
//	pts, err := pointsampler.PoissonDiskUniform(1000, domain, 0.02, 42)
//	// all pairwise distances in pts are >= 0.02
//
//	labels, err := pointsampler.DBSCAN(pts, 0.05, 5)
//	// labels[i] is the cluster ID for pts[i], or pointsampler.Noise
//
//	err = pointsampler.Relax(pts, pointsampler.DefaultRelaxConfig())
//	// pts smoothed in place toward a blue-noise distribution
//
// # Determinism
//
// Every randomized operation takes an explicit seed and owns a single
// pseudo-random generator for the duration of the call. Identical inputs and
// seed produce bit-identical output; no global random state is consulted.
// Everything is single-threaded and synchronous.
//
// # Spatial acceleration
//
// Two distinct structures back the algorithms. The samplers grow their point
// set incrementally and use [Grid], a purpose-built spatial hash supporting
// one-at-a-time insertion. The clusterers and the relaxer operate on fixed
// snapshots and use [SpatialIndex], a k-d tree rebuilt per run or per
// iteration.
package pointsampler
