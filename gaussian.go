package pointsampler

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianClusters generates pointsPerCluster points around each center,
// offsetting every coordinate by a normal deviate with standard deviation
// spread. All centers must share one dimensionality. Output order follows
// the center order, pointsPerCluster consecutive points per center.
func GaussianClusters(centers []Point, pointsPerCluster int, spread float64, seed uint64) ([]Point, error) {
	if pointsPerCluster < 0 {
		return nil, fmt.Errorf("pointsampler: pointsPerCluster must be >= 0, got %d", pointsPerCluster)
	}
	if spread < 0 {
		return nil, fmt.Errorf("pointsampler: spread must be >= 0, got %v", spread)
	}
	if len(centers) == 0 {
		return []Point{}, nil
	}
	dims := len(centers[0])
	for i, c := range centers {
		if len(c) != dims {
			return nil, fmt.Errorf("pointsampler: center %d has %d dims, want %d", i, len(c), dims)
		}
	}

	rng := newRand(seed)
	normal := distuv.Normal{Mu: 0, Sigma: spread, Src: rng}

	points := make([]Point, 0, len(centers)*pointsPerCluster)
	for _, c := range centers {
		for j := 0; j < pointsPerCluster; j++ {
			p := make(Point, dims)
			for d := 0; d < dims; d++ {
				p[d] = c[d] + normal.Rand()
			}
			points = append(points, p)
		}
	}
	return points, nil
}

// RandomGaussianClusters places clusterCount cluster centers uniformly in
// the domain and scatters pointsPerCluster points around each. Both the
// center placement and the scatter derive from seed.
func RandomGaussianClusters(clusterCount, pointsPerCluster int, domain []Range, spread float64, seed uint64) ([]Point, error) {
	if clusterCount < 0 {
		return nil, fmt.Errorf("pointsampler: clusterCount must be >= 0, got %d", clusterCount)
	}
	centers, err := UniformPoints(clusterCount, domain, seed)
	if err != nil {
		return nil, err
	}
	return GaussianClusters(centers, pointsPerCluster, spread, seed)
}
