package pointsampler

import "fmt"

// Noise is the DBSCAN label for points that belong to no cluster.
const Noise = -1

// Internal label states. Unvisited and noise are distinct while clustering
// runs (a noise point may still be promoted to a border member of a later
// cluster) and are collapsed to Noise in the returned labels.
const (
	labelUnvisited = -1
	labelNoise     = -2
)

// DBSCAN labels points by density reachability: a point with at least minPts
// neighbors within eps (counting itself) opens or extends a cluster, and
// clusters grow by breadth-first expansion through such core points. Points
// never absorbed by any cluster are labeled [Noise]; all other labels are
// cluster IDs starting at 0.
//
// This is the single-pass variant: a point first labeled noise is promoted
// into the first cluster whose expansion reaches it, as a border member that
// does not itself expand. In genuinely ambiguous border configurations the
// assignment therefore depends on input order.
//
// Coordinates must be finite; NaN or Inf inputs yield unspecified results.
func DBSCAN(points []Point, eps float64, minPts int) ([]int, error) {
	if eps <= 0 {
		return nil, fmt.Errorf("pointsampler: eps must be > 0, got %v", eps)
	}
	if minPts < 1 {
		return nil, fmt.Errorf("pointsampler: minPts must be >= 1, got %d", minPts)
	}
	if len(points) == 0 {
		return []int{}, nil
	}

	index := NewSpatialIndex(points)
	epsSq := eps * eps

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = labelUnvisited
	}

	clusterID := 0
	for i := range points {
		if labels[i] != labelUnvisited {
			continue
		}

		matches := index.Radius(points[i], epsSq)
		if len(matches) < minPts {
			labels[i] = labelNoise
			continue
		}

		labels[i] = clusterID

		seeds := make([]int, 0, len(matches))
		for _, m := range matches {
			if m.Index != i {
				seeds = append(seeds, m.Index)
			}
		}

		for j := 0; j < len(seeds); j++ {
			nb := seeds[j]

			if labels[nb] == labelNoise {
				labels[nb] = clusterID // noise becomes a border member
			}
			if labels[nb] != labelUnvisited {
				continue
			}
			labels[nb] = clusterID

			nbMatches := index.Radius(points[nb], epsSq)
			if len(nbMatches) >= minPts {
				for _, m := range nbMatches {
					if labels[m.Index] == labelUnvisited {
						seeds = append(seeds, m.Index)
					}
				}
			}
		}

		clusterID++
	}

	for i, l := range labels {
		if l == labelNoise {
			labels[i] = Noise
		}
	}
	return labels, nil
}
