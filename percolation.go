package pointsampler

import "fmt"

// PercolationClusters labels points by the connected components of their
// proximity graph, where an edge joins any two points within
// connectionRadius of each other. Every point receives a cluster ID >= 0;
// an isolated point forms a singleton component. There is no noise concept.
//
// Labels are assigned in input order: the first unlabeled point opens the
// next component and a breadth-first expansion through radius queries labels
// everything reachable from it.
func PercolationClusters(points []Point, connectionRadius float64) ([]int, error) {
	if connectionRadius <= 0 {
		return nil, fmt.Errorf("pointsampler: connection radius must be > 0, got %v", connectionRadius)
	}
	if len(points) == 0 {
		return []int{}, nil
	}

	index := NewSpatialIndex(points)
	radiusSq := connectionRadius * connectionRadius

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	cluster := 0
	for i := range points {
		if labels[i] != -1 {
			continue
		}

		labels[i] = cluster
		queue := []int{i}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			for _, m := range index.Radius(points[cur], radiusSq) {
				if labels[m.Index] == -1 {
					labels[m.Index] = cluster
					queue = append(queue, m.Index)
				}
			}
		}

		cluster++
	}

	return labels, nil
}
