package pointsampler

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// SpatialIndex answers radius and k-nearest-neighbor queries over a static
// snapshot of a point set. It is a thin wrapper around a gonum k-d tree that
// reports matches as indices into the slice the index was built from.
//
// The index does not observe later mutations of the points; rebuild it after
// positions change. For the sampler's incremental insertions use [Grid]
// instead.
type SpatialIndex struct {
	tree *kdtree.Tree
	n    int
}

// Match is one radius-query result: the index of the matched point in the
// input slice and its squared Euclidean distance to the query.
type Match struct {
	Index  int
	DistSq float64
}

// indexedPoint is a kdtree.Comparable that remembers its position in the
// original slice. Queries use index -1.
type indexedPoint struct {
	Point
	index int
}

func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	return p.Point[d] - q.Point[d]
}

func (p indexedPoint) Dims() int { return len(p.Point) }

func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	return p.Point.DistanceSquared(q.Point)
}

// indexedPoints satisfies kdtree.Interface, mirroring gonum's own Points
// implementation but retaining original indices through tree construction.
type indexedPoints []indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p indexedPoints) Len() int                      { return len(p) }
func (p indexedPoints) Pivot(d kdtree.Dim) int {
	return indexedPlane{indexedPoints: p, Dim: d}.Pivot()
}
func (p indexedPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type indexedPlane struct {
	kdtree.Dim
	indexedPoints
}

func (p indexedPlane) Less(i, j int) bool {
	return p.indexedPoints[i].Point[p.Dim] < p.indexedPoints[j].Point[p.Dim]
}

// Pivot uses median-of-medians rather than sampled medians: the sampled
// variant draws from the global generator, which would make tree shape,
// and with it tie-breaking in k-NN queries, vary run to run.
func (p indexedPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
func (p indexedPlane) Slice(start, end int) kdtree.SortSlicer {
	p.indexedPoints = p.indexedPoints[start:end]
	return p
}
func (p indexedPlane) Swap(i, j int) {
	p.indexedPoints[i], p.indexedPoints[j] = p.indexedPoints[j], p.indexedPoints[i]
}

// NewSpatialIndex builds an index over a snapshot of points. The points are
// referenced, not copied; do not move them while querying.
func NewSpatialIndex(points []Point) *SpatialIndex {
	wrapped := make(indexedPoints, len(points))
	for i, p := range points {
		wrapped[i] = indexedPoint{Point: p, index: i}
	}
	return &SpatialIndex{
		tree: kdtree.New(wrapped, false),
		n:    len(points),
	}
}

// Len returns the number of indexed points.
func (s *SpatialIndex) Len() int { return s.n }

// Radius returns every indexed point within squared distance distSq of q,
// including q itself when it belongs to the indexed set. Matches are sorted
// by distance, ties broken by index, so traversal order is deterministic.
func (s *SpatialIndex) Radius(q Point, distSq float64) []Match {
	keeper := kdtree.NewDistKeeper(distSq)
	s.tree.NearestSet(keeper, indexedPoint{Point: q, index: -1})

	matches := make([]Match, 0, len(keeper.Heap))
	for _, c := range keeper.Heap {
		if c.Comparable == nil {
			continue // keeper's bound sentinel
		}
		matches = append(matches, Match{
			Index:  c.Comparable.(indexedPoint).index,
			DistSq: c.Dist,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistSq != matches[j].DistSq {
			return matches[i].DistSq < matches[j].DistSq
		}
		return matches[i].Index < matches[j].Index
	})
	return matches
}

// KNN returns the k nearest indexed points to q together with their squared
// distances, nearest first. When q belongs to the indexed set it appears in
// its own result at distance zero; callers that want true neighbors query
// k+1 and drop the self match. Fewer than k results are returned when the
// set is smaller than k.
func (s *SpatialIndex) KNN(q Point, k int) ([]int, []float64) {
	if k < 1 || s.n == 0 {
		return nil, nil
	}

	keeper := kdtree.NewNKeeper(k)
	s.tree.NearestSet(keeper, indexedPoint{Point: q, index: -1})

	matches := make([]Match, 0, k)
	for _, c := range keeper.Heap {
		if c.Comparable == nil {
			continue
		}
		matches = append(matches, Match{
			Index:  c.Comparable.(indexedPoint).index,
			DistSq: c.Dist,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistSq != matches[j].DistSq {
			return matches[i].DistSq < matches[j].DistSq
		}
		return matches[i].Index < matches[j].Index
	})

	indices := make([]int, len(matches))
	distsSq := make([]float64, len(matches))
	for i, m := range matches {
		indices[i] = m.Index
		distsSq[i] = m.DistSq
	}
	return indices, distsSq
}
