package similarity

import "math"

// Metric names a distance function over normalized feature vectors.
type Metric string

// Supported metrics. Euclidean is the default; cosine is offered because
// both are common in comparable player-comparison tools.
const (
	Euclidean Metric = "euclidean"
	Cosine    Metric = "cosine"
)

// ParseMetric validates a metric name. The empty string selects the
// default.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case "":
		return Euclidean, nil
	case Euclidean, Cosine:
		return Metric(s), nil
	default:
		return "", ErrUnknownMetric
	}
}

// distance dispatches on the metric. Vectors are assumed equal length;
// the engine only compares vectors produced by one dataset.
func (m Metric) distance(a, b []float64) float64 {
	if m == Cosine {
		return cosineDistance(a, b)
	}
	return euclideanDistance(a, b)
}

func euclideanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// cosineDistance is 1 - cosine similarity, so smaller still means more
// similar and results sort the same way as Euclidean. A zero vector has
// no direction; its distance to anything is defined as 1 (orthogonal).
func cosineDistance(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

// SimilarityPct converts a distance to the 0-100 display percentage shown
// alongside results: 100 for identical vectors, decaying with distance.
func SimilarityPct(d float64) float64 {
	if d < 0 {
		d = 0
	}
	return 100 / (1 + d)
}
