package vector

import "fmt"

// Metric selects the scoring function. It is a closed set: MetricCosine and MetricL2.
type Metric string

const (
	// MetricCosine scores by cosine similarity; higher is better.
	MetricCosine Metric = "cosine"
	// MetricL2 scores by squared Euclidean distance; lower is better.
	MetricL2 Metric = "l2"
)

// ParseMetric maps a name to a Metric. The empty name selects cosine.
func ParseMetric(name string) (Metric, error) {
	switch Metric(name) {
	case MetricCosine, "":
		return MetricCosine, nil
	case MetricL2:
		return MetricL2, nil
	default:
		return "", fmt.Errorf("unknown metric: %s (supported: cosine, l2)", name)
	}
}

// Score implements Scorer.
func (m Metric) Score(mat Matrix, query []Float) ([]Float, error) {
	switch m {
	case MetricCosine:
		return CosineSimilarity(mat, query)
	case MetricL2:
		return L2Distance(mat, query)
	default:
		return nil, fmt.Errorf("unknown metric: %s", string(m))
	}
}

// HigherIsBetter reports whether larger scores mean more similar items.
func (m Metric) HigherIsBetter() bool {
	return m != MetricL2
}

// Valid reports whether m is one of the defined metrics.
func (m Metric) Valid() bool {
	return m == MetricCosine || m == MetricL2
}

func (m Metric) String() string {
	return string(m)
}
