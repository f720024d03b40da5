// Package normalize rescales numeric columns so differently-scaled stats
// are comparable. It implements z-score normalization: for each column,
// (x - mean) / stddev, with parameters fit once over the full dataset.
package normalize

import (
	"errors"
	"math"
)

// Params holds the per-column statistics a fitted scaler applies.
type Params struct {
	Mean   []float64
	StdDev []float64
}

// NumColumns returns the number of fitted columns.
func (p Params) NumColumns() int { return len(p.Mean) }

// Fit computes z-score parameters over the given column-major matrix.
// columns[j] holds every value of feature j. Population standard
// deviation is used, matching the usual fit-transform convention.
func Fit(columns [][]float64) (Params, error) {
	if len(columns) == 0 {
		return Params{}, errors.New("no columns to fit")
	}
	n := len(columns[0])
	if n == 0 {
		return Params{}, errors.New("no rows to fit")
	}

	p := Params{
		Mean:   make([]float64, len(columns)),
		StdDev: make([]float64, len(columns)),
	}
	for j, col := range columns {
		if len(col) != n {
			return Params{}, errors.New("ragged column lengths")
		}
		var sum float64
		for _, v := range col {
			sum += v
		}
		mean := sum / float64(n)

		var sq float64
		for _, v := range col {
			d := v - mean
			sq += d * d
		}
		p.Mean[j] = mean
		p.StdDev[j] = math.Sqrt(sq / float64(n))
	}
	return p, nil
}

// Transform maps one raw feature vector to its normalized form using the
// fitted parameters. A zero-variance column maps to 0 for every row, so a
// constant stat can never dominate a distance.
func (p Params) Transform(raw []float64) []float64 {
	out := make([]float64, len(raw))
	for j, v := range raw {
		if p.StdDev[j] == 0 {
			out[j] = 0
			continue
		}
		out[j] = (v - p.Mean[j]) / p.StdDev[j]
	}
	return out
}

// TransformAll normalizes a whole row-major matrix.
func (p Params) TransformAll(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = p.Transform(r)
	}
	return out
}
