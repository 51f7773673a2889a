package dataprocessing

import (
	"math"

	"canteenpulse/pkg/contracts/domain"
)

// DeriveMetrics computes the two derived columns over the whole daily series
// in one pass and returns a new slice; the input is not modified.
//
// AvgSpendPerStudent is round(revenue/students, 2), nil when a day served
// zero students (zero is "no data", never a divisor). CostMA3 is the
// edge-padded centered 3-point moving average of the cost series in date
// order, rounded to 2 decimals; with an empty series there is nothing to
// smooth and every derived column stays nil.
func DeriveMetrics(daily []domain.DailyKPI) []domain.DailyKPI {
	out := make([]domain.DailyKPI, len(daily))
	copy(out, daily)

	costs := make([]float64, len(out))
	for i := range out {
		if out[i].UniqueStudents > 0 {
			v := Round2(out[i].Revenue / float64(out[i].UniqueStudents))
			out[i].AvgSpendPerStudent = &v
		}
		costs[i] = out[i].Cost
	}

	for i, v := range movingAverage3(costs) {
		smoothed := Round2(v)
		out[i].CostMA3 = &smoothed
	}
	return out
}

// movingAverage3 computes a centered 3-point mean with edge padding: the
// series is extended by one copy of its first and last value, so the output
// has the same length as the input and no boundary truncation. A single-value
// series averages three copies of itself.
func movingAverage3(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}

	padded := make([]float64, 0, len(series)+2)
	padded = append(padded, series[0])
	padded = append(padded, series...)
	padded = append(padded, series[len(series)-1])

	out := make([]float64, len(series))
	for i := range out {
		out[i] = (padded[i] + padded[i+1] + padded[i+2]) / 3
	}
	return out
}

// Round2 rounds to two decimal places. It is the single rounding rule for
// every presentation-level value in the pipeline, including the loader's
// derived unit cost.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
