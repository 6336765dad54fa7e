// Package stats provides the small numeric aggregations the map engine
// reports to the user.
package stats

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SumInts calculates the total of a slice of int values
func SumInts(values []int) int {
	var sum int
	for _, v := range values {
		sum += v
	}
	return sum
}
