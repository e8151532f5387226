package chart

import (
	"fmt"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// niceTicks picks about n ticks on a 1/2/2.5/5 step. The first tick is at
// or below min and the last at or above max.
func niceTicks(min, max float64, n int) []gochart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}

	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	count := int(math.Round((end-start)/bestStep)) + 1
	ticks := make([]gochart.Tick, 0, count)
	for i := 0; i < count; i++ {
		v := start + float64(i)*bestStep
		if i == count-1 {
			v = end
		}
		ticks = append(ticks, gochart.Tick{Value: v, Label: thousands(v)})
	}
	return ticks
}

// thousands labels a currency amount in thousands, e.g. 85000 -> "85k".
func thousands(v float64) string {
	if v == 0 {
		return "0"
	}
	k := v / 1000
	if k == math.Trunc(k) {
		return fmt.Sprintf("%.0fk", k)
	}
	return fmt.Sprintf("%.1fk", k)
}
