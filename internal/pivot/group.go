package pivot

import (
	"fmt"
	"math"

	"go-paygap/internal/paygap"
)

// Group is one key of a group-by with the mean of each requested value.
type Group struct {
	Key   string
	Count int
	Means map[Field]float64
}

func (g Group) Mean(f Field) float64 {
	return g.Means[f]
}

// GroupMeans groups records by key and averages each value field. Groups
// come out in sorted key order. Records with a NULL key are dropped and a
// NULL value is skipped; a value with nothing to average is NaN.
func GroupMeans(records []paygap.CompensationRecord, key Field, values ...Field) ([]Group, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("pivot: no value fields to aggregate")
	}

	sums := make(map[string][]float64)
	valued := make(map[string][]int)
	counts := make(map[string]int)
	seen := make(map[string]struct{})

	for _, r := range records {
		k, present, err := key.label(r)
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}
		s, ok := sums[k]
		if !ok {
			s = make([]float64, len(values))
			sums[k] = s
			valued[k] = make([]int, len(values))
		}
		for i, f := range values {
			v, present, err := f.number(r)
			if err != nil {
				return nil, err
			}
			if !present {
				continue
			}
			s[i] += v
			valued[k][i]++
		}
		counts[k]++
		seen[k] = struct{}{}
	}

	keys := keysOf(seen)
	sortLabels(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		g := Group{Key: k, Count: counts[k], Means: make(map[Field]float64, len(values))}
		for i, f := range values {
			if n := valued[k][i]; n > 0 {
				g.Means[f] = sums[k][i] / float64(n)
			} else {
				g.Means[f] = math.NaN()
			}
		}
		groups = append(groups, g)
	}
	return groups, nil
}
