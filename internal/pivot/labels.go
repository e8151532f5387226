package pivot

import (
	"sort"
	"strconv"
)

// labelOrder sorts one level of labels: numerically when every label is an
// integer (so Seniority 10 follows 9), otherwise lexicographically.
type labelOrder struct {
	numeric bool
}

func orderFor(labels []string) labelOrder {
	if len(labels) == 0 {
		return labelOrder{}
	}
	for _, l := range labels {
		if _, err := strconv.Atoi(l); err != nil {
			return labelOrder{}
		}
	}
	return labelOrder{numeric: true}
}

func (o labelOrder) less(a, b string) bool {
	if o.numeric {
		x, _ := strconv.Atoi(a)
		y, _ := strconv.Atoi(b)
		return x < y
	}
	return a < b
}

func sortLabels(labels []string) {
	o := orderFor(labels)
	sort.SliceStable(labels, func(i, j int) bool { return o.less(labels[i], labels[j]) })
}

func keysOf(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
