package stats

import (
	"github.com/elliotchance/orderedmap/v2"
)

// SignificantCities returns the cities whose vacancy share is at least
// threshold, in first-seen order. The boundary is inclusive: a city sitting
// exactly on the threshold qualifies.
func SignificantCities(counts *orderedmap.OrderedMap[string, int], total int, threshold float64) []string {
	out := make([]string, 0, counts.Len())
	if total == 0 {
		return out
	}
	for _, city := range counts.Keys() {
		count, _ := counts.Get(city)
		if float64(count)/float64(total) >= threshold {
			out = append(out, city)
		}
	}
	return out
}
