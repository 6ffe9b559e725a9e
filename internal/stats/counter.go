package stats

import (
	"cmp"
	"sort"
)

// Count is a value and the number of trips carrying it.
type Count[K any] struct {
	Value K
	Count int
}

// counter tallies occurrences of comparable keys.
type counter[K comparable] struct {
	counts map[K]int
	less   func(a, b K) bool
}

func newCounter[K comparable](less func(a, b K) bool) *counter[K] {
	return &counter[K]{counts: make(map[K]int), less: less}
}

func newOrderedCounter[K cmp.Ordered]() *counter[K] {
	return newCounter(func(a, b K) bool { return a < b })
}

func (c *counter[K]) add(k K) { c.counts[k]++ }

func (c *counter[K]) len() int { return len(c.counts) }

// mode returns the most frequent key. Ties go to the smallest key.
func (c *counter[K]) mode() (Count[K], bool) {
	var best Count[K]
	found := false
	for k, n := range c.counts {
		if !found || n > best.Count || (n == best.Count && c.less(k, best.Value)) {
			best = Count[K]{Value: k, Count: n}
			found = true
		}
	}
	return best, found
}

// ranked returns every key ordered by descending count, then ascending key.
func (c *counter[K]) ranked() []Count[K] {
	out := make([]Count[K], 0, len(c.counts))
	for k, n := range c.counts {
		out = append(out, Count[K]{Value: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return c.less(out[i].Value, out[j].Value)
	})
	return out
}
