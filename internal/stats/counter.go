package stats

import "sort"

// Count is one distinct value and how often it occurred.
type Count[K comparable] struct {
	Value K
	N     int
}

// counter tallies values and remembers the order they first appeared in,
// which is what breaks ties.
type counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: make(map[K]int)}
}

func (c *counter[K]) Add(k K) {
	if _, seen := c.counts[k]; !seen {
		c.order = append(c.order, k)
	}
	c.counts[k]++
}

func (c *counter[K]) Len() int {
	return len(c.order)
}

// Mode returns the most frequent value. Among equally frequent values the
// one seen first wins. ok is false when nothing was added.
func (c *counter[K]) Mode() (mode K, n int, ok bool) {
	for _, k := range c.order {
		if c.counts[k] > n {
			mode, n, ok = k, c.counts[k], true
		}
	}
	return mode, n, ok
}

// Descending returns all values by decreasing count, ties in first-seen order.
func (c *counter[K]) Descending() []Count[K] {
	out := make([]Count[K], 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Count[K]{Value: k, N: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].N > out[j].N
	})
	return out
}
