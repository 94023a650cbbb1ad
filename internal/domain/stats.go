package domain

// CompletionStats is the derived completion summary for a category or a
// whole packing. It is always recomputed from the live entity graph —
// nothing caches it.
type CompletionStats struct {
	Total int `json:"total"`
	Done  int `json:"done"`
}

// Percentage returns Done/Total as a fraction in [0, 1].
// An empty set is 0, not a division by zero.
func (s CompletionStats) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Done) / float64(s.Total)
}

// Add returns the element-wise sum of two stats. Summing per-category stats
// yields the packing-level stats.
func (s CompletionStats) Add(o CompletionStats) CompletionStats {
	return CompletionStats{Total: s.Total + o.Total, Done: s.Done + o.Done}
}
