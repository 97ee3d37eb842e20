package engine

import "fmt"

// SearchStats collects node counts for one tree search.
type SearchStats struct {
	Nodes   uint64
	Leaves  uint64
	Cutoffs uint64
}

// Add folds other into s; used when root children are searched on workers.
func (s *SearchStats) Add(other SearchStats) {
	s.Nodes += other.Nodes
	s.Leaves += other.Leaves
	s.Cutoffs += other.Cutoffs
}

// Lines renders the counters as UCI "info string" lines.
func (s SearchStats) Lines() []string {
	return []string{
		"info string Search statistics:",
		fmt.Sprintf("info string   Nodes: %d", s.Nodes),
		fmt.Sprintf("info string   Leaves: %d", s.Leaves),
		fmt.Sprintf("info string   Beta cutoffs: %d", s.Cutoffs),
	}
}

func (s SearchStats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d cutoffs=%d", s.Nodes, s.Leaves, s.Cutoffs)
}
