package duallist

import "strings"

// State is a point-in-time copy of both sides.
type State struct {
	Available []string
	Selected  []string
}

// Store owns the two disjoint label sequences. The zero value is the empty
// partition.
type Store struct {
	available []string
	selected  []string
}

func NewStore() *Store {
	return &Store{}
}

// Ingest hard-resets the partition: every non-blank label lands on the
// available side in input order and the selected side is cleared.
func (s *Store) Ingest(labels []string) {
	available := make([]string, 0, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			continue
		}
		available = append(available, l)
	}
	s.available = available
	s.selected = nil
}

// MoveSelected moves every occurrence of the requested labels from side to
// the end of the other side, keeping their relative order. Labels not on
// side are ignored. It reports whether anything moved.
func (s *Store) MoveSelected(side Side, labels map[string]struct{}) bool {
	if !side.Valid() || len(labels) == 0 {
		return false
	}
	src := s.side(side)
	keep := make([]string, 0, len(src))
	var moved []string
	for _, l := range src {
		if _, ok := labels[l]; ok {
			moved = append(moved, l)
			continue
		}
		keep = append(keep, l)
	}
	if len(moved) == 0 {
		return false
	}
	s.set(side, keep)
	s.set(side.Other(), append(s.side(side.Other()), moved...))
	return true
}

// MoveAll empties side onto the end of the other side. An empty side is a
// no-op and reports false.
func (s *Store) MoveAll(side Side) bool {
	if !side.Valid() {
		return false
	}
	src := s.side(side)
	if len(src) == 0 {
		return false
	}
	s.set(side.Other(), append(s.side(side.Other()), src...))
	s.set(side, nil)
	return true
}

func (s *Store) Serialize() string {
	return Serialize(s.selected)
}

func (s *Store) Available() []string {
	return cloneLabels(s.available)
}

func (s *Store) Selected() []string {
	return cloneLabels(s.selected)
}

func (s *Store) Labels(side Side) []string {
	return cloneLabels(s.side(side))
}

func (s *Store) Len(side Side) int {
	return len(s.side(side))
}

func (s *Store) Snapshot() State {
	return State{Available: s.Available(), Selected: s.Selected()}
}

func (s *Store) side(side Side) []string {
	if side == Selected {
		return s.selected
	}
	return s.available
}

func (s *Store) set(side Side, labels []string) {
	if side == Selected {
		s.selected = labels
		return
	}
	s.available = labels
}

// cloneLabels never returns nil so snapshots compare cleanly.
func cloneLabels(labels []string) []string {
	return append(make([]string, 0, len(labels)), labels...)
}
