package main

import (
	"sync"

	"github.com/intuitionamiga/SortSonic/sorter"
)

// runtimeStatusSnapshot is what the HUD and the headless progress bar show.
type runtimeStatusSnapshot struct {
	phase     sorter.Phase
	size      int
	boundary  int
	progress  int
	ticks     int
	flips     int
	frequency float64
	audioOn   bool
}

// sorted returns how many elements are in their final position.
func (s runtimeStatusSnapshot) sorted() int {
	return s.size - s.boundary
}

type runtimeStatusStore struct {
	mu sync.RWMutex
	runtimeStatusSnapshot
}

func (s *runtimeStatusStore) set(snap runtimeStatusSnapshot) {
	s.mu.Lock()
	s.runtimeStatusSnapshot = snap
	s.mu.Unlock()
}

func (s *runtimeStatusStore) snapshot() runtimeStatusSnapshot {
	s.mu.RLock()
	snap := s.runtimeStatusSnapshot
	s.mu.RUnlock()
	return snap
}

var runtimeStatus = &runtimeStatusStore{}
