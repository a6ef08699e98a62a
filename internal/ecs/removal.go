package ecs

import "sync"

// RemovalSet collects entities marked for deletion during a tick. Marking is
// idempotent and safe from several goroutines; the driver drains it once per
// tick and destroys what it returns.
type RemovalSet struct {
	mu     sync.Mutex
	marked map[Entity]struct{}
	order  []Entity
}

func NewRemovalSet() *RemovalSet {
	return &RemovalSet{
		marked: make(map[Entity]struct{}, 64),
		order:  make([]Entity, 0, 64),
	}
}

// Mark reports true only the first time e is marked since the last Drain.
func (r *RemovalSet) Mark(e Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.marked[e]; ok {
		return false
	}
	r.marked[e] = struct{}{}
	r.order = append(r.order, e)
	return true
}

func (r *RemovalSet) Marked(e Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.marked[e]
	return ok
}

func (r *RemovalSet) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Drain returns the marked entities in marking order and clears the set.
func (r *RemovalSet) Drain() []Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) == 0 {
		return nil
	}
	out := r.order
	r.order = make([]Entity, 0, cap(out))
	for e := range r.marked {
		delete(r.marked, e)
	}
	return out
}
