package ecs

import "git.lost.host/meutraa/beatxr/internal/component"

// World owns every entity and its facets. The facet set is closed: one typed
// store per facet kind.
type World struct {
	pool   *EntityPool
	stores []Removable

	Transforms *Store[component.Transform]
	Visuals    *Store[component.Visual]
	Notes      *Store[component.NoteTag]
	Obstacles  *Store[component.ObstacleTag]
}

func NewWorld() *World {
	w := &World{
		pool:       NewEntityPool(),
		Transforms: NewStore[component.Transform](),
		Visuals:    NewStore[component.Visual](),
		Notes:      NewStore[component.NoteTag](),
		Obstacles:  NewStore[component.ObstacleTag](),
	}
	w.stores = []Removable{w.Transforms, w.Visuals, w.Notes, w.Obstacles}
	return w
}

// Create allocates a handle that has never been issued before.
func (w *World) Create() Entity {
	return w.pool.Create()
}

func (w *World) Alive(e Entity) bool {
	return w.pool.Alive(e)
}

// Len is the number of live entities.
func (w *World) Len() int {
	return w.pool.Len()
}

// Attach sets a facet on a live entity and reports whether it was attached.
func Attach[T any](w *World, s *Store[T], e Entity, v T) bool {
	if !w.pool.Alive(e) {
		return false
	}
	s.Set(e, v)
	return true
}

// DestroyAll removes every facet of the given entities and invalidates their
// handles. Dead or repeated handles are skipped. It returns how many entities
// were destroyed.
func (w *World) DestroyAll(entities []Entity) int {
	destroyed := 0
	for _, e := range entities {
		if !w.pool.Alive(e) {
			continue
		}
		for _, s := range w.stores {
			s.Remove(e)
		}
		w.pool.Destroy(e)
		destroyed++
	}
	return destroyed
}
