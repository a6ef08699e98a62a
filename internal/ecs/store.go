package ecs

// Removable is implemented by all facet stores so the World can bulk-remove an
// entity's data from every store on destroy.
type Removable interface {
	Remove(e Entity)
}

// Store is a sparse set of one facet type. Facets are kept densely in insertion
// order, which makes iteration order deterministic for a given history.
type Store[T any] struct {
	index    map[Entity]int
	entities []Entity
	data     []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[Entity]int, 256),
		entities: make([]Entity, 0, 256),
		data:     make([]T, 0, 256),
	}
}

// Set inserts or replaces the facet of e.
func (s *Store[T]) Set(e Entity, v T) {
	if i, ok := s.index[e]; ok {
		s.data[i] = v
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.data = append(s.data, v)
}

// Get returns a pointer into the store. It stays valid until the next Set of a
// new entity or any Remove.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	i, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return &s.data[i], true
}

func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

func (s *Store[T]) Remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.entities[i] = moved
		s.data[i] = s.data[last]
		s.index[moved] = i
	}
	var zero T
	s.data[last] = zero
	s.entities = s.entities[:last]
	s.data = s.data[:last]
	delete(s.index, e)
}

func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Each visits every facet once. fn must not add or remove facets of this store.
func (s *Store[T]) Each(fn func(Entity, *T)) {
	for i := 0; i < len(s.entities); i++ {
		fn(s.entities[i], &s.data[i])
	}
}
