package ecs

// Each2 visits the entities that have both facets A and B. It walks the smaller
// store and probes the other one.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(Entity, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for i := 0; i < len(sa.entities); i++ {
			e := sa.entities[i]
			if b, ok := sb.Get(e); ok {
				fn(e, &sa.data[i], b)
			}
		}
		return
	}
	for i := 0; i < len(sb.entities); i++ {
		e := sb.entities[i]
		if a, ok := sa.Get(e); ok {
			fn(e, a, &sb.data[i])
		}
	}
}

// Each3 visits the entities that have facets A, B and C.
func Each3[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(Entity, *A, *B, *C)) {
	switch {
	case sa.Len() <= sb.Len() && sa.Len() <= sc.Len():
		for i := 0; i < len(sa.entities); i++ {
			e := sa.entities[i]
			if b, ok := sb.Get(e); ok {
				if c, ok := sc.Get(e); ok {
					fn(e, &sa.data[i], b, c)
				}
			}
		}
	case sb.Len() <= sc.Len():
		for i := 0; i < len(sb.entities); i++ {
			e := sb.entities[i]
			if a, ok := sa.Get(e); ok {
				if c, ok := sc.Get(e); ok {
					fn(e, a, &sb.data[i], c)
				}
			}
		}
	default:
		for i := 0; i < len(sc.entities); i++ {
			e := sc.entities[i]
			if a, ok := sa.Get(e); ok {
				if b, ok := sb.Get(e); ok {
					fn(e, a, b, &sc.data[i])
				}
			}
		}
	}
}
