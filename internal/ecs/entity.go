package ecs

import "fmt"

// Entity encodes a 32-bit index in the lower bits and a 32-bit generation in
// the upper bits. Generations start at 1, so the zero Entity is never live,
// and a destroyed slot comes back with a new generation: a handle value is
// never issued twice.
type Entity uint64

func NewEntity(index uint32, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

func (e Entity) Index() uint32      { return uint32(e) }
func (e Entity) Generation() uint32 { return uint32(e >> 32) }
func (e Entity) IsZero() bool       { return e == 0 }

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.Index(), e.Generation())
}

// EntityPool allocates entities with generational indices and a free list.
type EntityPool struct {
	generations []uint32
	freeList    []uint32
	nextIndex   uint32
	alive       int
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		generations: make([]uint32, 0, 1024),
		freeList:    make([]uint32, 0, 256),
	}
}

func (p *EntityPool) Create() Entity {
	p.alive++
	if len(p.freeList) > 0 {
		idx := p.freeList[len(p.freeList)-1]
		p.freeList = p.freeList[:len(p.freeList)-1]
		return NewEntity(idx, p.generations[idx])
	}
	idx := p.nextIndex
	p.nextIndex++
	p.generations = append(p.generations, 1)
	return NewEntity(idx, p.generations[idx])
}

func (p *EntityPool) Alive(e Entity) bool {
	idx := e.Index()
	if idx >= p.nextIndex {
		return false
	}
	return p.generations[idx] == e.Generation()
}

// Destroy invalidates e. Stale handles are ignored.
func (p *EntityPool) Destroy(e Entity) bool {
	if !p.Alive(e) {
		return false
	}
	idx := e.Index()
	p.generations[idx]++
	if p.generations[idx] == 0 {
		// Generation space for this slot is exhausted, retire it.
		p.alive--
		return true
	}
	p.freeList = append(p.freeList, idx)
	p.alive--
	return true
}

// Len is the number of live entities.
func (p *EntityPool) Len() int {
	return p.alive
}
