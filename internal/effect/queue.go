package effect

import "sync"

// Queue is an ordered, append-only list of effects for one tick.
// Push may be called from any goroutine; Drain is called once per tick by the
// driver and hands back everything in push order.
type Queue struct {
	mu      sync.Mutex
	effects []Effect
}

func NewQueue() *Queue {
	return &Queue{effects: make([]Effect, 0, 32)}
}

func (q *Queue) Push(e Effect) {
	q.mu.Lock()
	q.effects = append(q.effects, e)
	q.mu.Unlock()
}

// Drain reads and clears the queue.
func (q *Queue) Drain() []Effect {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.effects) == 0 {
		return nil
	}
	out := q.effects
	q.effects = make([]Effect, 0, cap(out))
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.effects)
}
