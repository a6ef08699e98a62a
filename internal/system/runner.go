package system

import "sort"

// Phase orders systems within a tick.
type Phase int

const (
	PhaseInput   Phase = iota // poll the keyboard
	PhaseUpdate               // move entities, mark removals, queue effects
	PhaseCleanup              // destroy what was marked
	PhaseAudio                // hand queued effects to the audio device
	PhaseRender               // draw what is left
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseUpdate:
		return "update"
	case PhaseCleanup:
		return "cleanup"
	case PhaseAudio:
		return "audio"
	case PhaseRender:
		return "render"
	}
	return "unknown"
}

type System interface {
	Phase() Phase
	Update()
}

// Runner executes systems in phase order each tick. Systems of the same phase
// run in registration order.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s ...System) {
	r.systems = append(r.systems, s...)
	r.sorted = false
}

func (r *Runner) Tick() {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update()
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
