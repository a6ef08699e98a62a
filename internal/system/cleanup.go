package system

import (
	"git.lost.host/meutraa/beatxr/internal/ecs"
	"git.lost.host/meutraa/beatxr/internal/score"
)

// CleanupSystem drains the removal set and destroys the marked entities after
// every system of the update phase is done with them.
type CleanupSystem struct {
	world    *ecs.World
	removals *ecs.RemovalSet
	session  *score.Session
}

func NewCleanupSystem(world *ecs.World, removals *ecs.RemovalSet, session *score.Session) *CleanupSystem {
	return &CleanupSystem{
		world:    world,
		removals: removals,
		session:  session,
	}
}

func (s *CleanupSystem) Phase() Phase {
	return PhaseCleanup
}

func (s *CleanupSystem) Update() {
	marked := s.removals.Drain()
	if len(marked) == 0 {
		return
	}
	if nil != s.session {
		s.session.Tally(s.world, marked)
	}
	s.world.DestroyAll(marked)
}
