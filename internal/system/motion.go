package system

import (
	"time"

	"git.lost.host/meutraa/beatxr/internal/component"
	"git.lost.host/meutraa/beatxr/internal/config"
	"git.lost.host/meutraa/beatxr/internal/ecs"
	"git.lost.host/meutraa/beatxr/internal/effect"
	"git.lost.host/meutraa/beatxr/internal/game"
	"go.uber.org/zap"
)

// MotionSystem moves notes and obstacles towards the player by the wall time
// elapsed since the previous tick and decides what is hidden, removed, or
// announced with a sound. It never deletes entities itself.
type MotionSystem struct {
	world    *ecs.World
	removals *ecs.RemovalSet
	effects  *effect.Queue
	clock    Clock
	cfg      config.MotionConfig
	log      *zap.Logger

	last    time.Time
	started bool
	paused  bool
}

func NewMotionSystem(
	world *ecs.World,
	removals *ecs.RemovalSet,
	effects *effect.Queue,
	clock Clock,
	cfg config.MotionConfig,
	log *zap.Logger,
) *MotionSystem {
	return &MotionSystem{
		world:    world,
		removals: removals,
		effects:  effects,
		clock:    clock,
		cfg:      cfg,
		log:      log,
	}
}

func (s *MotionSystem) Phase() Phase {
	return PhaseUpdate
}

// Update runs one tick. The first tick, and the first tick after a pause, only
// records the time.
func (s *MotionSystem) Update() {
	if s.paused {
		return
	}
	now := s.clock.Now()
	if !s.started {
		s.last = now
		s.started = true
		return
	}

	delta := now.Sub(s.last)
	s.last = now
	if delta < 0 {
		s.log.Debug("clock went backwards, holding position", zap.Duration("delta", delta))
		delta = 0
	}
	s.Step(float32(delta) / float32(time.Millisecond))
}

// SetPaused freezes motion. Resuming restarts the tick timing so the paused
// interval is not applied.
func (s *MotionSystem) SetPaused(paused bool) {
	s.paused = paused
	if paused {
		s.started = false
	}
}

func (s *MotionSystem) Paused() bool {
	return s.paused
}

// Step advances every note and obstacle by deltaMs of elapsed time.
func (s *MotionSystem) Step(deltaMs float32) {
	if deltaMs < 0 {
		deltaMs = 0
	}
	advance := deltaMs / s.cfg.NoteSpeedDivisor
	s.stepNotes(advance)
	s.stepObstacles(advance)
}

func (s *MotionSystem) stepNotes(advance float32) {
	visuals := s.world.Visuals
	ecs.Each2(s.world.Transforms, s.world.Notes, func(e ecs.Entity, t *component.Transform, n *component.NoteTag) {
		t.Position[2] -= advance
		z := t.Position[2]

		// Mines are cleared by dodging them, every other note confirms with a slash.
		threshold, slash := s.cfg.NoteRemoveZ, true
		if n.Kind == game.Mine {
			threshold, slash = s.cfg.MineRemoveZ, false
		}
		if z < threshold && s.removals.Mark(e) && slash {
			s.effects.Push(effect.Play(s.cfg.SlashSound, ""))
		}

		if v, ok := visuals.Get(e); ok {
			v.Enabled = z <= s.cfg.HideBeyondZ
		}
	})
}

func (s *MotionSystem) stepObstacles(advance float32) {
	ecs.Each2(s.world.Transforms, s.world.Obstacles, func(e ecs.Entity, t *component.Transform, o *component.ObstacleTag) {
		t.Position[2] -= advance
		if t.Position[2] < -o.DurationMs {
			s.removals.Mark(e)
		}
	})
}
