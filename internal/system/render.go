package system

import (
	"git.lost.host/meutraa/beatxr/internal/ecs"
	"git.lost.host/meutraa/beatxr/internal/render"
	"go.uber.org/zap"
)

// RenderSystem hands the world to the renderer once everything else ran.
type RenderSystem struct {
	world    *ecs.World
	renderer render.Renderer
	status   func() []string
	log      *zap.Logger
	failed   bool
}

func NewRenderSystem(world *ecs.World, renderer render.Renderer, status func() []string, log *zap.Logger) *RenderSystem {
	return &RenderSystem{
		world:    world,
		renderer: renderer,
		status:   status,
		log:      log,
	}
}

func (s *RenderSystem) Phase() Phase {
	return PhaseRender
}

func (s *RenderSystem) Update() {
	var lines []string
	if nil != s.status {
		lines = s.status()
	}
	if err := s.renderer.Render(s.world, lines); nil != err {
		// A broken output tends to fail every frame, log it once.
		if !s.failed {
			s.log.Error("unable to render frame", zap.Error(err))
		}
		s.failed = true
		return
	}
	s.failed = false
}
