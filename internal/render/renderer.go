package render

import (
	"git.lost.host/meutraa/beatxr/internal/component"
	"git.lost.host/meutraa/beatxr/internal/ecs"
)

// Renderer draws the current entities once per tick. It only reads the world
// and skips every entity whose visual is disabled.
type Renderer interface {
	Init() error
	Deinit() error
	Render(world *ecs.World, status []string) error
}

// Drawables visits the (Transform, Visual) pairs that should be drawn.
func Drawables(world *ecs.World, fn func(ecs.Entity, *component.Transform, *component.Visual)) {
	ecs.Each2(world.Transforms, world.Visuals, func(e ecs.Entity, t *component.Transform, v *component.Visual) {
		if !v.Enabled {
			return
		}
		fn(e, t, v)
	})
}

// NullRenderer draws nothing and counts what it would have drawn.
type NullRenderer struct {
	Frames int
	Drawn  int // entities drawn in the last frame
}

func (r *NullRenderer) Init() error   { return nil }
func (r *NullRenderer) Deinit() error { return nil }

func (r *NullRenderer) Render(world *ecs.World, status []string) error {
	r.Frames++
	r.Drawn = 0
	Drawables(world, func(ecs.Entity, *component.Transform, *component.Visual) {
		r.Drawn++
	})
	return nil
}
