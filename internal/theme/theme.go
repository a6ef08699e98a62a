package theme

import "git.lost.host/meutraa/beatxr/internal/component"

type Theme interface {
	// Render returns the terminal glyph, with colour escapes, of a visual.
	Render(v *component.Visual, t *component.Transform) string
	RenderHitField(column int) string
}
