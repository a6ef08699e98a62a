package component

// Visual tells the renderer what to draw. A disabled visual is still simulated.
type Visual struct {
	Model   string
	Texture string
	Shader  string
	Enabled bool
}

func NewVisual(model, texture, shader string) Visual {
	return Visual{
		Model:   model,
		Texture: texture,
		Shader:  shader,
		Enabled: true,
	}
}
