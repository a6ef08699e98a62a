package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is the world-space pose of an entity. Rotation is kept unit length.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: rotation.Normalize(),
		Scale:    scale,
	}
}

// Normalize restores a unit rotation after it was written directly.
func (t *Transform) Normalize() {
	t.Rotation = t.Rotation.Normalize()
}

// Matrix is translation * rotation * scale.
func (t *Transform) Matrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	scale := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return translation.Mul4(t.Rotation.Mat4()).Mul4(scale)
}
