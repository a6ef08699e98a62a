package theme

import (
	"fmt"
	"image/color"
	"math"

	"git.lost.host/meutraa/beatxr/internal/component"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) Render(v *component.Visual, tr *component.Transform) string {
	c := getTextureColor(v.Texture)
	sym := blockSym
	switch v.Model {
	case "mine":
		sym = mineSym
	case "cube":
		sym = wallSym
	case "block":
		sym = Arrow(tr)
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) RenderHitField(column int) string {
	return barSyms[column%len(barSyms)]
}

// Arrow picks the glyph pointing in the cut direction encoded in the
// rotation about +Z.
func Arrow(tr *component.Transform) string {
	q := tr.Rotation
	angle := 2 * math.Atan2(float64(q.V[2]), float64(q.W))
	// Eighths of a turn, 0 is up, positive turns towards the right.
	step := int(math.Round(angle/(math.Pi/4))) % 8
	if step < 0 {
		step += 8
	}
	return arrowSyms[step]
}

const (
	mineSym  = "⨯"
	wallSym  = "█"
	blockSym = "■"
)

var (
	barSyms   = [...]string{"-", "-", "-", "-"}
	arrowSyms = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

	textureColors = map[string]color.RGBA{
		"note_red":         {236, 30, 0, 255},
		"note_middle_red":  {236, 30, 0, 255},
		"note_blue":        {0, 118, 236, 255},
		"note_middle_blue": {0, 118, 236, 255},
		"mine":             {106, 106, 106, 255},
		"obstacle":         {236, 0, 106, 255},
		"dev":              {236, 0, 236, 255},
	}
	fallbackColor = color.RGBA{255, 255, 255, 255}
)

func getTextureColor(texture string) color.RGBA {
	c, ok := textureColors[texture]
	if !ok {
		return fallbackColor
	}
	return c
}
