package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/beatxr/internal/assets"
	"git.lost.host/meutraa/beatxr/internal/component"
	"git.lost.host/meutraa/beatxr/internal/ecs"
	"git.lost.host/meutraa/beatxr/internal/theme"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// TerminalRenderer draws a top-down view of the playfield: lanes left to right,
// distance from the player bottom to top.
type TerminalRenderer struct {
	Out    io.Writer
	Theme  theme.Theme
	Assets *assets.Registry
	Log    *zap.Logger

	// Near is drawn on the hit bar, Far on the top row.
	Near, Far float32
	// Terminal columns per world unit across the lanes.
	ColumnScale float32

	Width, Height int

	buffer       strings.Builder
	restoreState *term.State
	fd           int
	reported     map[string]bool
}

func (r *TerminalRenderer) Init() error {
	if nil == r.Out {
		r.Out = os.Stdout
	}
	if nil == r.Theme {
		r.Theme = &theme.DefaultTheme{}
	}
	if nil == r.Assets {
		r.Assets = assets.Default()
	}
	if nil == r.Log {
		r.Log = zap.NewNop()
	}
	if r.ColumnScale == 0 {
		r.ColumnScale = 8
	}
	r.reported = map[string]bool{}

	if f, ok := r.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return fmt.Errorf("unable to enter raw mode: %w", err)
		}
		r.restoreState = state
		if w, h, err := term.GetSize(r.fd); nil == err {
			r.Width, r.Height = w, h
		}
	}
	if r.Width == 0 || r.Height == 0 {
		r.Width, r.Height = 80, 24
	}

	fmt.Fprintf(r.Out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *TerminalRenderer) Deinit() error {
	fmt.Fprintf(r.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

func (r *TerminalRenderer) Render(world *ecs.World, status []string) error {
	r.buffer.WriteString("\033[H\033[2J")

	hitRow := r.Height - 2
	middle := r.Width / 2
	for i := -2; i < 2; i++ {
		r.Fill(hitRow, middle+int(float32(i)*r.ColumnScale)+int(r.ColumnScale/2), r.Theme.RenderHitField(i+2))
	}

	Drawables(world, func(e ecs.Entity, t *component.Transform, v *component.Visual) {
		shown, ok := r.resolve(v)
		if !ok {
			return
		}
		col := middle - int(math.Round(float64(t.Position[0]*r.ColumnScale)))
		if col < 1 || col > r.Width {
			return
		}
		glyph := r.Theme.Render(&shown, t)
		half := t.Scale[2] / 2
		if _, ok := world.Obstacles.Get(e); !ok {
			half = 0
		}
		top, bottom := r.row(t.Position[2]+half, hitRow), r.row(t.Position[2]-half, hitRow)
		if top < 1 {
			top = 1
		}
		if bottom > hitRow {
			bottom = hitRow
		}
		for row := top; row <= bottom; row++ {
			r.Fill(row, col, glyph)
		}
	})

	for i, line := range status {
		r.Fill(2+i, 2, line)
	}

	return r.flush()
}

// row maps a distance to a screen row, rows above the screen are < 1.
func (r *TerminalRenderer) row(z float32, hitRow int) int {
	depth := r.Far - r.Near
	if depth <= 0 {
		depth = 1
	}
	rowsPerUnit := float32(hitRow-1) / depth
	return hitRow - int(math.Round(float64((z-r.Near)*rowsPerUnit)))
}

// resolve checks the assets of a visual. Missing models or shaders are not
// drawn, a missing texture is drawn with the dev texture. Each miss is logged once.
func (r *TerminalRenderer) resolve(v *component.Visual) (component.Visual, bool) {
	shown := *v
	if _, err := r.Assets.Model(v.Model); nil != err {
		r.report(err)
		return shown, false
	}
	if _, err := r.Assets.Shader(v.Shader); nil != err {
		r.report(err)
		return shown, false
	}
	if _, err := r.Assets.Texture(v.Texture); nil != err {
		r.report(err)
		shown.Texture = assets.DevTexture
	}
	return shown, true
}

func (r *TerminalRenderer) report(err error) {
	key := err.Error()
	if r.reported[key] {
		return
	}
	r.reported[key] = true
	r.Log.Warn("asset unavailable", zap.Error(err))
}

func (r *TerminalRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *TerminalRenderer) flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}
