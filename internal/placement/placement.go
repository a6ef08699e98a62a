// Package placement turns a parsed chart into entities. Positions follow a
// fixed formula so every implementation lays a chart out identically:
//
//	note      x = -(lineIndex * columnSpacing) + columnOffset
//	          y = lineLayer * rowSpacing + rowOffset
//	          z = timeMs / zPerMsDivisor + spawnZOffset
//	wall      scale (width * widthUnitScale, wallHeight, durationMs / zPerMsDivisor)
//	ceiling   scale (ceilingWidth, width * widthUnitScale, durationMs / zPerMsDivisor)
//	obstacle  z = timeMs / zPerMsDivisor + spawnZOffset + durationMs / (2 * zPerMsDivisor)
package placement

import (
	"math"
	"path/filepath"

	"git.lost.host/meutraa/beatxr/internal/component"
	"git.lost.host/meutraa/beatxr/internal/config"
	"git.lost.host/meutraa/beatxr/internal/ecs"
	"git.lost.host/meutraa/beatxr/internal/effect"
	"git.lost.host/meutraa/beatxr/internal/game"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var zAxis = mgl32.Vec3{0, 0, 1}

// Angle about +Z of the cut indicator.
var cutAngles = [...]float32{
	game.Top:         0,
	game.Bottom:      math.Pi,
	game.Left:        -math.Pi / 2,
	game.Right:       math.Pi / 2,
	game.TopLeft:     -math.Pi / 4,
	game.TopRight:    math.Pi / 4,
	game.BottomLeft:  -math.Pi / 4 * 3,
	game.BottomRight: math.Pi / 4 * 3,
	game.None:        0,
}

// NoteRotation is the in-plane rotation of the cut indicator.
func NoteRotation(dir game.CutDirection) mgl32.Quat {
	if int(dir) >= len(cutAngles) {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(cutAngles[dir], zAxis).Normalize()
}

func noteVisual(kind game.NoteKind, shader string) component.Visual {
	switch kind {
	case game.Mine:
		return component.NewVisual("mine", "mine", shader)
	case game.Blue:
		return component.NewVisual("block", "note_blue", shader)
	}
	return component.NewVisual("block", "note_red", shader)
}

// PlaceNote creates the entity of one note.
func PlaceNote(world *ecs.World, layout config.LayoutConfig, note game.NoteSpec) ecs.Entity {
	transform := component.NewTransform(
		mgl32.Vec3{
			-(float32(note.LineIndex) * layout.ColumnSpacing) + layout.ColumnOffset,
			float32(note.LineLayer)*layout.RowSpacing + layout.RowOffset,
			note.TimeMs/layout.ZPerMsDivisor + layout.SpawnZOffset,
		},
		NoteRotation(note.CutDirection),
		mgl32.Vec3{layout.NoteScale, layout.NoteScale, layout.NoteScale},
	)

	e := world.Create()
	ecs.Attach(world, world.Transforms, e, transform)
	ecs.Attach(world, world.Visuals, e, noteVisual(note.Kind, layout.NoteShader))
	ecs.Attach(world, world.Notes, e, component.NoteTag{
		Kind:         note.Kind,
		CutDirection: note.CutDirection,
		SpawnTimeMs:  note.TimeMs,
	})
	return e
}

// PlaceObstacle creates the entity of one wall or ceiling. Its leading edge
// reaches the player at TimeMs and its trailing edge at TimeMs + DurationMs.
func PlaceObstacle(world *ecs.World, layout config.LayoutConfig, obstacle game.ObstacleSpec) ecs.Entity {
	depth := obstacle.DurationMs / layout.ZPerMsDivisor
	z := obstacle.TimeMs/layout.ZPerMsDivisor + layout.SpawnZOffset + depth/2
	column := -(float32(obstacle.LineIndex) * layout.ObstacleColumnSpacing)
	width := float32(obstacle.WidthUnits) * layout.WidthUnitScale

	var position, scale mgl32.Vec3
	switch obstacle.Kind {
	case game.Ceiling:
		// Width is halved in whole units before it lowers the band.
		position = mgl32.Vec3{column + layout.CeilingColumnOffset, layout.CeilingTop - float32(obstacle.WidthUnits/2), z}
		scale = mgl32.Vec3{layout.CeilingWidth, width, depth}
	default:
		position = mgl32.Vec3{column + layout.WallColumnOffset, layout.WallY, z}
		scale = mgl32.Vec3{width, layout.WallHeight, depth}
	}

	e := world.Create()
	ecs.Attach(world, world.Transforms, e, component.NewTransform(position, mgl32.QuatIdent(), scale))
	ecs.Attach(world, world.Visuals, e, component.NewVisual("cube", "obstacle", layout.ObstacleShader))
	ecs.Attach(world, world.Obstacles, e, component.ObstacleTag{
		Kind:       obstacle.Kind,
		WidthUnits: obstacle.WidthUnits,
		DurationMs: obstacle.DurationMs,
	})
	return e
}

// Loader places a whole chart at song load.
type Loader struct {
	Layout     config.LayoutConfig
	SongHandle string
	Log        *zap.Logger
}

// Load creates one entity per note and obstacle and queues the song playback.
// The song file is looked up relative to songDir.
func (l *Loader) Load(world *ecs.World, effects *effect.Queue, chart *game.Chart, songDir string) []ecs.Entity {
	entities := make([]ecs.Entity, 0, len(chart.Notes)+len(chart.Obstacles))
	for _, note := range chart.Notes {
		entities = append(entities, PlaceNote(world, l.Layout, note))
	}
	for _, obstacle := range chart.Obstacles {
		entities = append(entities, PlaceObstacle(world, l.Layout, obstacle))
	}

	if chart.AudioFile != "" {
		effects.Push(effect.Play(filepath.Join(songDir, chart.AudioFile), l.SongHandle))
	}

	if nil != l.Log {
		l.Log.Info("placed chart",
			zap.String("difficulty", chart.Difficulty.Name),
			zap.Int("notes", len(chart.Notes)),
			zap.Int("obstacles", len(chart.Obstacles)),
			zap.Float32("bpm", chart.Bpm),
		)
	}
	return entities
}
