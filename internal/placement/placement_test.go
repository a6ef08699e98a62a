package placement

import (
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/beatxr/internal/config"
	"git.lost.host/meutraa/beatxr/internal/ecs"
	"git.lost.host/meutraa/beatxr/internal/effect"
	"git.lost.host/meutraa/beatxr/internal/game"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap/zaptest"
)

const epsilon = 1e-4

func layout() config.LayoutConfig {
	return config.DefaultTuning().Layout
}

func TestPlaceNote(t *testing.T) {
	tests := []struct {
		note     game.NoteSpec
		position mgl32.Vec3
		texture  string
		model    string
	}{
		{
			note:     game.NoteSpec{LineIndex: 0, LineLayer: 0, Kind: game.Red, TimeMs: 0, CutDirection: game.Top},
			position: mgl32.Vec3{1, 1, 5},
			texture:  "note_red",
			model:    "block",
		},
		{
			note:     game.NoteSpec{LineIndex: 3, LineLayer: 2, Kind: game.Blue, TimeMs: 600, CutDirection: game.Right},
			position: mgl32.Vec3{-1.1, 2.2, 15},
			texture:  "note_blue",
			model:    "block",
		},
		{
			note:     game.NoteSpec{LineIndex: 1, LineLayer: 1, Kind: game.Mine, TimeMs: 1200, CutDirection: game.None},
			position: mgl32.Vec3{0.3, 1.6, 25},
			texture:  "mine",
			model:    "mine",
		},
	}

	for _, test := range tests {
		w := ecs.NewWorld()
		e := PlaceNote(w, layout(), test.note)

		tr, ok := w.Transforms.Get(e)
		if !ok {
			t.Fatal("no transform")
		}
		if !tr.Position.ApproxEqualThreshold(test.position, epsilon) {
			t.Log("note    ", test.note)
			t.Log("out     ", tr.Position)
			t.Log("expected", test.position)
			t.Fail()
		}
		if !tr.Scale.ApproxEqualThreshold(mgl32.Vec3{0.3, 0.3, 0.3}, epsilon) {
			t.Errorf("scale %v", tr.Scale)
		}

		v, ok := w.Visuals.Get(e)
		if !ok || !v.Enabled || v.Model != test.model || v.Texture != test.texture || v.Shader != "simple" {
			t.Errorf("visual %+v", v)
		}

		tag, ok := w.Notes.Get(e)
		if !ok || tag.Kind != test.note.Kind || tag.CutDirection != test.note.CutDirection || tag.SpawnTimeMs != test.note.TimeMs {
			t.Errorf("tag %+v", tag)
		}
		if w.Obstacles.Has(e) {
			t.Error("note tagged as an obstacle")
		}
	}
}

func TestNoteRotation(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	tests := map[game.CutDirection]mgl32.Vec3{
		game.Top:    up,
		game.None:   up,
		game.Bottom: {0, -1, 0},
		game.Left:   {1, 0, 0},
		game.Right:  {-1, 0, 0},
	}
	for dir := game.Top; dir <= game.None; dir++ {
		q := NoteRotation(dir)
		if l := q.Len(); l < 1-epsilon || l > 1+epsilon {
			t.Errorf("%v: rotation length %v", dir, l)
		}
		expected, ok := tests[dir]
		if !ok {
			continue
		}
		if out := q.Rotate(up); !out.ApproxEqualThreshold(expected, epsilon) {
			t.Errorf("%v: up rotated to %v, expected %v", dir, out, expected)
		}
	}
	if q := NoteRotation(game.CutDirection(77)); q != mgl32.QuatIdent() {
		t.Errorf("unknown direction rotated by %v", q)
	}
}

func TestPlaceObstacle(t *testing.T) {
	tests := []struct {
		obstacle game.ObstacleSpec
		position mgl32.Vec3
		scale    mgl32.Vec3
	}{
		{
			obstacle: game.ObstacleSpec{LineIndex: 0, Kind: game.Wall, WidthUnits: 1, TimeMs: 120, DurationMs: 60},
			position: mgl32.Vec3{2, 2, 7.5},
			scale:    mgl32.Vec3{0.3, 2, 1},
		},
		{
			obstacle: game.ObstacleSpec{LineIndex: 1, Kind: game.Wall, WidthUnits: 2, TimeMs: 0, DurationMs: 600},
			position: mgl32.Vec3{0.5, 2, 10},
			scale:    mgl32.Vec3{0.6, 2, 10},
		},
		{
			obstacle: game.ObstacleSpec{LineIndex: 0, Kind: game.Ceiling, WidthUnits: 3, TimeMs: 0, DurationMs: 120},
			position: mgl32.Vec3{0.8, 2.2, 6},
			scale:    mgl32.Vec3{1.2, 0.9, 2},
		},
	}

	for _, test := range tests {
		w := ecs.NewWorld()
		e := PlaceObstacle(w, layout(), test.obstacle)

		tr, _ := w.Transforms.Get(e)
		if !tr.Position.ApproxEqualThreshold(test.position, epsilon) || !tr.Scale.ApproxEqualThreshold(test.scale, epsilon) {
			t.Log("obstacle", test.obstacle)
			t.Log("out     ", tr.Position, tr.Scale)
			t.Log("expected", test.position, test.scale)
			t.Fail()
		}
		if tr.Rotation != mgl32.QuatIdent() {
			t.Errorf("rotation %v", tr.Rotation)
		}
		v, _ := w.Visuals.Get(e)
		if v.Model != "cube" || v.Texture != "obstacle" || v.Shader != "wall" {
			t.Errorf("visual %+v", v)
		}
		tag, ok := w.Obstacles.Get(e)
		if !ok || tag.DurationMs != test.obstacle.DurationMs || tag.Kind != test.obstacle.Kind {
			t.Errorf("tag %+v", tag)
		}
	}
}

func TestLoad(t *testing.T) {
	chart := &game.Chart{
		Notes: []game.NoteSpec{
			{Kind: game.Red, TimeMs: 0},
			{Kind: game.Blue, TimeMs: 500},
		},
		Obstacles: []game.ObstacleSpec{{Kind: game.Wall, WidthUnits: 1, TimeMs: 100, DurationMs: 100}},
		AudioFile: "song.ogg",
	}
	w := ecs.NewWorld()
	effects := effect.NewQueue()
	loader := Loader{Layout: layout(), SongHandle: "SongPlayback", Log: zaptest.NewLogger(t)}

	entities := loader.Load(w, effects, chart, "songs/Test Song")
	if len(entities) != 3 || w.Len() != 3 {
		t.Fatalf("placed %v, world has %v", len(entities), w.Len())
	}
	if w.Notes.Len() != 2 || w.Obstacles.Len() != 1 || w.Visuals.Len() != 3 {
		t.Errorf("notes %v obstacles %v visuals %v", w.Notes.Len(), w.Obstacles.Len(), w.Visuals.Len())
	}

	queued := effects.Drain()
	expected := effect.Play(filepath.Join("songs/Test Song", "song.ogg"), "SongPlayback")
	if len(queued) != 1 || queued[0] != expected {
		t.Errorf("queued %v, expected %v", queued, expected)
	}
}

func TestLoadWithoutAudio(t *testing.T) {
	w := ecs.NewWorld()
	effects := effect.NewQueue()
	loader := Loader{Layout: layout(), SongHandle: "SongPlayback"}
	loader.Load(w, effects, &game.Chart{Notes: []game.NoteSpec{{}}}, "songs")
	if effects.Len() != 0 {
		t.Errorf("queued %v", effects.Drain())
	}
}
