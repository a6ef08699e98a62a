package component

import "git.lost.host/meutraa/beatxr/internal/game"

// NoteTag marks an entity as a note. It is not changed after placement.
type NoteTag struct {
	Kind         game.NoteKind
	CutDirection game.CutDirection
	SpawnTimeMs  float32
}

// ObstacleTag marks an entity as a wall or ceiling. It is not changed after placement.
type ObstacleTag struct {
	Kind       game.ObstacleKind
	WidthUnits int32
	DurationMs float32
}
