package game

type ObstacleKind uint8

const (
	Wall ObstacleKind = iota
	Ceiling
)

func (k ObstacleKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Ceiling:
		return "ceiling"
	}
	return "unknown"
}

// ObstacleKindFromCode maps the chart "_type" code of an obstacle.
// Unrecognised codes resolve to Wall and ok is false.
func ObstacleKindFromCode(code int64) (kind ObstacleKind, ok bool) {
	switch code {
	case 0:
		return Wall, true
	case 1:
		return Ceiling, true
	}
	return Wall, false
}

type ObstacleSpec struct {
	LineIndex  int32
	Kind       ObstacleKind
	WidthUnits int32
	TimeMs     float32 // When the leading edge reaches the player
	DurationMs float32 // How long until the trailing edge clears
}
