package game

// NoteKind is the colour of a note, or a mine that has to be avoided.
type NoteKind uint8

const (
	Red NoteKind = iota
	Blue
	Mine
)

func (k NoteKind) String() string {
	switch k {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Mine:
		return "mine"
	}
	return "unknown"
}

// NoteKindFromCode maps the chart "_type" code to a NoteKind.
// Unrecognised codes resolve to Red and ok is false.
func NoteKindFromCode(code int64) (kind NoteKind, ok bool) {
	switch code {
	case 0:
		return Red, true
	case 1:
		return Blue, true
	case 3:
		return Mine, true
	}
	return Red, false
}

// CutDirection is the swipe a player has to make through a note.
type CutDirection uint8

const (
	Top CutDirection = iota
	Bottom
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	None
)

var cutDirectionNames = [...]string{
	"top", "bottom", "left", "right",
	"top-left", "top-right", "bottom-left", "bottom-right",
	"none",
}

func (d CutDirection) String() string {
	if int(d) < len(cutDirectionNames) {
		return cutDirectionNames[d]
	}
	return "unknown"
}

// CutDirectionFromCode maps the chart "_cutDirection" code to a CutDirection.
// Unrecognised codes resolve to None and ok is false.
func CutDirectionFromCode(code int64) (dir CutDirection, ok bool) {
	if code < 0 || code > int64(None) {
		return None, false
	}
	return CutDirection(code), true
}

type NoteSpec struct {
	LineLayer    uint8 // The row, 0 is the bottom
	LineIndex    uint8 // The column, 0 is the left
	Kind         NoteKind
	TimeMs       float32 // The time the note should be hit
	CutDirection CutDirection
}
