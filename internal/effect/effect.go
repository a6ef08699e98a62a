package effect

import "fmt"

type Kind uint8

const (
	PlaySound Kind = iota
	PauseSound
	ResumeSound
)

func (k Kind) String() string {
	switch k {
	case PlaySound:
		return "play"
	case PauseSound:
		return "pause"
	case ResumeSound:
		return "resume"
	}
	return "unknown"
}

// Effect is a deferred side effect for an external collaborator.
// Handle names a sound so it can be paused or resumed later; a PlaySound
// without a handle is fire and forget.
type Effect struct {
	Kind   Kind
	Path   string
	Handle string
}

func Play(path, handle string) Effect {
	return Effect{Kind: PlaySound, Path: path, Handle: handle}
}

func Pause(handle string) Effect {
	return Effect{Kind: PauseSound, Handle: handle}
}

func Resume(handle string) Effect {
	return Effect{Kind: ResumeSound, Handle: handle}
}

func (e Effect) String() string {
	if e.Kind == PlaySound {
		return fmt.Sprintf("%v(%q, %q)", e.Kind, e.Path, e.Handle)
	}
	return fmt.Sprintf("%v(%q)", e.Kind, e.Handle)
}
