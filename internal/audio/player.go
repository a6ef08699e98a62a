package audio

import (
	"errors"
	"sync"

	"git.lost.host/meutraa/beatxr/internal/effect"
)

var ErrUnknownHandle = errors.New("no sound with this handle")

// Player is the audio device seen by the simulation.
type Player interface {
	// Play starts the file at path. A non-empty handle keeps the sound
	// addressable for Pause and Resume.
	Play(path, handle string) error
	Pause(handle string) error
	Resume(handle string) error
	Close() error
}

// Apply hands one effect to the player.
func Apply(p Player, e effect.Effect) error {
	switch e.Kind {
	case effect.PlaySound:
		return p.Play(e.Path, e.Handle)
	case effect.PauseSound:
		return p.Pause(e.Handle)
	case effect.ResumeSound:
		return p.Resume(e.Handle)
	}
	return nil
}

// Recorder is a silent Player that remembers what it was asked to do.
type Recorder struct {
	mu      sync.Mutex
	Effects []effect.Effect
}

func (r *Recorder) Play(path, handle string) error {
	r.record(effect.Play(path, handle))
	return nil
}

func (r *Recorder) Pause(handle string) error {
	r.record(effect.Pause(handle))
	return nil
}

func (r *Recorder) Resume(handle string) error {
	r.record(effect.Resume(handle))
	return nil
}

func (r *Recorder) Close() error {
	return nil
}

func (r *Recorder) record(e effect.Effect) {
	r.mu.Lock()
	r.Effects = append(r.Effects, e)
	r.mu.Unlock()
}

// Played returns a copy of everything recorded so far.
func (r *Recorder) Played() []effect.Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]effect.Effect, len(r.Effects))
	copy(out, r.Effects)
	return out
}
