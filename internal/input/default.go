package input

import (
	"git.lost.host/meutraa/beatxr/internal/effect"
	"git.lost.host/meutraa/beatxr/internal/system"
	"github.com/eiannone/keyboard"
)

// Pauser is the part of the motion pass the keyboard controls.
type Pauser interface {
	SetPaused(paused bool)
	Paused() bool
}

// KeySystem polls the keyboard once per tick without blocking.
// Esc quits, space pauses and resumes the song together with the motion.
type KeySystem struct {
	keys       <-chan keyboard.KeyEvent
	effects    *effect.Queue
	motion     Pauser
	songHandle string

	quit bool
}

func NewKeySystem(keys <-chan keyboard.KeyEvent, effects *effect.Queue, motion Pauser, songHandle string) *KeySystem {
	return &KeySystem{
		keys:       keys,
		effects:    effects,
		motion:     motion,
		songHandle: songHandle,
	}
}

// Open starts reading the keyboard.
func Open() (<-chan keyboard.KeyEvent, func() error, error) {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return nil, nil, err
	}
	return keys, keyboard.Close, nil
}

func (s *KeySystem) Phase() system.Phase {
	return system.PhaseInput
}

func (s *KeySystem) Update() {
	for i := len(s.keys); i > 0; i-- {
		key := <-s.keys
		if nil != key.Err {
			continue
		}
		switch {
		case key.Key == keyboard.KeyEsc, key.Key == keyboard.KeyCtrlC, key.Rune == 'q':
			s.quit = true
		case key.Key == keyboard.KeySpace:
			s.TogglePause()
		}
	}
}

func (s *KeySystem) TogglePause() {
	if s.motion.Paused() {
		s.motion.SetPaused(false)
		s.effects.Push(effect.Resume(s.songHandle))
		return
	}
	s.motion.SetPaused(true)
	s.effects.Push(effect.Pause(s.songHandle))
}

func (s *KeySystem) Quit() bool {
	return s.quit
}
