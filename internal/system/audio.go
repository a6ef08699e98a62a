package system

import (
	"errors"

	"git.lost.host/meutraa/beatxr/internal/assets"
	"git.lost.host/meutraa/beatxr/internal/audio"
	"git.lost.host/meutraa/beatxr/internal/effect"
	"go.uber.org/zap"
)

// AudioSystem hands the effects queued this tick to the player, in order.
// Failures are logged and never stop the tick.
type AudioSystem struct {
	effects *effect.Queue
	player  audio.Player
	log     *zap.Logger
	missing map[string]bool
}

func NewAudioSystem(effects *effect.Queue, player audio.Player, log *zap.Logger) *AudioSystem {
	return &AudioSystem{
		effects: effects,
		player:  player,
		log:     log,
		missing: map[string]bool{},
	}
}

func (s *AudioSystem) Phase() Phase {
	return PhaseAudio
}

func (s *AudioSystem) Update() {
	for _, e := range s.effects.Drain() {
		err := audio.Apply(s.player, e)
		switch {
		case nil == err:
		case errors.Is(err, assets.ErrAssetMissing):
			if !s.missing[e.Path] {
				s.missing[e.Path] = true
				s.log.Warn("sound unavailable", zap.Stringer("effect", e), zap.Error(err))
			}
		case errors.Is(err, audio.ErrUnknownHandle):
			s.log.Debug("sound not playing", zap.Stringer("effect", e))
		default:
			s.log.Error("unable to apply sound effect", zap.Stringer("effect", e), zap.Error(err))
		}
	}
}
