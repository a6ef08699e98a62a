package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/beatxr/internal/assets"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"go.uber.org/zap"
)

const (
	sampleRate       = beep.SampleRate(44100)
	resampleQuality  = 4
	speakerBufferLen = time.Second / 60
)

var errUnsupported = errors.New("unsupported audio format")

// BeepPlayer plays sounds through the default output device. Short cues
// without a handle are decoded once and replayed from memory; handled sounds
// are streamed from disk and can be paused.
type BeepPlayer struct {
	mu     sync.Mutex
	log    *zap.Logger
	mixer  *beep.Mixer
	cues   map[string]*beep.Buffer
	sounds map[string]*sound
}

type sound struct {
	ctrl   *beep.Ctrl
	closer beep.StreamSeekCloser
}

func NewBeepPlayer(log *zap.Logger) (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferLen)); nil != err {
		return nil, fmt.Errorf("unable to open audio device: %w", err)
	}
	p := newBeepPlayer(log)
	speaker.Play(p.mixer)
	return p, nil
}

func newBeepPlayer(log *zap.Logger) *BeepPlayer {
	return &BeepPlayer{
		log:    log,
		mixer:  &beep.Mixer{},
		cues:   make(map[string]*beep.Buffer, 8),
		sounds: make(map[string]*sound, 4),
	}
}

func (p *BeepPlayer) Play(path, handle string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if handle == "" {
		buffer, err := p.cue(path)
		if nil != err {
			return err
		}
		speaker.Lock()
		p.mixer.Add(buffer.Streamer(0, buffer.Len()))
		speaker.Unlock()
		return nil
	}

	streamer, format, err := decode(path)
	if nil != err {
		return err
	}
	if old, ok := p.sounds[handle]; ok {
		speaker.Lock()
		old.ctrl.Streamer = nil
		speaker.Unlock()
		old.closer.Close()
	}
	ctrl := &beep.Ctrl{Streamer: beep.Seq(
		beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer),
		beep.Callback(func() {
			p.log.Debug("sound finished", zap.String("handle", handle))
		}),
	)}
	p.sounds[handle] = &sound{ctrl: ctrl, closer: streamer}

	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()
	p.log.Info("playing", zap.String("path", path), zap.String("handle", handle))
	return nil
}

func (p *BeepPlayer) Pause(handle string) error {
	return p.setPaused(handle, true)
}

func (p *BeepPlayer) Resume(handle string) error {
	return p.setPaused(handle, false)
}

func (p *BeepPlayer) setPaused(handle string, paused bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sounds[handle]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHandle, handle)
	}
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
	return nil
}

func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Clear()
	for handle, s := range p.sounds {
		if err := s.closer.Close(); nil != err {
			p.log.Warn("unable to close sound", zap.String("handle", handle), zap.Error(err))
		}
	}
	p.sounds = map[string]*sound{}
	return nil
}

// cue returns the decoded cue, decoding it on first use.
func (p *BeepPlayer) cue(path string) (*beep.Buffer, error) {
	if b, ok := p.cues[path]; ok {
		return b, nil
	}
	streamer, format, err := decode(path)
	if nil != err {
		return nil, err
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer))
	p.cues[path] = buffer
	return buffer, nil
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, beep.Format{}, assets.Missing(assets.Sound, path)
		}
		return nil, beep.Format{}, fmt.Errorf("unable to open %s: %w", path, err)
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg", ".egg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %s", errUnsupported, path)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unable to decode %s: %w", path, err)
	}
	return streamer, format, nil
}
