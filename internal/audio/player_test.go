package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/beatxr/internal/assets"
	"git.lost.host/meutraa/beatxr/internal/effect"
	"go.uber.org/zap/zaptest"
)

// writeWav writes a short mono 16-bit tone.
func writeWav(t *testing.T, path string) {
	t.Helper()
	const rate, frames = 44100, 441
	var samples bytes.Buffer
	for i := 0; i < frames; i++ {
		binary.Write(&samples, binary.LittleEndian, int16((i%100)*200))
	}

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, int32(36+samples.Len()))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, int32(16))
	binary.Write(&b, binary.LittleEndian, int16(1)) // PCM
	binary.Write(&b, binary.LittleEndian, int16(1)) // mono
	binary.Write(&b, binary.LittleEndian, int32(rate))
	binary.Write(&b, binary.LittleEndian, int32(rate*2))
	binary.Write(&b, binary.LittleEndian, int16(2))
	binary.Write(&b, binary.LittleEndian, int16(16))
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, int32(samples.Len()))
	b.Write(samples.Bytes())

	if err := os.WriteFile(path, b.Bytes(), 0o644); nil != err {
		t.Fatal(err)
	}
}

func TestApply(t *testing.T) {
	r := &Recorder{}
	in := []effect.Effect{
		effect.Play("song.ogg", "SongPlayback"),
		effect.Pause("SongPlayback"),
		effect.Resume("SongPlayback"),
		effect.Play("slash.mp3", ""),
	}
	for _, e := range in {
		if err := Apply(r, e); nil != err {
			t.Fatal(err)
		}
	}
	played := r.Played()
	for i := range in {
		if played[i] != in[i] {
			t.Errorf("%v: %v, expected %v", i, played[i], in[i])
		}
	}
	played[0] = effect.Effect{}
	if r.Played()[0] != in[0] {
		t.Error("Played shares its slice")
	}
}

func TestDecodeMissingFile(t *testing.T) {
	_, _, err := decode(filepath.Join(t.TempDir(), "slash.mp3"))
	if !errors.Is(err, assets.ErrAssetMissing) {
		t.Errorf("expected a missing asset, got %v", err)
	}
	var missing *assets.MissingError
	if !errors.As(err, &missing) || missing.Kind != assets.Sound {
		t.Errorf("error %#v", err)
	}
}

func TestDecodeUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.flac")
	if err := os.WriteFile(path, []byte("fLaC"), 0o644); nil != err {
		t.Fatal(err)
	}
	if _, _, err := decode(path); !errors.Is(err, errUnsupported) {
		t.Errorf("expected unsupported, got %v", err)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.wav")
	if err := os.WriteFile(path, []byte("not a wave file"), 0o644); nil != err {
		t.Fatal(err)
	}
	_, _, err := decode(path)
	if nil == err || errors.Is(err, assets.ErrAssetMissing) {
		t.Errorf("expected a decode error, got %v", err)
	}
}

func TestBeepPlayerHandles(t *testing.T) {
	dir := t.TempDir()
	song := filepath.Join(dir, "song.wav")
	writeWav(t, song)

	p := newBeepPlayer(zaptest.NewLogger(t))
	if err := p.Pause("SongPlayback"); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("pause before play: %v", err)
	}
	if err := p.Play(filepath.Join(dir, "missing.ogg"), "SongPlayback"); !errors.Is(err, assets.ErrAssetMissing) {
		t.Errorf("play missing: %v", err)
	}

	if err := p.Play(song, "SongPlayback"); nil != err {
		t.Fatal(err)
	}
	first := p.sounds["SongPlayback"].ctrl

	if err := p.Pause("SongPlayback"); nil != err || !first.Paused {
		t.Errorf("pause: %v, paused %v", err, first.Paused)
	}
	if err := p.Resume("SongPlayback"); nil != err || first.Paused {
		t.Errorf("resume: %v, paused %v", err, first.Paused)
	}

	// Playing again under the same handle replaces the old sound.
	if err := p.Play(song, "SongPlayback"); nil != err {
		t.Fatal(err)
	}
	if nil != first.Streamer {
		t.Error("old sound still streaming")
	}
	if len(p.sounds) != 1 {
		t.Errorf("%v handled sounds", len(p.sounds))
	}

	if err := p.Close(); nil != err {
		t.Error(err)
	}
	if err := p.Resume("SongPlayback"); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("resume after close: %v", err)
	}
}

func TestBeepPlayerCachesCues(t *testing.T) {
	dir := t.TempDir()
	slash := filepath.Join(dir, "slash.wav")
	writeWav(t, slash)

	p := newBeepPlayer(zaptest.NewLogger(t))
	for i := 0; i < 3; i++ {
		if err := p.Play(slash, ""); nil != err {
			t.Fatal(err)
		}
	}
	if len(p.cues) != 1 || p.cues[slash].Len() == 0 {
		t.Errorf("cues %v", p.cues)
	}
	if len(p.sounds) != 0 {
		t.Error("a cue was kept as a handled sound")
	}
	if err := p.Play(filepath.Join(dir, "missing.mp3"), ""); !errors.Is(err, assets.ErrAssetMissing) {
		t.Errorf("missing cue: %v", err)
	}
}
