package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); nil != err {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndLookup(t *testing.T) {
	r, err := Load(writeManifest(t, `
models:
  block: ./block.obj
textures:
  dev: ./dev.png
  note_red: ./red.png
shaders:
  simple: ./simple
`))
	if nil != err {
		t.Fatal(err)
	}

	if p, err := r.Model("block"); nil != err || p != "./block.obj" {
		t.Errorf("block: %v, %v", p, err)
	}
	if p, err := r.Shader("simple"); nil != err || p != "./simple" {
		t.Errorf("simple: %v, %v", p, err)
	}
	if p, err := r.Texture("note_red"); nil != err || p != "./red.png" {
		t.Errorf("note_red: %v, %v", p, err)
	}

	_, err = r.Model("teapot")
	var missing *MissingError
	if !errors.Is(err, ErrAssetMissing) || !errors.As(err, &missing) {
		t.Fatalf("teapot: %v", err)
	}
	if missing.Kind != Model || missing.ID != "teapot" {
		t.Errorf("missing %+v", missing)
	}
	if _, err := r.Shader("toon"); !errors.Is(err, ErrAssetMissing) {
		t.Errorf("toon: %v", err)
	}
}

func TestTextureFallsBackToDev(t *testing.T) {
	r := Default()
	p, err := r.Texture("note_green")
	if !errors.Is(err, ErrAssetMissing) {
		t.Errorf("expected the miss to be reported, got %v", err)
	}
	if p != "./assets/textures/dev.png" {
		t.Errorf("fallback %q", p)
	}

	bare, err := Load(writeManifest(t, "textures: {}\n"))
	if nil != err {
		t.Fatal(err)
	}
	if p, err := bare.Texture("note_red"); p != "" || !errors.Is(err, ErrAssetMissing) {
		t.Errorf("without dev texture: %q, %v", p, err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); nil == err {
		t.Error("loaded a missing manifest")
	}
	if _, err := Load(writeManifest(t, "models: [unterminated")); nil == err {
		t.Error("loaded a malformed manifest")
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"block.obj", "dev.png", "simple"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); nil != err {
			t.Fatal(err)
		}
	}
	r := &Registry{manifest: Manifest{
		Models:   map[string]string{"block": filepath.Join(dir, "block.obj"), "cube": filepath.Join(dir, "cube.obj")},
		Textures: map[string]string{"dev": filepath.Join(dir, "dev.png"), "note_red": filepath.Join(dir, "note_red.png")},
		Shaders:  map[string]string{"simple": filepath.Join(dir, "simple")},
	}}

	errs := r.Verify()
	if len(errs) != 2 {
		t.Fatalf("errors %v", errs)
	}
	var first, second *MissingError
	if !errors.As(errs[0], &first) || first.ID != "cube" || !errors.As(errs[1], &second) || second.ID != "note_red" {
		t.Errorf("errors %v", errs)
	}
}
