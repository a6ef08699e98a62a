package assets

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrAssetMissing is wrapped by every lookup of an unknown or absent asset.
var ErrAssetMissing = errors.New("asset missing")

// DevTexture stands in for textures that cannot be found.
const DevTexture = "dev"

type Kind string

const (
	Model   Kind = "model"
	Texture Kind = "texture"
	Shader  Kind = "shader"
	Sound   Kind = "sound"
)

type MissingError struct {
	Kind Kind
	ID   string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.ID, ErrAssetMissing)
}

func (e *MissingError) Unwrap() error {
	return ErrAssetMissing
}

func Missing(kind Kind, id string) error {
	return &MissingError{Kind: kind, ID: id}
}

// Manifest maps asset ids to files.
type Manifest struct {
	Models   map[string]string `yaml:"models"`
	Textures map[string]string `yaml:"textures"`
	Shaders  map[string]string `yaml:"shaders"`
}

type Registry struct {
	manifest Manifest
}

// Default is the manifest of the stock asset directory.
func Default() *Registry {
	return &Registry{manifest: Manifest{
		Models: map[string]string{
			"block": "./assets/models/block.obj",
			"cube":  "./assets/models/cube.obj",
			"mine":  "./assets/models/mine.obj",
		},
		Textures: map[string]string{
			DevTexture:         "./assets/textures/dev.png",
			"mine":             "./assets/textures/mine.png",
			"note_red":         "./assets/textures/note_red.png",
			"note_blue":        "./assets/textures/note_blue.png",
			"note_middle_red":  "./assets/textures/note_middle_red.png",
			"note_middle_blue": "./assets/textures/note_middle_blue.png",
			"obstacle":         "./assets/textures/obstacle.png",
		},
		Shaders: map[string]string{
			"simple": "./assets/shaders/simple",
			"wall":   "./assets/shaders/wall",
		},
	}}
}

// Load reads a yaml manifest.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read asset manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unable to parse asset manifest %s: %w", path, err)
	}
	return &Registry{manifest: m}, nil
}

func (r *Registry) lookup(kind Kind, table map[string]string, id string) (string, error) {
	if p, ok := table[id]; ok {
		return p, nil
	}
	return "", Missing(kind, id)
}

func (r *Registry) Model(id string) (string, error) {
	return r.lookup(Model, r.manifest.Models, id)
}

func (r *Registry) Shader(id string) (string, error) {
	return r.lookup(Shader, r.manifest.Shaders, id)
}

// Texture resolves a texture, falling back to the dev texture. The error is
// still reported when the fallback was used.
func (r *Registry) Texture(id string) (string, error) {
	p, err := r.lookup(Texture, r.manifest.Textures, id)
	if nil == err {
		return p, nil
	}
	if dev, ok := r.manifest.Textures[DevTexture]; ok {
		return dev, err
	}
	return "", err
}

// Verify checks that every file of the manifest exists, sorted by kind and id.
func (r *Registry) Verify() []error {
	var errs []error
	check := func(kind Kind, table map[string]string) {
		ids := make([]string, 0, len(table))
		for id := range table {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if _, err := os.Stat(table[id]); nil != err {
				errs = append(errs, fmt.Errorf("%w: %s", Missing(kind, id), table[id]))
			}
		}
	}
	check(Model, r.manifest.Models)
	check(Texture, r.manifest.Textures)
	check(Shader, r.manifest.Shaders)
	return errs
}
