package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

type Tuning struct {
	Motion  MotionConfig  `toml:"motion"`
	Layout  LayoutConfig  `toml:"layout"`
	Logging LoggingConfig `toml:"logging"`

	// Keys present in the file that no field consumed.
	Unknown []string `toml:"-"`
}

// MotionConfig drives the per-tick note and obstacle pass.
type MotionConfig struct {
	NoteSpeedDivisor float32 `toml:"note_speed_divisor"` // elapsed ms per world unit
	NoteRemoveZ      float32 `toml:"note_remove_z"`      // notes behind this are removed with a slash
	MineRemoveZ      float32 `toml:"mine_remove_z"`      // mines behind this are removed silently
	HideBeyondZ      float32 `toml:"hide_beyond_z"`      // anything further away is not drawn
	SlashSound       string  `toml:"slash_sound"`
	SongHandle       string  `toml:"song_handle"`
}

// LayoutConfig is the placement formula of notes and obstacles.
type LayoutConfig struct {
	ColumnSpacing float32 `toml:"column_spacing"`
	ColumnOffset  float32 `toml:"column_offset"`
	RowSpacing    float32 `toml:"row_spacing"`
	RowOffset     float32 `toml:"row_offset"`
	ZPerMsDivisor float32 `toml:"z_per_ms_divisor"`
	SpawnZOffset  float32 `toml:"spawn_z_offset"`
	NoteScale     float32 `toml:"note_scale"`

	ObstacleColumnSpacing float32 `toml:"obstacle_column_spacing"`
	WallColumnOffset      float32 `toml:"wall_column_offset"`
	WallY                 float32 `toml:"wall_y"`
	WallHeight            float32 `toml:"wall_height"`
	CeilingColumnOffset   float32 `toml:"ceiling_column_offset"`
	CeilingTop            float32 `toml:"ceiling_top"`
	CeilingWidth          float32 `toml:"ceiling_width"`
	WidthUnitScale        float32 `toml:"width_unit_scale"`

	NoteShader     string `toml:"note_shader"`
	ObstacleShader string `toml:"obstacle_shader"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func DefaultTuning() *Tuning {
	return &Tuning{
		Motion: MotionConfig{
			NoteSpeedDivisor: 60,
			NoteRemoveZ:      5,
			MineRemoveZ:      -5,
			HideBeyondZ:      40,
			SlashSound:       "./assets/sounds/slash.mp3",
			SongHandle:       "SongPlayback",
		},
		Layout: LayoutConfig{
			ColumnSpacing: 0.7,
			ColumnOffset:  1.0,
			RowSpacing:    0.6,
			RowOffset:     1.0,
			ZPerMsDivisor: 60,
			SpawnZOffset:  5.0,
			NoteScale:     0.3,

			ObstacleColumnSpacing: 1.5,
			WallColumnOffset:      2.0,
			WallY:                 2.0,
			WallHeight:            2.0,
			CeilingColumnOffset:   0.8,
			CeilingTop:            3.2,
			CeilingWidth:          1.2,
			WidthUnitScale:        0.3,

			NoteShader:     "simple",
			ObstacleShader: "wall",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadTuning reads a tuning file over the defaults. An empty path gives the defaults.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	md, err := toml.DecodeFile(path, t)
	if nil != err {
		return nil, fmt.Errorf("unable to parse tuning file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		t.Unknown = append(t.Unknown, key.String())
	}
	if err := t.Validate(); nil != err {
		return nil, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}

func (t *Tuning) Validate() error {
	if t.Motion.NoteSpeedDivisor <= 0 {
		return errors.New("motion.note_speed_divisor must be positive")
	}
	if t.Layout.ZPerMsDivisor <= 0 {
		return errors.New("layout.z_per_ms_divisor must be positive")
	}
	if t.Motion.SongHandle == "" {
		return errors.New("motion.song_handle must not be empty")
	}
	return nil
}
