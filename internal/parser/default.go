package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/beatxr/internal/game"
	"go.uber.org/zap"
)

var errMissing = errors.New("required field is missing")

type DefaultParser struct {
	Log *zap.Logger
}

type chartFile struct {
	Bpm         *float64         `json:"_beatsPerMinute"`
	BeatsPerBar *float64         `json:"_beatsPerBar"`
	Time        *float64         `json:"_time"`
	Notes       []noteRecord     `json:"_notes"`
	Obstacles   []obstacleRecord `json:"_obstacles"`
}

type noteRecord struct {
	Time         *float64 `json:"_time"`
	LineIndex    *int64   `json:"_lineIndex"`
	LineLayer    *int64   `json:"_lineLayer"`
	Type         *int64   `json:"_type"`
	CutDirection *int64   `json:"_cutDirection"`
}

type obstacleRecord struct {
	Time      *float64 `json:"_time"`
	LineIndex *int64   `json:"_lineIndex"`
	Type      *int64   `json:"_type"`
	Duration  *float64 `json:"_duration"`
	Width     *int64   `json:"_width"`
}

type infoFile struct {
	DifficultyLevels []struct {
		Difficulty string `json:"difficulty"`
		AudioPath  string `json:"audioPath"`
	} `json:"difficultyLevels"`
}

func (p *DefaultParser) log() *zap.Logger {
	if nil == p.Log {
		return zap.NewNop()
	}
	return p.Log
}

// Parse reads a chart and its companion info.json. All times in the returned
// chart are in milliseconds.
func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	start := time.Now()

	var raw chartFile
	if err := readJSON(file, &raw); nil != err {
		return nil, err
	}

	if nil == raw.Bpm {
		return nil, &ChartParseError{Path: file, Field: "_beatsPerMinute", Err: errMissing}
	}
	if *raw.Bpm <= 0 || math.IsNaN(*raw.Bpm) || math.IsInf(*raw.Bpm, 0) {
		return nil, &ChartParseError{Path: file, Field: "_beatsPerMinute", Err: fmt.Errorf("invalid tempo %v", *raw.Bpm)}
	}
	if nil == raw.BeatsPerBar {
		return nil, &ChartParseError{Path: file, Field: "_beatsPerBar", Err: errMissing}
	}

	difficulty := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	audioFile, err := p.audioFile(InfoPath(file), difficulty)
	if nil != err {
		return nil, err
	}

	chart := &game.Chart{
		Bpm:         float32(*raw.Bpm),
		BeatsPerBar: float32(*raw.BeatsPerBar),
		AudioFile:   audioFile,
		Difficulty:  game.NewDifficulty(difficulty),
		Notes:       make([]game.NoteSpec, 0, len(raw.Notes)),
		Obstacles:   make([]game.ObstacleSpec, 0, len(raw.Obstacles)),
	}
	if nil != raw.Time {
		chart.OffsetMs = int32(*raw.Time)
	}

	for i, n := range raw.Notes {
		note, err := p.note(file, i, n, chart.Bpm)
		if nil != err {
			return nil, err
		}
		chart.Notes = append(chart.Notes, note)
	}
	for i, o := range raw.Obstacles {
		obstacle, err := p.obstacle(file, i, o, chart.Bpm)
		if nil != err {
			return nil, err
		}
		chart.Obstacles = append(chart.Obstacles, obstacle)
	}

	p.log().Info("parsed chart",
		zap.String("path", file),
		zap.Int("notes", len(chart.Notes)),
		zap.Int("obstacles", len(chart.Obstacles)),
		zap.Duration("took", time.Since(start)),
	)
	return chart, nil
}

func (p *DefaultParser) note(file string, i int, n noteRecord, bpm float32) (game.NoteSpec, error) {
	field := func(name string) string {
		return fmt.Sprintf("_notes[%d].%s", i, name)
	}
	switch {
	case nil == n.Time:
		return game.NoteSpec{}, &ChartParseError{Path: file, Field: field("_time"), Err: errMissing}
	case nil == n.LineIndex:
		return game.NoteSpec{}, &ChartParseError{Path: file, Field: field("_lineIndex"), Err: errMissing}
	case nil == n.LineLayer:
		return game.NoteSpec{}, &ChartParseError{Path: file, Field: field("_lineLayer"), Err: errMissing}
	case nil == n.Type:
		return game.NoteSpec{}, &ChartParseError{Path: file, Field: field("_type"), Err: errMissing}
	case nil == n.CutDirection:
		return game.NoteSpec{}, &ChartParseError{Path: file, Field: field("_cutDirection"), Err: errMissing}
	}
	if *n.LineIndex < 0 || *n.LineIndex > math.MaxUint8 {
		return game.NoteSpec{}, &ChartParseError{Path: file, Field: field("_lineIndex"), Err: fmt.Errorf("out of range: %d", *n.LineIndex)}
	}
	if *n.LineLayer < 0 || *n.LineLayer > math.MaxUint8 {
		return game.NoteSpec{}, &ChartParseError{Path: file, Field: field("_lineLayer"), Err: fmt.Errorf("out of range: %d", *n.LineLayer)}
	}

	kind, ok := game.NoteKindFromCode(*n.Type)
	if !ok {
		p.log().Warn("unknown note type, using default",
			zap.Int("note", i), zap.Int64("type", *n.Type), zap.Stringer("default", kind))
	}
	dir, ok := game.CutDirectionFromCode(*n.CutDirection)
	if !ok {
		p.log().Warn("unknown cut direction, using default",
			zap.Int("note", i), zap.Int64("direction", *n.CutDirection), zap.Stringer("default", dir))
	}

	return game.NoteSpec{
		LineLayer:    uint8(*n.LineLayer),
		LineIndex:    uint8(*n.LineIndex),
		Kind:         kind,
		TimeMs:       game.BeatsToMs(*n.Time, bpm),
		CutDirection: dir,
	}, nil
}

func (p *DefaultParser) obstacle(file string, i int, o obstacleRecord, bpm float32) (game.ObstacleSpec, error) {
	field := func(name string) string {
		return fmt.Sprintf("_obstacles[%d].%s", i, name)
	}
	switch {
	case nil == o.Time:
		return game.ObstacleSpec{}, &ChartParseError{Path: file, Field: field("_time"), Err: errMissing}
	case nil == o.LineIndex:
		return game.ObstacleSpec{}, &ChartParseError{Path: file, Field: field("_lineIndex"), Err: errMissing}
	case nil == o.Type:
		return game.ObstacleSpec{}, &ChartParseError{Path: file, Field: field("_type"), Err: errMissing}
	case nil == o.Duration:
		return game.ObstacleSpec{}, &ChartParseError{Path: file, Field: field("_duration"), Err: errMissing}
	case nil == o.Width:
		return game.ObstacleSpec{}, &ChartParseError{Path: file, Field: field("_width"), Err: errMissing}
	}

	kind, ok := game.ObstacleKindFromCode(*o.Type)
	if !ok {
		p.log().Warn("unknown obstacle type, using default",
			zap.Int("obstacle", i), zap.Int64("type", *o.Type), zap.Stringer("default", kind))
	}

	return game.ObstacleSpec{
		LineIndex:  int32(*o.LineIndex),
		Kind:       kind,
		WidthUnits: int32(*o.Width),
		TimeMs:     game.BeatsToMs(*o.Time, bpm),
		DurationMs: game.BeatsToMs(*o.Duration, bpm),
	}, nil
}

// audioFile picks the audio path of the matching difficulty level, or the
// first level when none matches.
func (p *DefaultParser) audioFile(file, difficulty string) (string, error) {
	var info infoFile
	if err := readJSON(file, &info); nil != err {
		return "", err
	}
	if len(info.DifficultyLevels) == 0 {
		return "", &ChartParseError{Path: file, Field: "difficultyLevels", Err: errMissing}
	}

	level := info.DifficultyLevels[0]
	for _, l := range info.DifficultyLevels {
		if l.Difficulty == difficulty {
			level = l
			break
		}
	}
	if level.AudioPath == "" {
		return "", &ChartParseError{Path: file, Field: "difficultyLevels.audioPath", Err: errMissing}
	}
	return level.AudioPath, nil
}

func readJSON(file string, v interface{}) error {
	data, err := os.ReadFile(file)
	if nil != err {
		return &ChartParseError{Path: file, Err: err}
	}
	if err := json.Unmarshal(data, v); nil != err {
		return &ChartParseError{Path: file, Err: err}
	}
	return nil
}
