package parser

import (
	"fmt"
	"path/filepath"

	"git.lost.host/meutraa/beatxr/internal/game"
)

type Parser interface {
	Parse(file string) (*game.Chart, error)
}

// ChartPath resolves the chart file for a song difficulty inside the songs directory.
func ChartPath(songsDir, song, difficulty string) string {
	return filepath.Join(songsDir, song, difficulty+".json")
}

// InfoPath is the song metadata file sitting next to a chart.
func InfoPath(chartFile string) string {
	return filepath.Join(filepath.Dir(chartFile), "info.json")
}

// ChartParseError is returned for a chart or info file that is unreadable,
// malformed, or missing a required field.
type ChartParseError struct {
	Path  string
	Field string
	Err   error
}

func (e *ChartParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unable to parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("unable to parse %s: %s: %v", e.Path, e.Field, e.Err)
}

func (e *ChartParseError) Unwrap() error {
	return e.Err
}
