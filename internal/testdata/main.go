// Package testdata holds small songs for tests.
package testdata

import (
	"os"
	"path/filepath"
)

const Song = "Test Song"

// Chart has one note of each kind, one wall and one ceiling at 120 bpm,
// so one beat is 500ms.
const Chart = `{
	"_version": "1.5.0",
	"_beatsPerMinute": 120,
	"_beatsPerBar": 4,
	"_time": 0,
	"_notes": [
		{"_time": 0, "_lineIndex": 0, "_lineLayer": 0, "_type": 0, "_cutDirection": 0},
		{"_time": 1, "_lineIndex": 3, "_lineLayer": 2, "_type": 1, "_cutDirection": 3},
		{"_time": 2, "_lineIndex": 1, "_lineLayer": 1, "_type": 3, "_cutDirection": 8}
	],
	"_obstacles": [
		{"_time": 4, "_lineIndex": 0, "_type": 0, "_duration": 2, "_width": 1},
		{"_time": 6, "_lineIndex": 0, "_type": 1, "_duration": 1, "_width": 4}
	]
}`

// SingleNote is one red note at time zero cut from the top.
const SingleNote = `{
	"_beatsPerMinute": 100,
	"_beatsPerBar": 4,
	"_notes": [
		{"_time": 0, "_lineIndex": 0, "_lineLayer": 0, "_type": 0, "_cutDirection": 0}
	],
	"_obstacles": []
}`

const Info = `{
	"songName": "Test Song",
	"beatsPerMinute": 120,
	"difficultyLevels": [
		{"difficulty": "Hard", "difficultyRank": 3, "audioPath": "hard.ogg", "jsonPath": "Hard.json"},
		{"difficulty": "Expert", "difficultyRank": 4, "audioPath": "song.ogg", "jsonPath": "Expert.json"}
	]
}`

// WriteSong lays out <root>/<Song>/<difficulty>.json and info.json and
// returns the chart path.
func WriteSong(root, difficulty, chart, info string) (string, error) {
	dir := filepath.Join(root, Song)
	if err := os.MkdirAll(dir, 0o755); nil != err {
		return "", err
	}
	chartPath := filepath.Join(dir, difficulty+".json")
	if err := os.WriteFile(chartPath, []byte(chart), 0o644); nil != err {
		return "", err
	}
	if info != "" {
		if err := os.WriteFile(filepath.Join(dir, "info.json"), []byte(info), 0o644); nil != err {
			return "", err
		}
	}
	return chartPath, nil
}
