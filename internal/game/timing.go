package game

// MsPerBeat is the length of one beat at the given tempo.
func MsPerBeat(bpm float32) float32 {
	return 60000 / bpm
}

// BeatsToMs converts a chart time in beats to milliseconds.
func BeatsToMs(beats float64, bpm float32) float32 {
	return float32(beats * 60000 / float64(bpm))
}
