package game

// Chart is one parsed difficulty of a song. It is not modified after parsing.
type Chart struct {
	Notes       []NoteSpec
	Obstacles   []ObstacleSpec
	Bpm         float32
	BeatsPerBar float32
	OffsetMs    int32
	AudioFile   string // Relative to the song directory

	Difficulty Difficulty
}

func (c *Chart) NoteCount() (notes, mines int) {
	for _, n := range c.Notes {
		if n.Kind == Mine {
			mines++
		} else {
			notes++
		}
	}
	return notes, mines
}

// LastMs is the time at which the last note is hit or the last obstacle clears.
func (c *Chart) LastMs() float32 {
	last := float32(0)
	for _, n := range c.Notes {
		if n.TimeMs > last {
			last = n.TimeMs
		}
	}
	for _, o := range c.Obstacles {
		if end := o.TimeMs + o.DurationMs; end > last {
			last = end
		}
	}
	return last
}
