package score

import "time"

type Scorer interface {
	Init() error
	Deinit()

	// Save the result of this session
	Save(sum string, difficulty string, session Session) error

	// Load previous sessions for the chart, newest first
	Load(sum string) ([]History, error)
}

type History struct {
	Sum        string
	Difficulty string
	PlayedAt   time.Time
	Session
}
