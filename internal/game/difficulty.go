package game

type Difficulty struct {
	Name string // Also the chart file name without extension
	Rank int
}

var DifficultyRanks = map[string]int{
	"Easy":       1,
	"Normal":     2,
	"Hard":       3,
	"Expert":     4,
	"ExpertPlus": 5,
}

func NewDifficulty(name string) Difficulty {
	return Difficulty{Name: name, Rank: DifficultyRanks[name]}
}
