package score

import (
	"git.lost.host/meutraa/beatxr/internal/ecs"
	"git.lost.host/meutraa/beatxr/internal/game"
)

// Session counts what left the playfield during one run.
type Session struct {
	Notes     int64 // notes that passed the trigger plane
	Mines     int64 // mines that passed behind the player
	Obstacles int64 // obstacles whose trailing edge cleared
}

// Tally counts the entities about to be destroyed by their gameplay tag.
// It has to run before the entities are destroyed.
func (s *Session) Tally(world *ecs.World, entities []ecs.Entity) {
	for _, e := range entities {
		if n, ok := world.Notes.Get(e); ok {
			if n.Kind == game.Mine {
				s.Mines++
			} else {
				s.Notes++
			}
			continue
		}
		if world.Obstacles.Has(e) {
			s.Obstacles++
		}
	}
}

func (s Session) Total() int64 {
	return s.Notes + s.Mines + s.Obstacles
}
