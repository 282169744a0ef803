package strategy

import (
	"math/rand"
	"time"

	"github.com/pcatattacks/santorini/internal/board"
)

// Random places workers on uniformly-random unoccupied cells and picks a
// uniformly-random legal play, including any winning play in the set.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy seeded from the current time, in the
// same spirit as the teacher's GenerateRandomName seeding.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *Random) GetPlacements(b *board.Board, color string) [2]board.Position {
	rows, cols := b.Dimensions()
	return randomPlacements(s.rng, b, rows, cols)
}

func randomPlacements(rng *rand.Rand, b *board.Board, rows, cols int) [2]board.Position {
	var placements [2]board.Position
	for i := 0; i < 2; {
		pos := board.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		if b.HasWorker(pos.Row, pos.Col) {
			continue
		}
		if i == 1 && placements[0] == pos {
			continue
		}
		placements[i] = pos
		i++
	}
	return placements
}

func (s *Random) GetPlay(b *board.Board, color string) (Play, bool) {
	plays := GetLegalPlays(b, color)
	if len(plays) == 0 {
		return Play{}, false
	}
	return plays[s.rng.Intn(len(plays))], true
}
