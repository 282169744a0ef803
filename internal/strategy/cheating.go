package strategy

import (
	"math/rand"
	"time"

	"github.com/pcatattacks/santorini/internal/board"
)

// Cheating deliberately returns illegal placements and plays, so the
// Referee's forfeit path and the LocalPlayer's cheater-detection can be
// exercised without relying on a misbehaving remote process.
type Cheating struct {
	rng *rand.Rand
}

func NewCheating() *Cheating {
	return &Cheating{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// GetPlacements returns the same cell twice, an always-illegal placement.
func (s *Cheating) GetPlacements(b *board.Board, color string) [2]board.Position {
	rows, cols := b.Dimensions()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !b.HasWorker(r, c) {
				return [2]board.Position{{Row: r, Col: c}, {Row: r, Col: c}}
			}
		}
	}
	return [2]board.Position{}
}

// GetPlay returns a play that moves a worker in a direction with no
// neighboring cell, or else a three-direction play, so it is always
// rejected by RuleChecker.
func (s *Cheating) GetPlay(b *board.Board, color string) (Play, bool) {
	for _, w := range board.WorkersOf(color) {
		if _, _, ok := b.WorkerPosition(w); !ok {
			continue
		}
		for _, d := range board.Directions {
			if !b.NeighboringCellExists(w, d) {
				return Play{Worker: w, Dirs: []board.Direction{d}}, true
			}
		}
		return Play{Worker: w, Dirs: []board.Direction{board.N, board.N, board.N}}, true
	}
	return Play{}, false
}
