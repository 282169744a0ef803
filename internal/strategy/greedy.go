package strategy

import (
	"math/rand"
	"time"

	"github.com/pcatattacks/santorini/internal/board"
)

// Greedy scores the board reached by each candidate play with a one-step
// heuristic and plays the argmax, preferring any immediate win.
type Greedy struct {
	rng *rand.Rand
}

func NewGreedy() *Greedy {
	return &Greedy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *Greedy) GetPlacements(b *board.Board, color string) [2]board.Position {
	rows, cols := b.Dimensions()
	return randomPlacements(s.rng, b, rows, cols)
}

func (s *Greedy) GetPlay(b *board.Board, color string) (Play, bool) {
	plays := GetLegalPlays(b, color)
	if len(plays) == 0 {
		return Play{}, false
	}

	var best Play
	bestScore := 0
	haveBest := false

	for _, p := range plays {
		if p.IsWin() {
			return p, true
		}
		apply(b, p)
		score := greedyScore(b, p.Worker)
		undo(b, p)
		if !haveBest || score > bestScore {
			best = p
			bestScore = score
			haveBest = true
		}
	}
	return best, true
}

// greedyScore weighs a worker's own height heavily and rewards climbable
// terrain around it: worker height x5 plus the sum of adjacent heights.
func greedyScore(b *board.Board, w board.WorkerID) int {
	_, height, ok := b.WorkerPosition(w)
	if !ok {
		return 0
	}
	score := height * 5
	for _, d := range board.Directions {
		if h, ok := b.GetHeight(w, d); ok {
			score += h
		}
	}
	return score
}
