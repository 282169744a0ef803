package strategy

import (
	"math"
	"math/rand"
	"time"

	"github.com/pcatattacks/santorini/internal/board"
)

// Smart places workers away from the opponent and plays a depth-limited
// minimax search scored by a height/mobility heuristic, with terminal
// wins and losses weighted to dominate the heuristic.
type Smart struct {
	LookAhead int
	rng       *rand.Rand
}

// NewSmart builds a Smart strategy searching lookAhead plies deep.
func NewSmart(lookAhead int) *Smart {
	if lookAhead < 1 {
		lookAhead = 1
	}
	return &Smart{LookAhead: lookAhead, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

const terminalWeight = 161.0

func (s *Smart) GetPlacements(b *board.Board, color string) [2]board.Position {
	opp := opponentColor(color)
	oppWorkers := board.WorkersOf(opp)
	rows, _ := b.Dimensions()

	if _, _, ok := b.WorkerPosition(oppWorkers[0]); !ok {
		mid := rows / 2
		return [2]board.Position{{Row: mid, Col: 0}, {Row: mid + 1, Col: 0}}
	}
	return s.placeAwayFrom(b, oppWorkers)
}

func (s *Smart) placeAwayFrom(b *board.Board, oppWorkers [2]board.WorkerID) [2]board.Position {
	rows, cols := b.Dimensions()
	p1, _, _ := b.WorkerPosition(oppWorkers[0])
	p2, _, _ := b.WorkerPosition(oppWorkers[1])

	type candidate struct {
		pos  board.Position
		dist float64
	}
	var candidates []candidate
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if b.HasWorker(r, c) {
				continue
			}
			d := euclidean(r, c, p1) + euclidean(r, c, p2)
			candidates = append(candidates, candidate{board.Position{Row: r, Col: c}, d})
		}
	}
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].dist > candidates[i].dist {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
	}
	return [2]board.Position{candidates[0].pos, candidates[1].pos}
}

func euclidean(row, col int, p board.Position) float64 {
	dr := float64(row - p.Row)
	dc := float64(col - p.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

func (s *Smart) GetPlay(b *board.Board, color string) (Play, bool) {
	plays := GetLegalPlays(b, color)
	if len(plays) == 0 {
		return Play{}, false
	}
	for _, p := range plays {
		if p.IsWin() {
			return p, true
		}
	}

	opp := opponentColor(color)
	best := plays[0]
	bestScore := math.Inf(-1)
	for _, p := range plays {
		apply(b, p)
		score := minimax(b, opp, color, s.LookAhead-1)
		undo(b, p)
		if score > bestScore {
			best = p
			bestScore = score
		}
	}
	return best, true
}

// minimax evaluates the position from perspective's point of view, with
// toMove about to play. Terminal positions (a stalemate, or an available
// win) resolve immediately, weighted by terminalWeight; otherwise the
// search bottoms out at depth 0 in the static heuristic.
func minimax(b *board.Board, toMove, perspective string, depth int) float64 {
	plays := GetLegalPlays(b, toMove)
	if len(plays) == 0 {
		if toMove == perspective {
			return -terminalWeight
		}
		return terminalWeight
	}
	for _, p := range plays {
		if p.IsWin() {
			if toMove == perspective {
				return terminalWeight
			}
			return -terminalWeight
		}
	}
	if depth <= 0 {
		return scoreBoard(b, perspective)
	}

	next := opponentColor(toMove)
	if toMove == perspective {
		best := math.Inf(-1)
		for _, p := range plays {
			apply(b, p)
			v := minimax(b, next, perspective, depth-1)
			undo(b, p)
			if v > best {
				best = v
			}
		}
		return best
	}

	worst := math.Inf(1)
	for _, p := range plays {
		apply(b, p)
		v := minimax(b, next, perspective, depth-1)
		undo(b, p)
		if v < worst {
			worst = v
		}
	}
	return worst
}

// scoreBoard returns own(b, color) - own(b, opponent).
func scoreBoard(b *board.Board, color string) float64 {
	return ownScore(b, color) - ownScore(b, opponentColor(color))
}

// ownScore weighs worker height heavily, rewards adjacent climbable
// terrain, and penalizes occupied neighbors (less room to maneuver).
func ownScore(b *board.Board, color string) float64 {
	score := 0.0
	for _, w := range board.WorkersOf(color) {
		_, height, ok := b.WorkerPosition(w)
		if !ok {
			continue
		}
		score += float64(height) * 16

		for _, d := range board.Directions {
			adjHeight, ok := b.GetHeight(w, d)
			if ok && adjHeight != board.MaxHeight {
				climb := adjHeight - height
				score += float64(adjHeight)*2 + float64(climb)
			}
			if occupied, ok := b.IsOccupied(w, d); ok && occupied {
				score -= 1
			}
		}
	}
	return score
}
