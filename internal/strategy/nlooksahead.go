package strategy

import (
	"math/rand"
	"time"

	"github.com/pcatattacks/santorini/internal/board"
)

// NLooksAhead rejects any play after which the opponent can force a win
// within N alternating plies, otherwise plays a uniformly-random survivor,
// preferring an immediate win.
type NLooksAhead struct {
	N   int
	rng *rand.Rand
}

// NewNLooksAhead builds an NLooksAhead strategy. n must be >= 1.
func NewNLooksAhead(n int) *NLooksAhead {
	if n < 1 {
		n = 1
	}
	return &NLooksAhead{N: n, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *NLooksAhead) GetPlacements(b *board.Board, color string) [2]board.Position {
	rows, cols := b.Dimensions()
	return randomPlacements(s.rng, b, rows, cols)
}

func (s *NLooksAhead) GetPlay(b *board.Board, color string) (Play, bool) {
	plays := SurvivingPlays(b, color, s.N)
	if len(plays) == 0 {
		return Play{}, false
	}
	for _, p := range plays {
		if p.IsWin() {
			return p, true
		}
	}
	return plays[s.rng.Intn(len(plays))], true
}

// SurvivingPlays returns every legal play for color that does not let the
// opponent force a win within n alternating plies.
func SurvivingPlays(b *board.Board, color string, n int) []Play {
	var result []Play
	for _, play := range GetLegalPlays(b, color) {
		if survives(b, color, play, n) {
			result = append(result, play)
		}
	}
	return result
}

// survives reports whether playing p is safe for color: it is an
// immediate win, or the opponent cannot force a loss on color within the
// remaining n-1 plies of look-ahead.
func survives(b *board.Board, color string, p Play, n int) bool {
	if p.IsWin() {
		return true
	}
	apply(b, p)
	lost := opponentForcesLoss(b, opponentColor(color), color, n-1)
	undo(b, p)
	return !lost
}

// opponentForcesLoss reports whether mover, playing optimally against
// perspective for up to plies further alternating half-moves (starting
// with mover's own turn right now), can force perspective into a loss:
// either an immediate win for mover, or a line where every escape
// perspective tries still loses within the remaining budget.
func opponentForcesLoss(b *board.Board, mover, perspective string, plies int) bool {
	moverPlays := GetLegalPlays(b, mover)
	if len(moverPlays) == 0 {
		// mover is stalemated: no forced win down this line.
		return false
	}
	for _, mp := range moverPlays {
		if mp.IsWin() {
			return true
		}
	}
	if plies <= 0 {
		return false
	}
	for _, mp := range moverPlays {
		apply(b, mp)
		forced := forcesPerspectiveLoss(b, mover, perspective, plies)
		undo(b, mp)
		if forced {
			return true
		}
	}
	return false
}

// forcesPerspectiveLoss reports whether, with perspective now to move,
// every one of perspective's replies still loses to mover within the
// remaining budget.
func forcesPerspectiveLoss(b *board.Board, mover, perspective string, plies int) bool {
	perspectivePlays := GetLegalPlays(b, perspective)
	if len(perspectivePlays) == 0 {
		// perspective is stalemated: a forfeit, a win for mover.
		return true
	}
	for _, pp := range perspectivePlays {
		if pp.IsWin() {
			return false // perspective escapes by winning outright
		}
		apply(b, pp)
		stillForced := opponentForcesLoss(b, mover, perspective, plies-1)
		undo(b, pp)
		if !stillForced {
			return false
		}
	}
	return true
}
