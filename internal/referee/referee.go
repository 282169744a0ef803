// Package referee drives exactly one Santorini match between two Player
// values, local or proxy, holding the master Board and enforcing the
// registration → placement → alternating-play state machine.
package referee

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pcatattacks/santorini/internal/board"
	"github.com/pcatattacks/santorini/internal/player"
	"github.com/pcatattacks/santorini/internal/rules"
	"github.com/pcatattacks/santorini/internal/strategy"
	"github.com/pcatattacks/santorini/internal/tournamentlog"
)

// Referee runs one match between two players, neither of which it
// distinguishes as local or remote.
type Referee struct {
	players [2]player.Player
	turn    int
	board   *board.Board
	matchID string
}

// New builds a Referee for one match between p1 and p2.
func New(p1, p2 player.Player) *Referee {
	return &Referee{
		players: [2]player.Player{p1, p2},
		board:   board.NewDefault(),
		matchID: uuid.NewString(),
	}
}

func (r *Referee) swapTurn() { r.turn = 1 - r.turn }

// PlayGame drives registration, placement, and alternating plays to
// completion, returning the winner and whether the match ended by a
// rule violation ("cheating") rather than a clean win or stalemate.
func (r *Referee) PlayGame() (player.Player, bool) {
	for _, p := range r.players {
		name, err := p.Register()
		if err != nil {
			return r.forfeit(fmt.Sprintf("register failed: %v", err))
		}
		tournamentlog.Printf("match %s: %s registered", r.matchID, name)
		r.swapTurn()
	}

	for _, p := range r.players {
		color := board.Colors[r.turn]
		placements, err := p.Place(r.board.Grid(), color)
		if err != nil {
			return r.forfeit(fmt.Sprintf("place failed: %v", err))
		}
		if err := r.applyPlacements(placements, color); err != nil {
			return r.forfeit(err.Error())
		}
		r.swapTurn()
	}

	for {
		actor := r.players[r.turn]
		play, ok, err := actor.Play(r.board.Grid())
		if err != nil {
			return r.forfeit(fmt.Sprintf("play failed: %v", err))
		}
		if !ok {
			tournamentlog.Printf("match %s: %s has no legal play", r.matchID, actor.GetName())
			return r.announceWinner(1-r.turn, false)
		}

		won, err := r.applyPlay(play)
		if err != nil {
			return r.forfeit(err.Error())
		}
		if won {
			return r.announceWinner(r.turn, false)
		}
		r.swapTurn()
	}
}

func (r *Referee) applyPlacements(placements [2]board.Position, color string) error {
	rows, cols := r.board.Dimensions()
	if placements[0] == placements[1] {
		return fmt.Errorf("duplicate placement: %v", placements[0])
	}
	for _, pos := range placements {
		if !rules.IsValidPlacement(rows, cols, pos) {
			return fmt.Errorf("placement out of bounds: %v", pos)
		}
		if r.board.HasWorker(pos.Row, pos.Col) {
			return fmt.Errorf("placement collides with existing worker: %v", pos)
		}
	}
	workers := board.WorkersOf(color)
	for i, pos := range placements {
		if err := r.board.PlaceWorker(pos.Row, pos.Col, workers[i]); err != nil {
			return fmt.Errorf("placement failed: %w", err)
		}
	}
	return nil
}

func (r *Referee) applyPlay(play strategy.Play) (bool, error) {
	color := board.Colors[r.turn]
	if board.ColorOf(play.Worker) != color {
		return false, fmt.Errorf("play by %s does not match turn color %s", play.Worker, color)
	}
	if !rules.IsValidPlay(play.Dirs) {
		return false, fmt.Errorf("malformed play directions: %v", play.Dirs)
	}
	if !rules.IsLegalPlay(r.board, play.Worker, play.Dirs) {
		return false, fmt.Errorf("illegal play: %s %v", play.Worker, play.Dirs)
	}
	if len(play.Dirs) == 1 {
		return true, nil
	}
	moveDir, buildDir := play.Dirs[0], play.Dirs[1]
	if err := r.board.Move(play.Worker, moveDir); err != nil {
		return false, err
	}
	if err := r.board.Build(play.Worker, buildDir); err != nil {
		return false, err
	}
	return false, nil
}

func (r *Referee) forfeit(reason string) (player.Player, bool) {
	winner := r.players[1-r.turn]
	tournamentlog.Printf("match %s: %s forfeits: %s", r.matchID, r.players[r.turn].GetName(), reason)
	r.notifyBoth(winner.GetName())
	return winner, true
}

func (r *Referee) announceWinner(idx int, cheating bool) (player.Player, bool) {
	winner := r.players[idx]
	r.notifyBoth(winner.GetName())
	return winner, cheating
}

func (r *Referee) notifyBoth(winnerName string) {
	for _, p := range r.players {
		_ = p.Notify(winnerName)
	}
}
