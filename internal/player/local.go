package player

import (
	"fmt"

	"github.com/pcatattacks/santorini/internal/board"
	"github.com/pcatattacks/santorini/internal/rules"
	"github.com/pcatattacks/santorini/internal/strategy"
	"github.com/pcatattacks/santorini/internal/wire"
)

type state int

const (
	stateFresh state = iota
	stateRegistered
	statePlaced
)

// LocalPlayer holds its own Board replica, color, and a Strategy, and
// checks every board the Referee hands it for reachability from its own
// last-known state before trusting it.
type LocalPlayer struct {
	name     string
	strategy strategy.Strategy

	state state
	color string
	board *board.Board

	ownPlacements [2]board.Position
	justPlaced    bool
}

// NewLocalPlayer builds a LocalPlayer with the given name and strategy.
// If name is empty, a random fallback name is generated.
func NewLocalPlayer(name string, s strategy.Strategy) *LocalPlayer {
	if name == "" {
		name = GenerateRandomName()
	}
	return &LocalPlayer{name: name, strategy: s, board: board.NewDefault()}
}

func (p *LocalPlayer) Register() (string, error) {
	if p.state != stateFresh {
		return "", fmt.Errorf("%w: register called out of order", wire.ErrContractViolation)
	}
	p.state = stateRegistered
	return p.name, nil
}

func (p *LocalPlayer) Place(grid board.Grid, color string) ([2]board.Position, error) {
	if p.state != stateRegistered {
		return [2]board.Position{}, fmt.Errorf("%w: place called out of order", wire.ErrContractViolation)
	}
	if !rules.IsValidColor(color) {
		return [2]board.Position{}, fmt.Errorf("%w: invalid color %q", wire.ErrContractViolation, color)
	}
	if err := p.board.SetBoard(grid); err != nil {
		return [2]board.Position{}, fmt.Errorf("%w: %v", wire.ErrContractViolation, err)
	}
	if !rules.IsLegalInitialBoard(p.board, color) {
		return [2]board.Position{}, fmt.Errorf("%w: board is not a legal initial board for %s", wire.ErrContractViolation, color)
	}
	p.color = color
	placements := p.strategy.GetPlacements(p.board, color)
	p.ownPlacements = placements
	p.state = statePlaced
	p.justPlaced = true
	return placements, nil
}

func (p *LocalPlayer) Play(grid board.Grid) (strategy.Play, bool, error) {
	if p.state != statePlaced {
		return strategy.Play{}, false, fmt.Errorf("%w: play called out of order", wire.ErrContractViolation)
	}
	if !rules.IsValidBoard(grid, board.MaxHeight) {
		return strategy.Play{}, false, fmt.Errorf("%w: malformed board", wire.ErrContractViolation)
	}
	if !p.checkBoard(grid) {
		return strategy.Play{}, false, fmt.Errorf("%w: board unreachable from last known state", wire.ErrIllegalPlay)
	}
	if err := p.board.SetBoard(grid); err != nil {
		return strategy.Play{}, false, fmt.Errorf("%w: %v", wire.ErrContractViolation, err)
	}
	p.justPlaced = false
	play, ok := p.strategy.GetPlay(p.board, p.color)
	return play, ok, nil
}

func (p *LocalPlayer) Notify(winnerName string) error {
	if p.state != statePlaced {
		return fmt.Errorf("%w: notify called out of order", wire.ErrContractViolation)
	}
	p.state = stateFresh
	p.color = ""
	p.board = board.NewDefault()
	p.justPlaced = false
	return nil
}

func (p *LocalPlayer) GetName() string { return p.name }

// checkBoard reports whether curr is reachable in at most two plies from
// p's own last-known state: see spec items 1-2 of the cheater-detection
// algorithm.
func (p *LocalPlayer) checkBoard(curr board.Grid) bool {
	opp := opponentColor(p.color)

	if p.justPlaced {
		scratch := p.board.Clone()
		own := board.WorkersOf(p.color)
		if err := scratch.PlaceWorker(p.ownPlacements[0].Row, p.ownPlacements[0].Col, own[0]); err != nil {
			return false
		}
		if err := scratch.PlaceWorker(p.ownPlacements[1].Row, p.ownPlacements[1].Col, own[1]); err != nil {
			return false
		}
		if rules.IsLegalBoard(scratch, nil, 0) {
			// Opponent had already placed before us: the board we're
			// handed next should be one legal opponent play away.
			return checkOnePly(scratch, curr, opp)
		}
		// Opponent hasn't placed yet: the board we're handed next should
		// differ only by the opponent's two workers appearing at height 0.
		return checkAddedPlacements(scratch, curr, opp)
	}

	// A normal turn: try every own non-winning play, then every opponent
	// non-winning reply, looking for a match.
	scratch := p.board.Clone()
	for _, ownPlay := range strategy.GetLegalPlays(scratch, p.color) {
		if ownPlay.IsWin() {
			continue
		}
		strategy.Apply(scratch, ownPlay)
		match := checkOnePly(scratch, curr, opp)
		strategy.Undo(scratch, ownPlay)
		if match {
			return true
		}
	}
	return false
}

// checkOnePly reports whether curr equals the board reached by any single
// non-winning legal play by color on prev.
func checkOnePly(prev *board.Board, curr board.Grid, color string) bool {
	for _, play := range strategy.GetLegalPlays(prev, color) {
		if play.IsWin() {
			continue
		}
		strategy.Apply(prev, play)
		match := gridsEqual(prev.Grid(), curr)
		strategy.Undo(prev, play)
		if match {
			return true
		}
	}
	return false
}

// checkAddedPlacements reports whether curr differs from prev only by the
// addition of color's two workers, each at height 0, with every other
// cell (height and existing worker) unchanged.
func checkAddedPlacements(prev *board.Board, curr board.Grid, color string) bool {
	rows, cols := prev.Dimensions()
	if len(curr) != rows {
		return false
	}
	unset := map[board.WorkerID]bool{}
	for _, w := range board.WorkersOf(color) {
		unset[w] = true
	}
	prevGrid := prev.Grid()
	for r := 0; r < rows; r++ {
		if len(curr[r]) != cols {
			return false
		}
		for c := 0; c < cols; c++ {
			prevCell := prevGrid[r][c]
			currCell := curr[r][c]
			if prevCell == currCell {
				continue
			}
			if prevCell.Occupied() {
				return false // an existing worker may not change
			}
			if currCell.Height != prevCell.Height {
				return false // only a worker may be added, not a build
			}
			if !currCell.Occupied() || !unset[currCell.Worker] {
				return false
			}
			delete(unset, currCell.Worker)
		}
	}
	return len(unset) == 0
}

func gridsEqual(a, b board.Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}
