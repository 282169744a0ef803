// Package strategy enumerates legal Santorini plays and selects one,
// driving both the AI players and the test harness's cheating variant.
package strategy

import (
	"github.com/pcatattacks/santorini/internal/board"
	"github.com/pcatattacks/santorini/internal/rules"
)

// Play is a move, optionally followed by a build. A single direction is a
// terminating win.
type Play struct {
	Worker board.WorkerID
	Dirs   []board.Direction
}

// IsWin reports whether the play is a single-direction winning move.
func (p Play) IsWin() bool { return len(p.Dirs) == 1 }

// Strategy picks placements and plays for one color.
type Strategy interface {
	// GetPlacements returns the two positions at which to place color's
	// workers, given the board as it stands before placement.
	GetPlacements(b *board.Board, color string) [2]board.Position
	// GetPlay returns a play for color on b, or (zero Play, false) if no
	// legal play exists (a forfeit).
	GetPlay(b *board.Board, color string) (Play, bool)
}

// opponentColor returns the other color.
func opponentColor(color string) string {
	if color == board.Colors[0] {
		return board.Colors[1]
	}
	return board.Colors[0]
}

// GetLegalPlays enumerates every legal play available to color on b. It
// never deep-copies the board: each candidate move is applied, probed,
// and undone in place.
func GetLegalPlays(b *board.Board, color string) []Play {
	workers := board.WorkersOf(color)
	var plays []Play

	for _, w := range workers {
		if _, _, ok := b.WorkerPosition(w); !ok {
			continue
		}
		for _, moveDir := range board.Directions {
			if !rules.IsValidMove(b, w, moveDir) {
				continue
			}
			if rules.IsWinningMove(b, w, moveDir) {
				plays = append(plays, Play{Worker: w, Dirs: []board.Direction{moveDir}})
				continue
			}
			if err := b.Move(w, moveDir); err != nil {
				continue
			}
			for _, buildDir := range board.Directions {
				if rules.IsValidBuild(b, w, buildDir) {
					plays = append(plays, Play{Worker: w, Dirs: []board.Direction{moveDir, buildDir}})
				}
			}
			_ = b.Move(w, board.OppositeDirection(moveDir))
		}
	}
	return plays
}

// Apply executes play on b: the move, then the build if there is one.
// Callers are responsible for undoing it with Undo when done.
func Apply(b *board.Board, play Play) {
	_ = b.Move(play.Worker, play.Dirs[0])
	if len(play.Dirs) == 2 {
		_ = b.Build(play.Worker, play.Dirs[1])
	}
}

// Undo reverses Apply.
func Undo(b *board.Board, play Play) {
	if len(play.Dirs) == 2 {
		_ = b.UndoBuild(play.Worker, play.Dirs[1])
	}
	_ = b.Move(play.Worker, board.OppositeDirection(play.Dirs[0]))
}

func apply(b *board.Board, play Play) { Apply(b, play) }
func undo(b *board.Board, play Play)  { Undo(b, play) }
