// Package player implements the Fresh→Registered→Placed interaction
// protocol shared by every Player in a match, and LocalPlayer: a
// strategy-driven player that validates boards handed to it before
// trusting them.
package player

import (
	"github.com/pcatattacks/santorini/internal/board"
	"github.com/pcatattacks/santorini/internal/strategy"
)

// Player is the capability set the Referee drives. LocalPlayer and
// proxyplayer.ProxyPlayer both implement it; the Referee never
// distinguishes between the two.
type Player interface {
	Register() (string, error)
	Place(grid board.Grid, color string) ([2]board.Position, error)
	Play(grid board.Grid) (strategy.Play, bool, error)
	Notify(winnerName string) error
	GetName() string
}

func opponentColor(color string) string {
	if color == board.Colors[0] {
		return board.Colors[1]
	}
	return board.Colors[0]
}
