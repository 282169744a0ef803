// Package rules implements the pure Santorini legality predicates over a
// board.Board. Nothing in this package holds state; every function takes
// the board (and any other values) it needs and returns an answer.
package rules

import (
	"github.com/pcatattacks/santorini/internal/board"
)

// IsValidWorker reports whether w is one of the four recognized tags.
func IsValidWorker(w board.WorkerID) bool {
	for _, known := range board.Workers {
		if known == w {
			return true
		}
	}
	return false
}

// IsValidDirection reports whether d is one of the eight compass keys.
func IsValidDirection(d board.Direction) bool {
	for _, known := range board.Directions {
		if known == d {
			return true
		}
	}
	return false
}

// IsValidColor reports whether c is "blue" or "white".
func IsValidColor(c string) bool {
	return c == "blue" || c == "white"
}

// IsValidMove reports whether worker w can legally move in direction d:
// the neighbor exists, is unoccupied, isn't capped at height 4, and is at
// most one level above w's current height.
func IsValidMove(b *board.Board, w board.WorkerID, d board.Direction) bool {
	_, workerHeight, ok := b.WorkerPosition(w)
	if !ok {
		return false
	}
	if !b.NeighboringCellExists(w, d) {
		return false
	}
	occupied, _ := b.IsOccupied(w, d)
	if occupied {
		return false
	}
	neighborHeight, _ := b.GetHeight(w, d)
	return neighborHeight != board.MaxHeight && neighborHeight-workerHeight <= 1
}

// IsValidBuild reports whether worker w can legally build in direction d:
// the neighbor exists, is unoccupied, and isn't already capped.
func IsValidBuild(b *board.Board, w board.WorkerID, d board.Direction) bool {
	if !b.NeighboringCellExists(w, d) {
		return false
	}
	occupied, _ := b.IsOccupied(w, d)
	if occupied {
		return false
	}
	neighborHeight, _ := b.GetHeight(w, d)
	return neighborHeight != board.MaxHeight
}

// IsWinningMove reports whether moving worker w in direction d climbs onto
// a height-3 tower. The caller must already know the move is valid.
func IsWinningMove(b *board.Board, w board.WorkerID, d board.Direction) bool {
	h, ok := b.GetHeight(w, d)
	return ok && h == 3
}

// IsLegalPlay validates a full play: a single direction must be a valid,
// winning move; two directions must be a valid non-winning move followed
// by a valid build, simulated and undone on b.
func IsLegalPlay(b *board.Board, w board.WorkerID, dirs []board.Direction) bool {
	switch len(dirs) {
	case 1:
		moveDir := dirs[0]
		return IsValidMove(b, w, moveDir) && IsWinningMove(b, w, moveDir)
	case 2:
		moveDir, buildDir := dirs[0], dirs[1]
		if !IsValidMove(b, w, moveDir) || IsWinningMove(b, w, moveDir) {
			return false
		}
		if err := b.Move(w, moveDir); err != nil {
			return false
		}
		ok := IsValidBuild(b, w, buildDir)
		_ = b.Move(w, board.OppositeDirection(moveDir))
		return ok
	default:
		return false
	}
}

// IsLegalBoard checks the structural invariants of a board: every cell
// height is within [0, maxHeight]; towers carrying a worker are capped at
// min(maxHeight, 2); every worker-id appears at most once; and, counting
// seen workers plus unset (not-yet-placed) ones together, the total is 2
// or 4 when unset is non-empty (the other color may or may not have
// placed yet), or exactly 4 when unset is empty (every worker is on the
// board already).
func IsLegalBoard(b *board.Board, unset []board.WorkerID, maxHeight int) bool {
	rows, cols := b.Dimensions()
	grid := b.Grid()

	workerCap := maxHeight
	if workerCap > 2 {
		workerCap = 2
	}

	seen := make(map[board.WorkerID]bool)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := grid[r][c]
			if cell.Height < 0 || cell.Height > maxHeight {
				return false
			}
			if cell.Occupied() {
				if cell.Height > workerCap {
					return false
				}
				if seen[cell.Worker] {
					return false
				}
				if !IsValidWorker(cell.Worker) {
					return false
				}
				seen[cell.Worker] = true
			}
		}
	}

	total := len(seen) + len(unset)
	if len(unset) > 0 {
		return total == 2 || total == 4
	}
	return total == 4
}

// IsLegalInitialBoard reports whether b is a legal board for color to
// place onto: every cell is height 0, and color's two workers are absent.
func IsLegalInitialBoard(b *board.Board, color string) bool {
	workers := board.WorkersOf(color)
	for _, w := range workers {
		if _, _, ok := b.WorkerPosition(w); ok {
			return false
		}
	}
	return IsLegalBoard(b, []board.WorkerID{workers[0], workers[1]}, 0)
}

// IsValidPlacement checks the wire-level shape of a placement position:
// it must fall within board bounds. It does not check occupancy.
func IsValidPlacement(rows, cols int, pos board.Position) bool {
	return pos.Row >= 0 && pos.Row < rows && pos.Col >= 0 && pos.Col < cols
}

// IsValidPlay checks the wire-level shape of a play: one or two
// well-formed directions, nothing more.
func IsValidPlay(dirs []board.Direction) bool {
	if len(dirs) != 1 && len(dirs) != 2 {
		return false
	}
	for _, d := range dirs {
		if !IsValidDirection(d) {
			return false
		}
	}
	return true
}

// IsValidBoard checks the wire-level shape of a board: rectangular, every
// height within [0, maxHeight], at most one of each worker.
func IsValidBoard(grid board.Grid, maxHeight int) bool {
	if len(grid) == 0 {
		return false
	}
	cols := len(grid[0])
	if cols == 0 {
		return false
	}
	seen := make(map[board.WorkerID]bool)
	for _, row := range grid {
		if len(row) != cols {
			return false
		}
		for _, cell := range row {
			if cell.Height < 0 || cell.Height > maxHeight {
				return false
			}
			if cell.Occupied() {
				if !IsValidWorker(cell.Worker) || seen[cell.Worker] {
					return false
				}
				seen[cell.Worker] = true
			}
		}
	}
	return true
}
