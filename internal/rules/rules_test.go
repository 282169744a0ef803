package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcatattacks/santorini/internal/board"
)

func TestIsValidWorkerDirectionColor(t *testing.T) {
	assert.True(t, IsValidWorker(board.Blue1))
	assert.False(t, IsValidWorker(board.WorkerID("purple1")))

	assert.True(t, IsValidDirection(board.NE))
	assert.False(t, IsValidDirection(board.Direction("NNE")))

	assert.True(t, IsValidColor("blue"))
	assert.True(t, IsValidColor("white"))
	assert.False(t, IsValidColor("purple"))
}

func TestIsValidMoveRejectsOccupiedAndCappedAndTooHigh(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, board.Blue1))
	require.NoError(t, b.PlaceWorker(2, 3, board.White1))

	assert.False(t, IsValidMove(b, board.Blue1, board.E), "occupied neighbor")

	b2 := board.NewDefault()
	require.NoError(t, b2.PlaceWorker(2, 2, board.Blue1))
	require.NoError(t, b2.Build(board.Blue1, board.N))
	require.NoError(t, b2.Build(board.Blue1, board.N))
	require.NoError(t, b2.Build(board.Blue1, board.N))
	require.NoError(t, b2.Build(board.Blue1, board.N))
	assert.False(t, IsValidMove(b2, board.Blue1, board.N), "capped at max height")

	b3 := board.NewDefault()
	require.NoError(t, b3.PlaceWorker(2, 2, board.Blue1))
	require.NoError(t, b3.Build(board.Blue1, board.N))
	require.NoError(t, b3.Build(board.Blue1, board.N))
	assert.False(t, IsValidMove(b3, board.Blue1, board.N), "more than one level up")

	assert.True(t, IsValidMove(b, board.Blue1, board.N))
}

func TestIsValidMoveRejectsOffBoard(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(0, 0, board.Blue1))
	assert.False(t, IsValidMove(b, board.Blue1, board.N))
}

func TestIsWinningMove(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, board.Blue1))
	require.NoError(t, b.Build(board.Blue1, board.N))
	require.NoError(t, b.Build(board.Blue1, board.N))
	require.NoError(t, b.Build(board.Blue1, board.N))

	assert.True(t, IsWinningMove(b, board.Blue1, board.N))
}

func TestIsLegalPlaySingleDirectionMustWin(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, board.Blue1))
	assert.False(t, IsLegalPlay(b, board.Blue1, []board.Direction{board.N}), "height-0 move is not a win")

	require.NoError(t, b.Build(board.Blue1, board.N))
	require.NoError(t, b.Build(board.Blue1, board.N))
	require.NoError(t, b.Build(board.Blue1, board.N))
	grid := b.Grid()
	grid[2][2].Height = 2 // blue1 stands one level below the tower
	require.NoError(t, b.SetBoard(grid))
	assert.True(t, IsLegalPlay(b, board.Blue1, []board.Direction{board.N}))
}

func TestIsLegalPlayMoveThenBuildLeavesBoardUnchanged(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, board.Blue1))
	before := b.Clone()

	assert.True(t, IsLegalPlay(b, board.Blue1, []board.Direction{board.N, board.S}))
	assert.True(t, b.Equal(before), "simulated play must be undone")
}

func TestIsLegalPlayRejectsWinningMoveWithBuild(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, board.Blue1))
	require.NoError(t, b.Build(board.Blue1, board.N))
	require.NoError(t, b.Build(board.Blue1, board.N))
	require.NoError(t, b.Build(board.Blue1, board.N))
	grid := b.Grid()
	grid[2][2].Height = 2 // blue1 stands one level below the tower
	require.NoError(t, b.SetBoard(grid))

	assert.False(t, IsLegalPlay(b, board.Blue1, []board.Direction{board.N, board.S}))
}

func TestIsLegalPlayRejectsWrongArity(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, board.Blue1))
	assert.False(t, IsLegalPlay(b, board.Blue1, nil))
	assert.False(t, IsLegalPlay(b, board.Blue1, []board.Direction{board.N, board.S, board.E}))
}

func TestIsLegalInitialBoardRequiresEmptyAndUnplaced(t *testing.T) {
	b := board.NewDefault()
	assert.True(t, IsLegalInitialBoard(b, "blue"))

	require.NoError(t, b.PlaceWorker(2, 2, board.White1))
	require.NoError(t, b.PlaceWorker(2, 3, board.White2))
	assert.True(t, IsLegalInitialBoard(b, "blue"), "opponent may already be placed")

	require.NoError(t, b.Build(board.White1, board.N))
	assert.False(t, IsLegalInitialBoard(b, "blue"), "a built tower is no longer height 0")
}

func TestIsLegalInitialBoardRejectsColorAlreadyPlaced(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(0, 0, board.Blue1))
	assert.False(t, IsLegalInitialBoard(b, "blue"))
}

func TestIsLegalBoardWorkerCap(t *testing.T) {
	b := board.NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, board.Blue1))
	require.NoError(t, b.PlaceWorker(2, 3, board.Blue2))
	require.NoError(t, b.PlaceWorker(2, 1, board.White1))
	require.NoError(t, b.PlaceWorker(3, 2, board.White2))

	assert.True(t, IsLegalBoard(b, nil, 4))

	require.NoError(t, b.Build(board.Blue1, board.N))
	require.NoError(t, b.Build(board.Blue1, board.N))
	require.NoError(t, b.Build(board.Blue1, board.N))
	grid := b.Grid()
	grid[2][2] = board.Cell{Height: 3, Worker: board.Blue1}
	require.NoError(t, b.SetBoard(grid))
	assert.False(t, IsLegalBoard(b, nil, 4), "a worker may not stand on a height above 2")
}

func TestIsValidPlacementBounds(t *testing.T) {
	assert.True(t, IsValidPlacement(5, 5, board.Position{Row: 0, Col: 0}))
	assert.True(t, IsValidPlacement(5, 5, board.Position{Row: 4, Col: 4}))
	assert.False(t, IsValidPlacement(5, 5, board.Position{Row: 5, Col: 0}))
	assert.False(t, IsValidPlacement(5, 5, board.Position{Row: 0, Col: -1}))
}

func TestIsValidPlayShape(t *testing.T) {
	assert.True(t, IsValidPlay([]board.Direction{board.N}))
	assert.True(t, IsValidPlay([]board.Direction{board.N, board.S}))
	assert.False(t, IsValidPlay(nil))
	assert.False(t, IsValidPlay([]board.Direction{board.N, board.S, board.E}))
	assert.False(t, IsValidPlay([]board.Direction{board.Direction("NNE")}))
}

func TestIsValidBoardShape(t *testing.T) {
	grid := board.Grid{
		{board.Cell{Height: 0}, board.Cell{Height: 1}},
		{board.Cell{Height: 0}, board.Cell{Height: 4, Worker: board.Blue1}},
	}
	assert.True(t, IsValidBoard(grid, 4))

	ragged := board.Grid{{board.Cell{}}, {board.Cell{}, board.Cell{}}}
	assert.False(t, IsValidBoard(ragged, 4))

	duplicate := board.Grid{
		{board.Cell{Worker: board.Blue1}, board.Cell{Worker: board.Blue1}},
	}
	assert.False(t, IsValidBoard(duplicate, 4))
}
