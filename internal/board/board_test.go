package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultDimensions(t *testing.T) {
	b := NewDefault()
	rows, cols := b.Dimensions()
	assert.Equal(t, DefaultRows, rows)
	assert.Equal(t, DefaultCols, cols)
}

func TestPlaceWorkerAndWorkerPosition(t *testing.T) {
	b := NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, Blue1))

	pos, height, ok := b.WorkerPosition(Blue1)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 2, Col: 2}, pos)
	assert.Equal(t, 0, height)

	_, _, ok = b.WorkerPosition(Blue2)
	assert.False(t, ok)
}

func TestPlaceWorkerRejectsOccupiedCell(t *testing.T) {
	b := NewDefault()
	require.NoError(t, b.PlaceWorker(0, 0, Blue1))
	err := b.PlaceWorker(0, 0, White1)
	assert.Error(t, err)
}

func TestMoveUpdatesIndexAndHeights(t *testing.T) {
	b := NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, Blue1))
	require.NoError(t, b.Build(Blue1, N))

	require.NoError(t, b.Move(Blue1, N))

	pos, height, ok := b.WorkerPosition(Blue1)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 1, Col: 2}, pos)
	assert.Equal(t, 1, height)
	assert.False(t, b.HasWorker(2, 2))
}

func TestBuildUndoBuildRoundTrip(t *testing.T) {
	b := NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, Blue1))
	require.NoError(t, b.Build(Blue1, E))
	h, ok := b.GetHeight(Blue1, E)
	require.True(t, ok)
	assert.Equal(t, 1, h)

	require.NoError(t, b.UndoBuild(Blue1, E))
	h, ok = b.GetHeight(Blue1, E)
	require.True(t, ok)
	assert.Equal(t, 0, h)
}

func TestNeighboringCellExistsAtEdge(t *testing.T) {
	b := NewDefault()
	require.NoError(t, b.PlaceWorker(0, 0, Blue1))
	assert.False(t, b.NeighboringCellExists(Blue1, N))
	assert.False(t, b.NeighboringCellExists(Blue1, W))
	assert.True(t, b.NeighboringCellExists(Blue1, E))
	assert.True(t, b.NeighboringCellExists(Blue1, S))
}

func TestOppositeDirection(t *testing.T) {
	cases := map[Direction]Direction{
		N: S, S: N, E: W, W: E,
		NE: SW, SW: NE, NW: SE, SE: NW,
	}
	for d, want := range cases {
		assert.Equal(t, want, OppositeDirection(d))
	}
}

func TestSetBoardRebuildsIndex(t *testing.T) {
	b := NewDefault()
	grid := b.Grid()
	grid[1][1] = Cell{Height: 2, Worker: White1}
	grid[3][3] = Cell{Height: 1}

	require.NoError(t, b.SetBoard(grid))

	pos, height, ok := b.WorkerPosition(White1)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 1, Col: 1}, pos)
	assert.Equal(t, 2, height)
}

func TestSetBoardRejectsWrongDimensions(t *testing.T) {
	b := NewDefault()
	err := b.SetBoard(Grid{{Cell{}}})
	assert.Error(t, err)
}

func TestEqualAndClone(t *testing.T) {
	b := NewDefault()
	require.NoError(t, b.PlaceWorker(2, 2, Blue1))
	clone := b.Clone()
	assert.True(t, b.Equal(clone))

	require.NoError(t, clone.Build(Blue1, N))
	assert.False(t, b.Equal(clone))
}

func TestCellJSONRoundTrip(t *testing.T) {
	empty := Cell{Height: 2}
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))

	var back Cell
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, empty, back)

	occupied := Cell{Height: 1, Worker: Blue1}
	data, err = json.Marshal(occupied)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, "blue1"]`, string(data))

	var backOccupied Cell
	require.NoError(t, json.Unmarshal(data, &backOccupied))
	assert.Equal(t, occupied, backOccupied)
}

func TestColorOfAndWorkersOf(t *testing.T) {
	assert.Equal(t, "blue", ColorOf(Blue1))
	assert.Equal(t, "blue", ColorOf(Blue2))
	assert.Equal(t, "white", ColorOf(White1))
	assert.Equal(t, [2]WorkerID{Blue1, Blue2}, WorkersOf("blue"))
}
