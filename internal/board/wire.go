package board

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a cell per spec.md §6: a bare height for an empty
// cell, or a two-element [height, "worker-id"] list for an occupied one.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.Occupied() {
		return json.Marshal(c.Height)
	}
	return json.Marshal([]interface{}{c.Height, string(c.Worker)})
}

// UnmarshalJSON accepts either a bare int height or a [height, worker] pair.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var height int
	if err := json.Unmarshal(data, &height); err == nil {
		*c = Cell{Height: height}
		return nil
	}
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("board: cell must be an int or [height, worker]: %w", err)
	}
	if err := json.Unmarshal(pair[0], &height); err != nil {
		return fmt.Errorf("board: cell height must be an int: %w", err)
	}
	var worker string
	if err := json.Unmarshal(pair[1], &worker); err != nil {
		return fmt.Errorf("board: cell worker must be a string: %w", err)
	}
	*c = Cell{Height: height, Worker: WorkerID(worker)}
	return nil
}
