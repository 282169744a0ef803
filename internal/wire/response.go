package wire

import (
	"encoding/json"
	"fmt"

	"github.com/pcatattacks/santorini/internal/board"
)

// PlacementPair is the wire shape of a Place response: [[r,c],[r,c]].
type PlacementPair [2]board.Position

// PlayMsg is the wire shape of a Play response: [worker, [dir, ...]], or
// an empty array when the player has no legal play (a forfeit).
type PlayMsg struct {
	Worker board.WorkerID
	Dirs   []board.Direction
	Empty  bool
}

func NewPlayMsg(worker board.WorkerID, dirs []board.Direction) PlayMsg {
	return PlayMsg{Worker: worker, Dirs: dirs}
}

func EmptyPlayMsg() PlayMsg { return PlayMsg{Empty: true} }

func (p PlayMsg) MarshalJSON() ([]byte, error) {
	if p.Empty {
		return json.Marshal([]board.Direction{})
	}
	dirs := make([]string, len(p.Dirs))
	for i, d := range p.Dirs {
		dirs[i] = string(d)
	}
	return json.Marshal([]interface{}{string(p.Worker), dirs})
}

func (p *PlayMsg) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("wire: play response must be a JSON array: %w", err)
	}
	if len(raw) == 0 {
		*p = PlayMsg{Empty: true}
		return nil
	}
	if len(raw) != 2 {
		return fmt.Errorf("wire: play response must have 0 or 2 elements")
	}
	var worker string
	if err := json.Unmarshal(raw[0], &worker); err != nil {
		return fmt.Errorf("wire: play response worker: %w", err)
	}
	var dirs []string
	if err := json.Unmarshal(raw[1], &dirs); err != nil {
		return fmt.Errorf("wire: play response directions: %w", err)
	}
	directions := make([]board.Direction, len(dirs))
	for i, d := range dirs {
		directions[i] = board.Direction(d)
	}
	*p = PlayMsg{Worker: board.WorkerID(worker), Dirs: directions}
	return nil
}
