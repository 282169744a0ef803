package wire

import (
	"encoding/json"
	"fmt"

	"github.com/pcatattacks/santorini/internal/board"
)

// RequestKind tags which of the four requests a Request carries.
type RequestKind string

const (
	RequestRegister RequestKind = "Register"
	RequestPlace    RequestKind = "Place"
	RequestPlay     RequestKind = "Play"
	RequestGameOver RequestKind = "Game Over"
)

// Request is one of the four framed requests the Administrator/Referee
// side sends to a Player. Only the fields relevant to Kind are set.
type Request struct {
	Kind   RequestKind
	Color  string
	Board  board.Grid
	Winner string
}

func NewRegisterRequest() Request { return Request{Kind: RequestRegister} }

func NewPlaceRequest(color string, grid board.Grid) Request {
	return Request{Kind: RequestPlace, Color: color, Board: grid}
}

func NewPlayRequest(grid board.Grid) Request {
	return Request{Kind: RequestPlay, Board: grid}
}

func NewGameOverRequest(winner string) Request {
	return Request{Kind: RequestGameOver, Winner: winner}
}

func (r Request) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RequestRegister:
		return json.Marshal([]interface{}{string(r.Kind)})
	case RequestPlace:
		return json.Marshal([]interface{}{string(r.Kind), r.Color, r.Board})
	case RequestPlay:
		return json.Marshal([]interface{}{string(r.Kind), r.Board})
	case RequestGameOver:
		return json.Marshal([]interface{}{string(r.Kind), r.Winner})
	default:
		return nil, fmt.Errorf("wire: unknown request kind %q", r.Kind)
	}
}

func (r *Request) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("wire: request must be a JSON array: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("wire: empty request")
	}
	var kind string
	if err := json.Unmarshal(raw[0], &kind); err != nil {
		return fmt.Errorf("wire: request tag must be a string: %w", err)
	}

	switch RequestKind(kind) {
	case RequestRegister:
		if len(raw) != 1 {
			return fmt.Errorf("wire: Register takes no arguments")
		}
		*r = Request{Kind: RequestRegister}

	case RequestPlace:
		if len(raw) != 3 {
			return fmt.Errorf("wire: Place requires a color and a board")
		}
		var color string
		var grid board.Grid
		if err := json.Unmarshal(raw[1], &color); err != nil {
			return fmt.Errorf("wire: Place color: %w", err)
		}
		if err := json.Unmarshal(raw[2], &grid); err != nil {
			return fmt.Errorf("wire: Place board: %w", err)
		}
		*r = Request{Kind: RequestPlace, Color: color, Board: grid}

	case RequestPlay:
		if len(raw) != 2 {
			return fmt.Errorf("wire: Play requires a board")
		}
		var grid board.Grid
		if err := json.Unmarshal(raw[1], &grid); err != nil {
			return fmt.Errorf("wire: Play board: %w", err)
		}
		*r = Request{Kind: RequestPlay, Board: grid}

	case RequestGameOver:
		if len(raw) != 2 {
			return fmt.Errorf("wire: Game Over requires a winner name")
		}
		var winner string
		if err := json.Unmarshal(raw[1], &winner); err != nil {
			return fmt.Errorf("wire: Game Over winner: %w", err)
		}
		*r = Request{Kind: RequestGameOver, Winner: winner}

	default:
		return fmt.Errorf("wire: unrecognized request tag %q", kind)
	}
	return nil
}
