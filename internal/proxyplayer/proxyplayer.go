// Package proxyplayer implements the Referee-side half of the wire
// protocol: a ProxyPlayer impersonates a remote player, turning every
// Player call into one request/response round-trip with a PlayerDriver.
package proxyplayer

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/pcatattacks/santorini/internal/board"
	"github.com/pcatattacks/santorini/internal/player"
	"github.com/pcatattacks/santorini/internal/rules"
	"github.com/pcatattacks/santorini/internal/strategy"
	"github.com/pcatattacks/santorini/internal/wire"
)

var _ player.Player = (*ProxyPlayer)(nil)

const defaultTimeout = 5 * time.Second

// ProxyPlayer holds a single socket to a PlayerDriver.
type ProxyPlayer struct {
	conn    net.Conn
	codec   *wire.Codec
	name    string
	timeout time.Duration
}

// New wraps conn in a ProxyPlayer with the default per-call deadline.
func New(conn net.Conn) *ProxyPlayer {
	return &ProxyPlayer{conn: conn, codec: wire.NewCodec(conn), timeout: defaultTimeout}
}

// Conn returns the underlying connection, so the Administrator can close
// it on tournament teardown.
func (p *ProxyPlayer) Conn() net.Conn { return p.conn }

func (p *ProxyPlayer) roundTrip(req wire.Request, resp interface{}) error {
	if p.timeout > 0 {
		_ = p.conn.SetDeadline(time.Now().Add(p.timeout))
	}
	if err := p.codec.Encode(req); err != nil {
		return fmt.Errorf("%w: write failed: %v", wire.ErrIllegalResponse, err)
	}

	var raw json.RawMessage
	if err := p.codec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: read failed: %v", wire.ErrIllegalResponse, err)
	}

	var token string
	if json.Unmarshal(raw, &token) == nil {
		if sentinel, ok := wire.ParseErrorToken(token); ok {
			return sentinel
		}
	}

	if err := json.Unmarshal(raw, resp); err != nil {
		return fmt.Errorf("%w: %v", wire.ErrIllegalResponse, err)
	}
	return nil
}

func (p *ProxyPlayer) Register() (string, error) {
	var name string
	if err := p.roundTrip(wire.NewRegisterRequest(), &name); err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("%w: empty name", wire.ErrIllegalResponse)
	}
	p.name = name
	return name, nil
}

func (p *ProxyPlayer) Place(grid board.Grid, color string) ([2]board.Position, error) {
	var pair wire.PlacementPair
	if err := p.roundTrip(wire.NewPlaceRequest(color, grid), &pair); err != nil {
		return [2]board.Position{}, err
	}
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	for _, pos := range pair {
		if !rules.IsValidPlacement(rows, cols, pos) {
			return [2]board.Position{}, fmt.Errorf("%w: placement out of bounds", wire.ErrIllegalResponse)
		}
	}
	return [2]board.Position(pair), nil
}

func (p *ProxyPlayer) Play(grid board.Grid) (strategy.Play, bool, error) {
	var msg wire.PlayMsg
	if err := p.roundTrip(wire.NewPlayRequest(grid), &msg); err != nil {
		return strategy.Play{}, false, err
	}
	if msg.Empty {
		return strategy.Play{}, false, nil
	}
	if !rules.IsValidWorker(msg.Worker) || !rules.IsValidPlay(msg.Dirs) {
		return strategy.Play{}, false, fmt.Errorf("%w: malformed play", wire.ErrIllegalResponse)
	}
	return strategy.Play{Worker: msg.Worker, Dirs: msg.Dirs}, true, nil
}

func (p *ProxyPlayer) Notify(winnerName string) error {
	var ack string
	if err := p.roundTrip(wire.NewGameOverRequest(winnerName), &ack); err != nil {
		return err
	}
	if ack != "OK" {
		return fmt.Errorf("%w: expected OK, got %q", wire.ErrIllegalResponse, ack)
	}
	return nil
}

func (p *ProxyPlayer) GetName() string { return p.name }
