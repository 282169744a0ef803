// Package playerdriver implements the remote-side half of the wire
// protocol: a PlayerDriver wraps a Player (almost always a LocalPlayer)
// behind one outbound TCP connection to the Administrator.
package playerdriver

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/pcatattacks/santorini/internal/player"
	"github.com/pcatattacks/santorini/internal/wire"
)

// PlayerDriver dials out to the Administrator and loops
// read-dispatch-write against the wrapped Player until EOF or an
// unrecoverable error.
type PlayerDriver struct {
	player player.Player
	conn   net.Conn
	codec  *wire.Codec
}

// Dial opens an outbound connection to addr and wraps p behind it.
func Dial(network, addr string, p player.Player) (*PlayerDriver, error) {
	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, fmt.Errorf("playerdriver: dial %s: %w", addr, err)
	}
	return New(conn, p), nil
}

// New wraps an already-established connection.
func New(conn net.Conn, p player.Player) *PlayerDriver {
	return &PlayerDriver{player: p, conn: conn, codec: wire.NewCodec(conn)}
}

// Run loops until the Administrator closes the connection (a clean
// return), a read or write fails, or the wrapped Player returns an error
// (its error token, if it has one, is sent, then the driver returns that
// error).
func (d *PlayerDriver) Run() error {
	defer d.conn.Close()
	for {
		var req wire.Request
		if err := d.codec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("playerdriver: read: %w", err)
		}

		resp, err := d.dispatch(req)
		if err != nil {
			if token, ok := wire.ErrorToken(err); ok {
				_ = d.codec.Encode(token)
			}
			return err
		}
		if err := d.codec.Encode(resp); err != nil {
			return fmt.Errorf("playerdriver: write: %w", err)
		}
	}
}

func (d *PlayerDriver) dispatch(req wire.Request) (interface{}, error) {
	switch req.Kind {
	case wire.RequestRegister:
		return d.player.Register()

	case wire.RequestPlace:
		placements, err := d.player.Place(req.Board, req.Color)
		if err != nil {
			return nil, err
		}
		return wire.PlacementPair(placements), nil

	case wire.RequestPlay:
		play, ok, err := d.player.Play(req.Board)
		if err != nil {
			return nil, err
		}
		if !ok {
			return wire.EmptyPlayMsg(), nil
		}
		return wire.NewPlayMsg(play.Worker, play.Dirs), nil

	case wire.RequestGameOver:
		if err := d.player.Notify(req.Winner); err != nil {
			return nil, err
		}
		return "OK", nil

	default:
		return nil, fmt.Errorf("%w: unrecognized request", wire.ErrInvalidCommand)
	}
}
