package proxyplayer

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcatattacks/santorini/internal/board"
	"github.com/pcatattacks/santorini/internal/wire"
)

// scriptedPeer drains one request from conn and writes back raw.
func scriptedPeer(t *testing.T, conn net.Conn, raw interface{}) {
	t.Helper()
	codec := wire.NewCodec(conn)
	var req wire.Request
	require.NoError(t, codec.Decode(&req))
	require.NoError(t, codec.Encode(raw))
}

func TestProxyPlayerRegisterSuccess(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	go scriptedPeer(t, server, "remote-bot")

	p := New(client)
	name, err := p.Register()
	require.NoError(t, err)
	assert.Equal(t, "remote-bot", name)
}

func TestProxyPlayerRegisterRejectsEmptyName(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	go scriptedPeer(t, server, "")

	p := New(client)
	_, err := p.Register()
	assert.ErrorIs(t, err, wire.ErrIllegalResponse)
}

func TestProxyPlayerSurfacesErrorToken(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	go scriptedPeer(t, server, "ContractViolation")

	p := New(client)
	_, err := p.Register()
	assert.ErrorIs(t, err, wire.ErrContractViolation)
}

func TestProxyPlayerPlaceRejectsOutOfBoundsPlacement(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	go scriptedPeer(t, server, json.RawMessage(`[[9,9],[0,0]]`))

	p := New(client)
	_, err := p.Place(board.NewDefault().Grid(), "blue")
	assert.ErrorIs(t, err, wire.ErrIllegalResponse)
}

func TestProxyPlayerNotifyRejectsNonOKAck(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	go scriptedPeer(t, server, "nope")

	p := New(client)
	err := p.Notify("someone")
	assert.ErrorIs(t, err, wire.ErrIllegalResponse)
}
