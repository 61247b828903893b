package handlers

import (
	game_constants "Blackjack/constants/game"
	"Blackjack/services/game"
	socketio_types "Blackjack/services/socket_io/types"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zishang520/socket.io/v2/socket"
)

type emitted struct {
	event string
	args  []any
}

type fakeClient struct {
	id    string
	mu    sync.Mutex
	rooms map[socket.Room]bool
	emits []emitted
}

func newFakeClient(id string) *fakeClient {
	return &fakeClient{id: id, rooms: map[socket.Room]bool{}}
}

func (c *fakeClient) Id() socket.SocketId { return socket.SocketId(c.id) }

func (c *fakeClient) Join(rooms ...socket.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range rooms {
		c.rooms[r] = true
	}
}

func (c *fakeClient) Leave(room socket.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rooms, room)
}

func (c *fakeClient) Emit(ev string, args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emits = append(c.emits, emitted{event: ev, args: args})
	return nil
}

func (c *fakeClient) events() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, e := range c.emits {
		out = append(out, e.event)
	}
	return out
}

func (c *fakeClient) in(room string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rooms[socket.Room(room)]
}

func newEngine(maxPlayers int) *game.Engine {
	reg := game.NewRegistry(game.Options{MaxPlayers: maxPlayers})
	return game.NewEngine(reg)
}

func payload(kv ...string) []interface{} {
	m := map[string]interface{}{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return []interface{}{m}
}

func TestJoinRoomSeatsSocket(t *testing.T) {
	engine := newEngine(0)
	defer engine.Registry().Close()
	sio := socketio_types.NewSocketServer()
	client := newFakeClient("sid1")

	HandleJoinRoom(engine, client, sio)(payload("roomCode", " AB12 ", "username", "Alice")...)

	assert.True(t, client.in("AB12"))
	assert.True(t, sio.HasMembership("sid1", "AB12"))
	view, ok := engine.View("AB12")
	require.True(t, ok)
	require.Len(t, view.Players, 1)
	assert.Equal(t, "sid1", view.Players[0].ID)
	assert.Empty(t, client.events())

	// Joining again replays the current view to the socket only.
	HandleJoinRoom(engine, client, sio)(payload("roomCode", "AB12", "username", "Alice")...)
	assert.Equal(t, []string{game_constants.EventGameState}, client.events())
}

func TestJoinRoomRejectsBadPayloads(t *testing.T) {
	engine := newEngine(0)
	defer engine.Registry().Close()
	sio := socketio_types.NewSocketServer()
	client := newFakeClient("sid1")
	join := HandleJoinRoom(engine, client, sio)

	join()
	join(payload("username", "Alice")...)
	join(payload("roomCode", "AB12")...)
	join("garbage")

	assert.Equal(t, []string{"error", "error", "error", "error"}, client.events())
	assert.Equal(t, 0, engine.Registry().Len())
}

func TestJoinRoomFull(t *testing.T) {
	engine := newEngine(1)
	defer engine.Registry().Close()
	sio := socketio_types.NewSocketServer()
	first, second := newFakeClient("sid1"), newFakeClient("sid2")

	HandleJoinRoom(engine, first, sio)(payload("roomCode", "AB12", "username", "Alice")...)
	HandleJoinRoom(engine, second, sio)(payload("roomCode", "AB12", "username", "Bob")...)

	assert.False(t, second.in("AB12"))
	assert.False(t, sio.HasMembership("sid2", "AB12"))
	assert.Equal(t, []string{game_constants.EventError}, second.events())
}

func TestPlayerActionAndRestart(t *testing.T) {
	var snapshots atomic.Int32
	reg := game.NewRegistry(game.Options{Broadcaster: game.BroadcasterFunc(func(string, game.RoomView) {
		snapshots.Add(1)
	})})
	engine := game.NewEngine(reg)
	defer reg.Close()
	sio := socketio_types.NewSocketServer()
	client := newFakeClient("sid1")

	HandleJoinRoom(engine, client, sio)(payload("roomCode", "AB12", "username", "Alice")...)
	view, _ := engine.View("AB12")
	if view.Phase == game.PhasePlayersTurn {
		HandlePlayerAction(engine, client)(payload("roomCode", "AB12", "action", "stand")...)
	}

	assert.Eventually(t, func() bool {
		v, _ := engine.View("AB12")
		return v.Phase == game.PhaseFinished
	}, 5*time.Second, 10*time.Millisecond)

	before := snapshots.Load()
	HandleRestartGame(engine, client)(payload("roomCode", "AB12")...)
	assert.Greater(t, snapshots.Load(), before)
	assert.NotContains(t, client.events(), game_constants.EventError)
}

func TestUnknownActionIsIgnored(t *testing.T) {
	engine := newEngine(0)
	defer engine.Registry().Close()
	sio := socketio_types.NewSocketServer()
	client := newFakeClient("sid1")

	HandleJoinRoom(engine, client, sio)(payload("roomCode", "AB12", "username", "Alice")...)
	before, _ := engine.View("AB12")
	HandlePlayerAction(engine, client)(payload("roomCode", "AB12", "action", "double")...)
	after, _ := engine.View("AB12")

	assert.Equal(t, before.Players[0].Hand, after.Players[0].Hand)
	assert.Empty(t, client.events())
}

func TestLeaveAndDisconnect(t *testing.T) {
	engine := newEngine(0)
	defer engine.Registry().Close()
	sio := socketio_types.NewSocketServer()
	alice, bob := newFakeClient("sid1"), newFakeClient("sid2")

	HandleJoinRoom(engine, alice, sio)(payload("roomCode", "AB12", "username", "Alice")...)
	HandleJoinRoom(engine, alice, sio)(payload("roomCode", "CD34", "username", "Alice")...)
	HandleJoinRoom(engine, bob, sio)(payload("roomCode", "AB12", "username", "Bob")...)

	HandleLeaveRoom(engine, bob, sio)(payload("roomCode", "AB12")...)
	assert.False(t, bob.in("AB12"))
	view, ok := engine.View("AB12")
	require.True(t, ok)
	assert.Len(t, view.Players, 1)

	HandleDisconnect(engine, alice, sio)("transport close")
	_, ok = engine.View("AB12")
	assert.False(t, ok)
	_, ok = engine.View("CD34")
	assert.False(t, ok)
	assert.Empty(t, sio.TakeMemberships("sid1"))
}
