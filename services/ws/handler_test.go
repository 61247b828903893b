package ws

import (
	game_constants "Blackjack/constants/game"
	"Blackjack/services/game"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Player holds 10+7, dealer 10+9.
func fixedDeck() *game.Deck {
	return game.DeckFromCards(
		game.Card{Suit: game.Clubs, Rank: game.Nine},
		game.Card{Suit: game.Spades, Rank: game.Ten},
		game.Card{Suit: game.Spades, Rank: game.Seven},
		game.Card{Suit: game.Hearts, Rank: game.Ten},
	)
}

func setup(t *testing.T) (*game.Engine, *Hub, *httptest.Server) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	reg := game.NewRegistry(game.Options{NewDeck: fixedDeck, Broadcaster: hub})
	engine := game.NewEngine(reg)

	router := gin.New()
	router.GET("/ws/:code", Handler(engine, hub))
	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		reg.Close()
	})
	return engine, hub, srv
}

func dial(t *testing.T, srv *httptest.Server, code string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + code
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env envelope
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

// readState skips messages until a snapshot in the wanted phase arrives.
func readState(t *testing.T, conn *websocket.Conn, phase game.Phase) game.RoomView {
	t.Helper()
	for {
		env := read(t, conn)
		if env.Type != game_constants.EventGameState {
			continue
		}
		var view game.RoomView
		require.NoError(t, json.Unmarshal(env.Payload, &view))
		if view.Phase == phase {
			return view
		}
	}
}

func TestWebsocketRound(t *testing.T) {
	engine, hub, srv := setup(t)
	alice := dial(t, srv, "T1")

	identity := read(t, alice)
	assert.Equal(t, "identity", identity.Type)
	var id struct {
		ID       string `json:"id"`
		RoomCode string `json:"roomCode"`
	}
	require.NoError(t, json.Unmarshal(identity.Payload, &id))
	assert.NotEmpty(t, id.ID)
	assert.Equal(t, "T1", id.RoomCode)

	require.NoError(t, alice.WriteJSON(ClientMessage{Type: "join", Name: "Alice"}))
	view := readState(t, alice, game.PhasePlayersTurn)
	require.Len(t, view.Players, 1)
	assert.Equal(t, id.ID, view.Players[0].ID)
	assert.Equal(t, 17, view.Players[0].Score)
	require.Len(t, view.Dealer.Hand, 2)
	assert.Equal(t, game.HiddenCard, view.Dealer.Hand[1])

	require.NoError(t, alice.WriteJSON(ClientMessage{Type: "stand"}))
	view = readState(t, alice, game.PhaseFinished)
	assert.Equal(t, 19, view.Dealer.Score)
	assert.Equal(t, game.StatusStand, view.Players[0].Status)

	// A late watcher gets the current snapshot on connect.
	bob := dial(t, srv, "T1")
	assert.Equal(t, "identity", read(t, bob).Type)
	view = readState(t, bob, game.PhaseFinished)
	assert.Len(t, view.Players, 1)
	assert.Equal(t, 2, hub.Subscribers("T1"))

	require.NoError(t, alice.Close())
	assert.Eventually(t, func() bool {
		_, ok := engine.View("T1")
		return !ok && hub.Subscribers("T1") == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWebsocketUnknownMessage(t *testing.T) {
	_, _, srv := setup(t)
	conn := dial(t, srv, "T2")
	read(t, conn)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "split"}))
	env := read(t, conn)
	assert.Equal(t, "error", env.Type)
}

func TestWebsocketRejectsBadRoomCode(t *testing.T) {
	engine, hub, _ := setup(t)
	router := gin.New()
	router.GET("/ws/:code", Handler(engine, hub))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ws/"+strings.Repeat("X", 40), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	hub := NewHub()
	c := &Conn{send: make(chan []byte, 1), playerID: "p", code: "R"}
	hub.Subscribe("R", c)

	hub.Broadcast("R", game.RoomView{Code: "R"})
	hub.Broadcast("R", game.RoomView{Code: "R"})
	assert.Len(t, c.send, 1)

	hub.Unsubscribe("R", c)
	assert.Equal(t, 0, hub.Subscribers("R"))
	hub.Broadcast("R", game.RoomView{Code: "R"})
	assert.Len(t, c.send, 1)
}
