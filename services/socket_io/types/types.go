package socketio_types

import (
	game_constants "Blackjack/constants/game"
	"Blackjack/services/game"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and the rooms
// each connected socket has joined.
// It is used to handle socket.io connections.
type SocketServer struct {
	Sio_server *socket.Server
	// socket id -> set of room codes
	memberships map[string]map[string]struct{}
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		memberships: make(map[string]map[string]struct{}),
	}
}

func (s *SocketServer) AddMembership(socketID, roomCode string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	rooms, ok := s.memberships[socketID]
	if !ok {
		rooms = make(map[string]struct{})
		s.memberships[socketID] = rooms
	}
	rooms[roomCode] = struct{}{}
}

func (s *SocketServer) RemoveMembership(socketID, roomCode string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	rooms, ok := s.memberships[socketID]
	if !ok {
		return
	}
	delete(rooms, roomCode)
	if len(rooms) == 0 {
		delete(s.memberships, socketID)
	}
}

func (s *SocketServer) HasMembership(socketID, roomCode string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := s.memberships[socketID][roomCode]
	return ok
}

// TakeMemberships forgets a socket and returns the rooms it had joined.
func (s *SocketServer) TakeMemberships(socketID string) []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	rooms := s.memberships[socketID]
	delete(s.memberships, socketID)
	codes := make([]string, 0, len(rooms))
	for code := range rooms {
		codes = append(codes, code)
	}
	return codes
}

// Broadcast emits a snapshot to the socket.io room named by the room code.
func (s *SocketServer) Broadcast(code string, view game.RoomView) {
	if s.Sio_server == nil {
		return
	}
	s.Sio_server.To(socket.Room(code)).Emit(game_constants.EventGameState, view)
}
