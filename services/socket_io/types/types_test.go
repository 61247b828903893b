package socketio_types

import (
	"Blackjack/services/game"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberships(t *testing.T) {
	s := NewSocketServer()
	s.AddMembership("sid1", "AB12")
	s.AddMembership("sid1", "CD34")
	s.AddMembership("sid2", "AB12")

	assert.True(t, s.HasMembership("sid1", "AB12"))
	assert.False(t, s.HasMembership("sid2", "CD34"))

	s.RemoveMembership("sid2", "AB12")
	assert.False(t, s.HasMembership("sid2", "AB12"))

	assert.ElementsMatch(t, []string{"AB12", "CD34"}, s.TakeMemberships("sid1"))
	assert.Empty(t, s.TakeMemberships("sid1"))
	assert.Empty(t, s.TakeMemberships("unknown"))
}

func TestBroadcastWithoutServerIsNoop(t *testing.T) {
	s := NewSocketServer()
	assert.NotPanics(t, func() {
		s.Broadcast("AB12", game.RoomView{Code: "AB12"})
	})
}
