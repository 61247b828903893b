package socketio_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	m, err := ParsePayload([]interface{}{map[string]interface{}{"roomCode": "AB12"}})
	require.NoError(t, err)
	assert.Equal(t, "AB12", m["roomCode"])

	m, err = ParsePayload([]interface{}{`{"roomCode":"AB12","action":"hit"}`})
	require.NoError(t, err)
	assert.Equal(t, "hit", m["action"])

	_, err = ParsePayload(nil)
	assert.ErrorIs(t, err, ErrMissingPayload)

	_, err = ParsePayload([]interface{}{"null"})
	assert.ErrorIs(t, err, ErrMissingPayload)

	_, err = ParsePayload([]interface{}{"not json"})
	assert.Error(t, err)

	_, err = ParsePayload([]interface{}{42.0})
	assert.Error(t, err)
}

func TestStringField(t *testing.T) {
	payload := map[string]interface{}{"roomCode": "AB12", "blank": "  ", "n": 3.0}

	v, ok := StringField(payload, "roomCode")
	assert.True(t, ok)
	assert.Equal(t, "AB12", v)

	_, ok = StringField(payload, "blank")
	assert.False(t, ok)
	_, ok = StringField(payload, "n")
	assert.False(t, ok)
	_, ok = StringField(payload, "missing")
	assert.False(t, ok)
}
