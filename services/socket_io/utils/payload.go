package socketio_utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMissingPayload = errors.New("missing payload")

// ParsePayload extracts the JSON object sent as the first event argument.
// Clients may send either an object or its JSON-encoded string.
func ParsePayload(args []interface{}) (map[string]interface{}, error) {
	if len(args) < 1 || args[0] == nil {
		return nil, ErrMissingPayload
	}
	switch v := args[0].(type) {
	case map[string]interface{}:
		return v, nil
	case string:
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return nil, fmt.Errorf("invalid payload: %w", err)
		}
		if m == nil {
			return nil, ErrMissingPayload
		}
		return m, nil
	}
	return nil, fmt.Errorf("invalid payload type %T", args[0])
}

// StringField returns payload[key] when it is a non-blank string.
func StringField(payload map[string]interface{}, key string) (string, bool) {
	v, ok := payload[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
