package gateway

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// APIError is the single error shape every client method fails with.
// Status is 0 when the server could not be reached at all.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func unreachableError() *APIError {
	return &APIError{Message: "could not reach the server"}
}

// apiErrorFromBody unwraps the known server error shapes:
// {"detail": "..."} and {"message"/"error": "..."} take priority, then
// DRF field maps {"field": ["msg", ...]} are joined into one line. Anything
// else falls back to a generic status message.
func apiErrorFromBody(status int, body []byte) *APIError {
	fallback := &APIError{Status: status, Message: fmt.Sprintf("request failed: %d", status)}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		return fallback
	}

	for _, key := range []string{"detail", "message", "error"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return &APIError{Status: status, Message: s}
		}
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var list []string
		if json.Unmarshal(payload[k], &list) == nil && len(list) > 0 {
			parts = append(parts, k+": "+strings.Join(list, ", "))
			continue
		}
		var s string
		if json.Unmarshal(payload[k], &s) == nil && s != "" {
			parts = append(parts, k+": "+s)
		}
	}
	if len(parts) > 0 {
		return &APIError{Status: status, Message: strings.Join(parts, "; ")}
	}
	return fallback
}
