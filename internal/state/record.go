package state

import (
	"encoding/json"
	"math"
)

// PersistedState is the durable playback record: which track was selected,
// how far into it playback got, and whether playback resumes on next start.
type PersistedState struct {
	Index   int     `json:"index"`
	Time    float64 `json:"time"`
	Enabled bool    `json:"enabled"`
}

// Default returns the state used on first run or when the stored record is unusable.
func Default() PersistedState {
	return PersistedState{Index: 0, Time: 0, Enabled: false}
}

// Decode parses a stored record. Anything that is not a JSON object with
// correctly typed fields yields Default(); missing fields keep their default.
func Decode(raw string) PersistedState {
	if raw == "" {
		return Default()
	}

	// Reject non-objects up front: "null", "[]" or "3" unmarshal without error.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return Default()
	}

	s := Default()
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Default()
	}
	if s.Time < 0 || math.IsNaN(s.Time) || math.IsInf(s.Time, 0) {
		s.Time = 0
	}
	return s
}

// Encode serializes the record in its stored JSON form.
func Encode(s PersistedState) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
