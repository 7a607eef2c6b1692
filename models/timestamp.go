package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DisplayTimeLayout is how timestamps are shown in the panel.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// Timestamp accepts the shapes the REST API uses for dates: the serialized
// Firestore form {"_seconds": n, "_nanoseconds": m}, epoch seconds, or an
// RFC 3339 string.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	switch data[0] {
	case '{':
		var raw struct {
			Seconds      *int64 `json:"_seconds"`
			Nanoseconds  int64  `json:"_nanoseconds"`
			PlainSeconds *int64 `json:"seconds"`
			PlainNanos   int64  `json:"nanoseconds"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		switch {
		case raw.Seconds != nil:
			t.Time = time.Unix(*raw.Seconds, raw.Nanoseconds)
		case raw.PlainSeconds != nil:
			t.Time = time.Unix(*raw.PlainSeconds, raw.PlainNanos)
		default:
			t.Time = time.Time{}
		}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			t.Time = time.Time{}
			return nil
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	default:
		var seconds float64
		if err := json.Unmarshal(data, &seconds); err != nil {
			return fmt.Errorf("invalid timestamp %s: %w", data, err)
		}
		t.Time = time.Unix(int64(seconds), 0)
		return nil
	}
}

// String renders the timestamp in local time, or N/A when unset.
func (t Timestamp) String() string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format(DisplayTimeLayout)
}
