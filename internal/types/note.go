package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// NoteID is the store-assigned identifier of a note. The store may send it
// as a JSON number or a string; an empty NoteID marks an unsaved note.
type NoteID string

func (id NoteID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

func (id NoteID) String() string {
	return string(id)
}

func (id NoteID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	// only canonical integers go back as numbers; "007" stays a string
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *NoteID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*id = NoteID(strings.TrimSpace(raw))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*id = NoteID(num.String())
	return nil
}

type timestampLayout struct {
	layout string
	// wall clock layouts carry no zone and are read as local time
	wallClock bool
}

var timestampLayouts = []timestampLayout{
	{layout: time.RFC3339Nano},
	{layout: "2006-01-02T15:04:05.999999999", wallClock: true},
	{layout: "2006-01-02T15:04:05", wallClock: true},
	{layout: "2006-01-02 15:04:05", wallClock: true},
	{layout: "2006-01-02"},
}

// Timestamp is a display-only creation time. Values the store sends in an
// unknown layout decode to the zero Timestamp instead of failing the note.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func ParseTimestamp(raw string) (Timestamp, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Timestamp{}, false
	}
	for _, l := range timestampLayouts {
		loc := time.UTC
		if l.wallClock {
			loc = time.Local
		}
		if t, err := time.ParseInLocation(l.layout, raw, loc); err == nil {
			return Timestamp{Time: t}, true
		}
	}
	return Timestamp{}, false
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t Timestamp) MarshalYAML() (any, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time.Format(time.RFC3339), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// epoch millis, as some stores serialise dates
		var millis int64
		if numErr := json.Unmarshal(data, &millis); numErr == nil {
			*t = Timestamp{Time: time.UnixMilli(millis).UTC()}
			return nil
		}
		*t = Timestamp{}
		return nil
	}
	parsed, _ := ParseTimestamp(raw)
	*t = parsed
	return nil
}

type Note struct {
	ID        NoteID    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt Timestamp `json:"createdAt" yaml:"createdAt"`
}

// NoteInput is the full write payload; updates always carry both fields.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (n Note) Input() NoteInput {
	return NoteInput{Title: n.Title, Content: n.Content}
}
