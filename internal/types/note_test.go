package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNoteDecodesNumericAndStringIDs(t *testing.T) {
	var notes []Note
	payload := `[{"id":1,"title":"A","content":"x","createdAt":"2024-01-01"},{"id":"abc","title":"B"}]`
	if err := json.Unmarshal([]byte(payload), &notes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if notes[0].ID != "1" || notes[1].ID != "abc" {
		t.Fatalf("unexpected ids: %q %q", notes[0].ID, notes[1].ID)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !notes[0].CreatedAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, notes[0].CreatedAt.Time)
	}
	if !notes[1].CreatedAt.IsZero() {
		t.Fatalf("expected zero createdAt for missing field")
	}
}

func TestNoteIDMarshalKeepsNumbersNumeric(t *testing.T) {
	data, err := json.Marshal(Note{ID: "42", Title: "t"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["id"].(float64); !ok {
		t.Fatalf("expected numeric id, got %#v", raw["id"])
	}
}

func TestTimestampToleratesUnknownLayouts(t *testing.T) {
	cases := map[string]bool{
		`"2024-03-05T10:11:12"`:        true,
		`"2024-03-05T10:11:12.123456"`: true,
		`"2024-03-05T10:11:12Z"`:       true,
		`"yesterday"`:                  false,
		`1709633472000`:                true,
		`{"nested":true}`:              false,
		`null`:                         false,
	}
	for raw, valid := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			t.Fatalf("%s: unexpected error %v", raw, err)
		}
		if ts.IsZero() == valid {
			t.Fatalf("%s: expected valid=%v, got %v", raw, valid, ts.Time)
		}
	}
}

func TestNoteIDZero(t *testing.T) {
	if !NoteID("  ").IsZero() {
		t.Fatalf("expected whitespace id to be zero")
	}
	var id NoteID
	if err := json.Unmarshal([]byte("null"), &id); err != nil || !id.IsZero() {
		t.Fatalf("expected null to decode to zero id, got %q err=%v", id, err)
	}
}

func TestNoteIDMarshalRoundTrips(t *testing.T) {
	cases := []struct {
		id   NoteID
		want string
	}{
		{id: "42", want: `42`},
		{id: "-3", want: `-3`},
		{id: "007", want: `"007"`},
		{id: "+5", want: `"+5"`},
		{id: "-0", want: `"-0"`},
		{id: "abc", want: `"abc"`},
		{id: "", want: `null`},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.id)
		if err != nil {
			t.Fatalf("%q: marshal: %v", tc.id, err)
		}
		if string(data) != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.id, tc.want, data)
		}
		var back NoteID
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("%q: unmarshal: %v", tc.id, err)
		}
		if back != tc.id {
			t.Fatalf("%q: round trip gave %q", tc.id, back)
		}
	}
}

func TestWallClockTimestampsAreLocal(t *testing.T) {
	prev := time.Local
	time.Local = time.FixedZone("EST", -5*60*60)
	t.Cleanup(func() { time.Local = prev })

	ts, ok := ParseTimestamp("2024-01-01T02:00:00")
	if !ok {
		t.Fatalf("expected wall clock timestamp to parse")
	}
	if ts.Location() != time.Local || ts.Hour() != 2 || ts.Day() != 1 {
		t.Fatalf("expected 02:00 local on Jan 1, got %v", ts.Time)
	}

	ts, ok = ParseTimestamp("2024-01-01T02:00:00Z")
	if !ok || !ts.Equal(time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected explicit zone to win, got %v", ts.Time)
	}

	ts, ok = ParseTimestamp("2024-01-01")
	if !ok || ts.Location() != time.UTC {
		t.Fatalf("expected bare date in UTC, got %v", ts.Time)
	}
}
