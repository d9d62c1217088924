package datefmt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/types"
)

func TestDateFollowsLocale(t *testing.T) {
	ts := types.NewTimestamp(time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC))
	cases := map[string]string{
		"en-US":       "3/7/2024",
		"en_US.UTF-8": "3/7/2024",
		"de_DE.UTF-8": "7.3.2024",
		"en-GB":       "07/03/2024",
		"ja-JP":       "2024/3/7",
		"":            "3/7/2024",
		"not a tag!":  "3/7/2024",
	}
	for locale, want := range cases {
		got := New(locale).WithLocation(time.UTC).Date(ts)
		assert.Equal(t, want, got, "locale %q", locale)
	}
}

func TestZeroDateIsUnknown(t *testing.T) {
	assert.Equal(t, InvalidDate, New("en-US").Date(types.Timestamp{}))
}

func TestCountUsesGrouping(t *testing.T) {
	assert.Equal(t, "1,234", New("en-US").Count(1234))
	assert.Equal(t, "7", New("de-DE").Count(7))
}

func TestWallClockDateKeepsCalendarDayWestOfUTC(t *testing.T) {
	newYork := time.FixedZone("EST", -5*60*60)
	prev := time.Local
	time.Local = newYork
	t.Cleanup(func() { time.Local = prev })

	var note types.Note
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"A","createdAt":"2024-01-01T02:00:00"}`), &note))
	assert.Equal(t, "1/1/2024", New("en-US").WithLocation(newYork).Date(note.CreatedAt))

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"A","createdAt":"2024-01-01T02:00:00Z"}`), &note))
	assert.Equal(t, "12/31/2023", New("en-US").WithLocation(newYork).Date(note.CreatedAt))
}
