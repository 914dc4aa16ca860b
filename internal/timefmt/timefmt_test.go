package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDisplay(t *testing.T) {
	instant := time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"nil", nil, "-"},
		{"nil pointer", (*time.Time)(nil), "-"},
		{"zero time", time.Time{}, "-"},
		{"empty string", "", "-"},
		{"utc instant", instant, "05 Mar 2024, 05:15 PM"},
		{"pointer instant", &instant, "05 Mar 2024, 05:15 PM"},
		{"bson datetime", primitive.NewDateTimeFromTime(instant), "05 Mar 2024, 05:15 PM"},
		{"bson timestamp", primitive.Timestamp{T: uint32(instant.Unix()), I: 1}, "05 Mar 2024, 05:15 PM"},
		{"bson timestamp pointer", &primitive.Timestamp{T: uint32(instant.Unix())}, "05 Mar 2024, 05:15 PM"},
		{"zero bson timestamp", primitive.Timestamp{}, "-"},
		{"crosses midnight", time.Date(2024, 12, 31, 20, 30, 0, 0, time.UTC), "01 Jan 2025, 04:30 AM"},
		{"malformed string passes through", "next tuesday", "next tuesday"},
		{"number passes through", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Display(tt.value))
		})
	}
}

func TestLocalInput(t *testing.T) {
	instant := time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)

	assert.Equal(t, "", LocalInput(nil))
	assert.Equal(t, "", LocalInput((*time.Time)(nil)))
	assert.Equal(t, "", LocalInput("2024-03-05T17:15"))
	assert.Equal(t, "2024-03-05T17:15", LocalInput(instant))
	assert.Equal(t, "2024-03-05T17:15", LocalInput(primitive.NewDateTimeFromTime(instant)))
	assert.Equal(t, "2024-03-05T17:15", LocalInput(primitive.Timestamp{T: uint32(instant.Unix()), I: 3}))
}

func TestParseLocalInput(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2024-03-05T17:15", time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)},
		{"2024-03-05T17:15:30", time.Date(2024, 3, 5, 9, 15, 30, 0, time.UTC)},
		{"2024-03-05 17:15", time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)},
		{"2024-03-05", time.Date(2024, 3, 4, 16, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocalInput(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseLocalInput("05/03/2024 5pm")
		assert.ErrorIs(t, err, ErrInvalidLocalTime)
	})
}

func TestLocalInputRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, instant := range instants {
		parsed, err := ParseLocalInput(LocalInput(instant))
		require.NoError(t, err)
		assert.True(t, instant.Equal(parsed), "round trip of %v gave %v", instant, parsed)
	}
}
