package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "seconds_only",
			text:     "PT45S",
			expected: 45,
		},
		{
			name:     "minutes_and_seconds",
			text:     "PT4M13S",
			expected: 253,
		},
		{
			name:     "hours_only",
			text:     "PT1H",
			expected: 3600,
		},
		{
			name:     "full_time",
			text:     "PT2H30M15S",
			expected: 9015,
		},
		{
			name:     "days_and_time",
			text:     "P1DT3H",
			expected: 97200,
		},
		{
			name:     "weeks",
			text:     "P2W",
			expected: 1209600,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seconds, err := ParseISODuration(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, seconds)
		})
	}
}

func TestParseISODuration_Invalid(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "missing_prefix", text: "T1H"},
		{name: "bare_prefix", text: "P"},
		{name: "trailing_t", text: "P1DT"},
		{name: "unknown_unit", text: "PT5X"},
		{name: "digits_without_unit", text: "PT30"},
		{name: "go_style", text: "1h30m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseISODuration(tc.text)
			require.Error(t, err)
		})
	}
}
