package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Valid(t *testing.T) {
	got, err := ParseDate("05/01/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "05/01/2024", FormatDate(got))
}

func TestParseDate_RejectsOtherFormats(t *testing.T) {
	cases := []string{
		"",
		"1/1/2024",
		"01/01/24",
		"2024-01-01",
		"01-01-2024",
		"31/02/2024",
		"01/13/2024",
		"01/01/2024 ",
		" 01/01/2024",
		"01/01/20245",
		"ab/cd/efgh",
	}
	for _, in := range cases {
		_, err := ParseDate(in)
		require.Errorf(t, err, "expected %q to be rejected", in)
		assert.True(t, IsKind(err, KindInvalidDateFormat), "input %q: %v", in, err)
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"01/01/2024", "05/01/2024", 4},
		{"01/01/2024", "01/01/2024", 0},
		{"28/02/2024", "01/03/2024", 2},
		{"31/12/2023", "01/01/2024", 1},
		{"05/01/2024", "01/01/2024", -4},
		{"01/01/1700", "01/01/2024", 118338},
		{"01/01/2024", "01/01/1700", -118338},
		{"01/01/0001", "31/12/9999", 3652058},
	}
	for _, c := range cases {
		from, err := ParseDate(c.from)
		require.NoError(t, err)
		to, err := ParseDate(c.to)
		require.NoError(t, err)
		assert.Equal(t, c.want, DaysBetween(from, to), "%s -> %s", c.from, c.to)
	}
}
