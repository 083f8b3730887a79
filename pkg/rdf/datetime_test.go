package rdf

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unix(year int, month time.Month, day, hour, min, sec int) int64 {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC).Unix()
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		id      TypeID
		text    string
		seconds int64
		tz      bool
	}{
		{TypeDateTime, "2020-01-01T00:00:00Z", unix(2020, 1, 1, 0, 0, 0), true},
		{TypeDateTime, "2020-01-01T00:00:00", unix(2020, 1, 1, 0, 0, 0), false},
		{TypeDateTime, "2020-01-01T00:00:00+02:00", unix(2020, 1, 1, 0, 0, 0), true},
		{TypeDateTime, "2020-01-01T00:00:00-05:30", unix(2020, 1, 1, 0, 0, 0), true},
		{TypeDateTime, "2020-06-15T12:34:56.5", unix(2020, 6, 15, 12, 34, 56), false},
		{TypeDateTime, "2020-06-15T12:34:56.05Z", unix(2020, 6, 15, 12, 34, 56), true},
		{TypeDateTime, "2020-1-2T3:4:5", unix(2020, 1, 2, 3, 4, 5), false},
		{TypeDateTime, "-0044-03-15T12:00:00", unix(-44, 3, 15, 12, 0, 0), false},
		{TypeDateTime, "1969-12-31T23:59:59Z", -1, true},
		{TypeDate, "2020-01-01", unix(2020, 1, 1, 0, 0, 0), false},
		{TypeDate, "2020-01-01Z", unix(2020, 1, 1, 0, 0, 0), true},
		{TypeDate, "2020-01-01+01:00", unix(2020, 1, 1, 0, 0, 0), true},
		{TypeDate, "2020-13-01", unix(2021, 1, 1, 0, 0, 0), false},
		{TypeDate, " 2020-01-01", unix(2020, 1, 1, 0, 0, 0), false},
		{TypeTime, "10:00:00", unix(1902, 1, 1, 10, 0, 0), false},
		{TypeTime, "10:00:00Z", unix(1902, 1, 1, 10, 0, 0), true},
		{TypeTime, "23:59:59.999", unix(1902, 1, 1, 23, 59, 59), false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			term, err := ParseString(tt.id, tt.text)
			require.NoError(t, err)
			tm, ok := term.Temporal()
			require.True(t, ok)
			assert.Equal(t, tt.seconds, tm.Seconds)
			assert.Equal(t, tt.tz, tm.HasTimezone)
			assert.Equal(t, tt.text, term.Text())
		})
	}
}

func TestParseDateTimeRejected(t *testing.T) {
	tests := []struct {
		id    TypeID
		text  string
		cause error
	}{
		{TypeTime, "10:00:00+02:00", ErrSyntax},
		{TypeTime, "10:00:00-02:00", ErrSyntax},
		{TypeDateTime, "2020-01-01", ErrSyntax},
		{TypeDateTime, "2020-01-01 00:00:00", ErrSyntax},
		{TypeDateTime, "2020-01-01T00:00:00Zx", ErrSyntax},
		{TypeDateTime, "2020-01-01T00:00:00.50", ErrSyntax},
		{TypeDateTime, "2020-01-01T00:00:00.0", ErrSyntax},
		{TypeDateTime, "2020-01-01T00:00:00.", ErrSyntax},
		{TypeDateTime, "2020-01-01T00:00", ErrSyntax},
		{TypeDateTime, "2020-01-01T00:00:00+02", ErrSyntax},
		{TypeDate, "2020/01/01", ErrSyntax},
		{TypeDate, "", ErrSyntax},
		{TypeDate, "99999999999-01-01", ErrOutOfRange},
		{0x3300, "2020-01-01", ErrUnsupportedType},
		{0x3001, "2020-01-01T00:00:00", ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			term, err := ParseString(tt.id, tt.text)
			assert.Nil(t, term)
			assert.True(t, errors.Is(err, ErrRejected), "expected rejection, got %v", err)
			assert.True(t, errors.Is(err, tt.cause), "expected cause %v, got %v", tt.cause, err)
		})
	}
}

func TestParseDateTimeClampsLongInput(t *testing.T) {
	valid := strings.Repeat(" ", 11) + "2020-01-01T00:00:00.123456789"
	require.Len(t, valid, maxDateTimeLen)

	term, err := ParseString(TypeDateTime, valid+"junk")
	require.NoError(t, err)
	assert.Equal(t, valid, term.Text())

	_, err = ParseString(TypeDateTime, "2020-01-01T00:00:00Z followed by trailing input")
	assert.True(t, errors.Is(err, ErrRejected))
}
