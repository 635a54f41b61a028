package dates

import (
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse(" 05/03/2026 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = Parse("5/3/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestParseRejects(t *testing.T) {
	cases := []string{"", "2026-03-05", "31/02/2026", "05/13/2026", "05/03/26", "aa/bb/cccc", "05/03"}
	for _, raw := range cases {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, apperror.ErrValidation, raw)
		assert.ErrorIs(t, err, ErrInvalidDate, raw)
	}
}

func TestParseFieldNamesField(t *testing.T) {
	_, err := ParseField("from", "x")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "from", appErr.Field)
	assert.Equal(t, "invalid_from", appErr.Code)
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional("to", "  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptional("to", "01/01/2026")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2026, got.Year())
}

func TestFormatRoundTrip(t *testing.T) {
	in := time.Date(2025, time.December, 9, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, "09/12/2025", Format(in))

	back, err := Parse(Format(in))
	require.NoError(t, err)
	assert.Equal(t, Truncate(in), back)
	assert.Equal(t, "", Format(time.Time{}))
	assert.Equal(t, "09/12/2025", FormatDate(ToDate(in)))
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2025, time.December, 9, 3, 0, 0, 0, time.UTC)
	end := EndOfDay(in)
	assert.Equal(t, 9, end.Day())
	assert.True(t, end.Add(time.Nanosecond).Equal(time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC)))
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestTodayUsesClockZone(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	// 00:30 IST on the 16th is still the 15th in UTC.
	now := time.Date(2026, 10, 16, 0, 30, 0, 0, ist)

	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), Today(fixedClock(now)))
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), Today(fixedClock(now.UTC())))
	assert.Equal(t, "16/10/2026", Format(now))
	assert.Equal(t, Truncate(now), Truncate(Truncate(now)))
}
