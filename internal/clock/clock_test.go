package clock

import (
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("IST", 19800))
	c := NewFakeClock(start)

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, c.Now().Equal(start))

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute).UTC(), c.Now())

	var _ Clock = c
}

func TestRealIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Real().Now().Location())
}

func TestFakeClockIn(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	c := NewFakeClock(time.Date(2026, 10, 15, 19, 0, 0, 0, time.UTC)).In(ist)

	now := c.Now()
	assert.Equal(t, ist, now.Location())
	assert.Equal(t, 16, now.Day())
}

func TestProvideUsesConfiguredTimezone(t *testing.T) {
	c, err := Provide(config.Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, c.Now().Location().String())

	c, err = Provide(config.Config{Timezone: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, c.Now().Location())

	_, err = Provide(config.Config{Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}
