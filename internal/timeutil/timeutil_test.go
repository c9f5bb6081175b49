package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerString(t *testing.T) {
	cases := []struct {
		Name   string
		Want   string
		D      time.Duration
		Full   bool
		Tenths bool
	}{
		{Name: "zero compact", D: 0, Want: "0:00"},
		{Name: "zero full", D: 0, Full: true, Want: "00:00:00"},
		{Name: "seconds only", D: 7 * time.Second, Want: "0:07"},
		{Name: "minutes", D: 7*time.Minute + 5*time.Second, Want: "7:05"},
		{Name: "double digit minutes", D: 42*time.Minute + 9*time.Second, Want: "42:09"},
		{Name: "hours compact", D: time.Hour + 2*time.Minute + 3*time.Second, Want: "1:02:03"},
		{Name: "hours full", D: 12*time.Hour + 2*time.Minute, Full: true, Want: "12:02:00"},
		{Name: "tenths", D: 65*time.Second + 480*time.Millisecond, Tenths: true, Want: "1:05.4"},
		{Name: "tenths full", D: 1500 * time.Millisecond, Full: true, Tenths: true, Want: "00:00:01.5"},
		{Name: "negative clamps to zero", D: -3 * time.Second, Want: "0:00"},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, TimerString(tc.D, tc.Full, tc.Tenths))
		})
	}
}

func TestComponents(t *testing.T) {
	h, m, s, tenths := Components(26*time.Hour + 59*time.Minute + 58*time.Second + 999*time.Millisecond)

	assert.Equal(t, 26, h)
	assert.Equal(t, 59, m)
	assert.Equal(t, 58, s)
	assert.Equal(t, 9, tenths)
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 1.5, Seconds(1500*time.Millisecond))
	assert.Equal(t, 0.001, Seconds(1234*time.Microsecond))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("20 minutes ago", now)
	require.NoError(t, err)

	assert.WithinDuration(t, now.Add(-20*time.Minute), got, time.Second)

	_, err = FromStr("qwxz-not-a-date", now)
	assert.Error(t, err)
}
