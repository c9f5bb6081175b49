// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// Components splits a duration into hours, minutes, seconds and tenths of a
// second. Negative durations are treated as zero.
func Components(d time.Duration) (hrs, mins, secs, tenths int) {
	if d < 0 {
		d = 0
	}

	total := int(d / time.Second)

	hrs = total / secondsInAnHour
	mins = (total % secondsInAnHour) / secondsInAMinute
	secs = total % secondsInAMinute
	tenths = int((d % time.Second) / (100 * time.Millisecond))

	return
}

// TimerString formats a duration the way a stopwatch displays it. The full
// format is always HH:MM:SS; otherwise a zero hour component and leading
// zeros are dropped (7:05, 1:02:03). With tenths set, a decimal digit is
// appended.
func TimerString(d time.Duration, full, tenths bool) string {
	h, m, s, t := Components(d)

	var str string

	switch {
	case full:
		str = fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	case h > 0:
		str = fmt.Sprintf("%d:%02d:%02d", h, m, s)
	default:
		str = fmt.Sprintf("%d:%02d", m, s)
	}

	if tenths {
		str += fmt.Sprintf(".%d", t)
	}

	return str
}

// Seconds renders a duration as fractional seconds for machine-readable
// output.
func Seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// FromStr parses a free-form date such as "20 minutes ago" or
// "yesterday 5pm" relative to now.
func FromStr(str string, now time.Time) (time.Time, error) {
	str = strings.TrimSpace(str)

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, str)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
