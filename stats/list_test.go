package stats_test

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/elapsed/activity"
	"github.com/ayoisaiah/elapsed/internal/config"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/stats"
)

func answer(ok bool) stats.Confirm {
	return func(string) (bool, error) {
		return ok, nil
	}
}

func newReporter(t *testing.T, confirm stats.Confirm) (*stats.Reporter, *activity.Service, *bytes.Buffer) {
	t.Helper()

	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	db, clk := setup(t)
	svc := activity.NewService(db, clk)

	var buf bytes.Buffer

	return stats.NewReporter(svc, &config.Config{}, &buf, confirm), svc, &buf
}

func TestReporterList(t *testing.T) {
	r, _, buf := newReporter(t, answer(true))

	require.NoError(t, r.List(false))

	out := buf.String()
	assert.Contains(t, out, "Morning run")
	assert.Contains(t, out, "Plank")
	assert.Contains(t, out, "1:15")
}

func TestReporterListWithoutRepeats(t *testing.T) {
	r, _, buf := newReporter(t, answer(true))

	require.NoError(t, r.Delete("Plank", true))
	require.NoError(t, r.List(false))

	out := buf.String()
	assert.Contains(t, out, "Morning run")
	assert.NotContains(t, out, "0:00")
}

func TestReporterShow(t *testing.T) {
	r, _, buf := newReporter(t, answer(true))

	require.NoError(t, r.Show("Plank", false))

	out := buf.String()
	assert.Contains(t, out, "Best:")
	assert.Contains(t, out, "1:00")
	assert.Contains(t, out, "1:30")
	assert.Contains(t, out, "History")
}

func TestReporterShowMissing(t *testing.T) {
	r, _, _ := newReporter(t, answer(true))

	err := r.Show("Swimming", false)
	assert.True(t, activity.IsNotFound(err))
}

func TestReporterDeleteDeclined(t *testing.T) {
	r, svc, _ := newReporter(t, answer(false))

	require.NoError(t, r.Delete("Plank", false))

	_, err := svc.Get("Plank")
	assert.NoError(t, err)
}

func TestReporterDeleteConfirmed(t *testing.T) {
	r, svc, _ := newReporter(t, answer(true))

	require.NoError(t, r.Delete("Plank", false))

	_, err := svc.Get("Plank")
	assert.True(t, activity.IsNotFound(err))
}

func TestReporterRemoveRepeat(t *testing.T) {
	r, svc, _ := newReporter(t, answer(false))

	require.NoError(t, r.RemoveRepeat("Plank", 1, true))

	a, err := svc.Get("Plank")
	require.NoError(t, err)
	require.Len(t, a.Repeats, 2)

	last, ok := activity.LastRepeat(a)
	require.True(t, ok)
	assert.Equal(t, day(11, 8, 5), last.Date)
}

func TestReporterRename(t *testing.T) {
	r, svc, _ := newReporter(t, answer(true))

	require.NoError(t, r.Rename("Plank", "Side plank"))

	_, err := svc.Get("Side plank")
	assert.NoError(t, err)
}

func TestReporterTimers(t *testing.T) {
	r, _, buf := newReporter(t, answer(true))

	label := "Plank"
	start := day(13, 8, 0)
	paused := day(13, 8, 30)

	timers := []*models.Timer{
		{
			ID:            "a",
			ActivityLabel: &label,
			StartTime:     &start,
			LastPauseTime: &paused,
			CreatedAt:     start,
		},
	}

	require.NoError(t, r.Timers(timers, day(13, 9, 0)))

	out := buf.String()
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "30:00")
}
