package stats_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/elapsed/activity"
	"github.com/ayoisaiah/elapsed/internal/clock"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/internal/testutil"
	"github.com/ayoisaiah/elapsed/stats"
	"github.com/ayoisaiah/elapsed/store"
)

func day(d, h, m int) time.Time {
	return time.Date(2024, 1, d, h, m, 0, 0, time.UTC)
}

func fixtures() []*models.Activity {
	return []*models.Activity{
		{
			Title:     "Plank",
			CreatedAt: day(10, 8, 0),
			Repeats: []models.Repeat{
				{Date: day(10, 8, 5), Time: 60 * time.Second},
				{Date: day(11, 8, 5), Time: 90 * time.Second},
				{Date: day(12, 8, 5), Time: 75500 * time.Millisecond},
			},
		},
		{
			Title:     "Morning run",
			CreatedAt: day(9, 6, 0),
		},
	}
}

func setup(t *testing.T) (*store.Client, *clock.Manual) {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "elapsed.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	for _, a := range fixtures() {
		require.NoError(t, db.SaveActivity(a))
	}

	return db, clock.NewManual(day(13, 9, 0))
}

func TestSummarize(t *testing.T) {
	s := stats.Summarize(fixtures()[0])

	assert.Equal(t, 3, s.Repeats)
	assert.Equal(t, 225500*time.Millisecond, s.Total)
	require.NotNil(t, s.Shortest)
	require.NotNil(t, s.Longest)
	assert.Equal(t, 60*time.Second, *s.Shortest)
	assert.Equal(t, 90*time.Second, *s.Longest)
	require.NotNil(t, s.LastRepeat)
	assert.Equal(t, day(12, 8, 5), *s.LastRepeat)
}

func TestSummarizeEmpty(t *testing.T) {
	s := stats.Summarize(fixtures()[1])

	assert.Zero(t, s.Repeats)
	assert.Nil(t, s.Average)
	assert.Nil(t, s.Shortest)
	assert.Nil(t, s.Longest)
	assert.Nil(t, s.LastRepeat)
}

func TestSummariesJSON(t *testing.T) {
	db, clk := setup(t)

	list, err := activity.NewService(db, clk).List()
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, stats.WriteJSON(&buf, stats.Summaries(list)))

	testutil.CompareGoldenFile(t, "summaries", buf.Bytes())
}

func TestDetailsJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, stats.WriteJSON(&buf, stats.Details(fixtures()[0])))

	testutil.CompareGoldenFile(t, "details", buf.Bytes())
}

func TestDetailsHistoryOrder(t *testing.T) {
	d := stats.Details(fixtures()[0])

	require.Len(t, d.History, 3)
	assert.Equal(t, day(12, 8, 5), d.History[0].Date)
	assert.Equal(t, 1, d.History[0].Index)
	assert.InDelta(t, 0.517, d.History[0].Bar, 1e-9)
	assert.InDelta(t, 1.0, d.History[1].Bar, 1e-9)
	assert.InDelta(t, 0.0, d.History[2].Bar, 1e-9)
}
