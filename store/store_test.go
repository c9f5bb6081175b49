package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/elapsed/internal/models"
)

var base = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "elapsed.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestSaveAndFindTimer(t *testing.T) {
	c := newTestClient(t)

	got, err := c.FindTimer(TimerFilter{})
	require.NoError(t, err)
	assert.Nil(t, got, "empty store should have no timer")

	timer := models.NewTimer("Running", base)
	start := base.Add(time.Second)
	timer.StartTime = &start
	timer.IsRunning = true

	require.NoError(t, c.SaveTimer(timer))

	got, err = c.FindTimer(TimerFilter{})
	require.NoError(t, err)
	assert.Equal(t, timer, got)

	label := "Running"
	got, err = c.FindTimer(TimerFilter{ActivityLabel: &label})
	require.NoError(t, err)
	assert.Equal(t, timer.ID, got.ID)

	other := "Reading"
	got, err = c.FindTimer(TimerFilter{ActivityLabel: &other})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindTimerPrefersMostRecent(t *testing.T) {
	c := newTestClient(t)

	older := models.NewTimer("A", base)
	newer := models.NewTimer("B", base.Add(time.Hour))

	require.NoError(t, c.SaveTimer(newer))
	require.NoError(t, c.SaveTimer(older))

	got, err := c.FindTimer(TimerFilter{})
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)

	timers, err := c.Timers()
	require.NoError(t, err)
	require.Len(t, timers, 2)
	assert.Equal(t, newer.ID, timers[0].ID)
	assert.Equal(t, older.ID, timers[1].ID)
}

func TestDeleteTimer(t *testing.T) {
	c := newTestClient(t)

	timer := models.NewTimer("A", base)
	require.NoError(t, c.SaveTimer(timer))
	require.NoError(t, c.DeleteTimer(timer.ID))

	got, err := c.FindTimer(TimerFilter{})
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, c.DeleteTimer("missing"))
}

func TestDeleteAllTimers(t *testing.T) {
	c := newTestClient(t)

	for i := range 3 {
		require.NoError(t, c.SaveTimer(models.NewTimer("A", base.Add(time.Duration(i)))))
	}

	require.NoError(t, c.DeleteAllTimers())

	timers, err := c.Timers()
	require.NoError(t, err)
	assert.Empty(t, timers)
}

func TestActivities(t *testing.T) {
	c := newTestClient(t)

	a := &models.Activity{
		Title:     "Push-ups",
		CreatedAt: base,
		Repeats: []models.Repeat{
			{Date: base, Time: 90 * time.Second},
		},
	}

	require.NoError(t, c.SaveActivity(a))

	got, err := c.GetActivity("Push-ups")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	missing, err := c.GetActivity("Squats")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, c.SaveActivity(&models.Activity{Title: "Squats", CreatedAt: base}))

	err = c.RenameActivity("Push-ups", "Squats")
	assert.True(t, IsExists(err), "got %v", err)

	err = c.RenameActivity("Lunges", "Planks")
	assert.True(t, IsNotFound(err), "got %v", err)

	require.NoError(t, c.RenameActivity("Push-ups", "Pull-ups"))

	got, err = c.GetActivity("Pull-ups")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pull-ups", got.Title)
	assert.Len(t, got.Repeats, 1)

	all, err := c.Activities()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, c.DeleteActivity("Squats"))
	assert.True(t, IsNotFound(c.DeleteActivity("Squats")))
}

func TestSecondOpenIsUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locked.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestReopen(t *testing.T) {
	c := newTestClient(t)

	timer := models.NewTimer("A", base)
	require.NoError(t, c.SaveTimer(timer))

	require.NoError(t, c.Close())
	require.NoError(t, c.Open())

	got, err := c.FindTimer(TimerFilter{})
	require.NoError(t, err)
	assert.Equal(t, timer.ID, got.ID)
}

func TestMigrateLegacyTimers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	legacy := `{"activity_title":"Meditation","is_running":false,` +
		`"start_interval":1700000000.5,"last_pause_interval":0,` +
		`"total_pause_duration":12.25}`

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket([]byte(timerBucket))
		if err != nil {
			return err
		}

		return b.Put([]byte("legacy-1"), []byte(legacy))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	got, err := c.FindTimer(TimerFilter{})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "legacy-1", got.ID)
	assert.Equal(t, "Meditation", got.Label())
	require.NotNil(t, got.StartTime)
	assert.Equal(t, time.Unix(1700000000, 500_000_000).UTC(), *got.StartTime)
	assert.Nil(t, got.LastPauseTime, "zero sentinel must become nil")
	assert.Equal(t, 12250*time.Millisecond, got.TotalPauseDuration)
	assert.Equal(t, *got.StartTime, got.CreatedAt)

	err = c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(metaBucket)).Get([]byte(schemaVersionKey))
		assert.Equal(t, "1", string(v))

		return nil
	})
	require.NoError(t, err)
}

func TestClosedClientIsUnavailable(t *testing.T) {
	c, err := NewClient(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = c.FindTimer(TimerFilter{})
	assert.ErrorIs(t, err, ErrUnavailable)

	err = c.SaveTimer(models.NewTimer("A", base))
	assert.ErrorIs(t, err, ErrUnavailable)
}
