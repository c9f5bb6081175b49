package store

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/elapsed/internal/models"
)

const (
	schemaVersionKey = "schema_version"
	schemaVersion    = 1
)

// legacyTimer is the version 0 timer record. Timestamps are seconds since the
// unix epoch and a zero value means "unset".
type legacyTimer struct {
	ActivityTitle      *string `json:"activity_title"`
	StartInterval      float64 `json:"start_interval"`
	LastPauseInterval  float64 `json:"last_pause_interval"`
	TotalPauseDuration float64 `json:"total_pause_duration"`
	IsRunning          bool    `json:"is_running"`
}

func fromEpochSeconds(secs float64) *time.Time {
	if secs == 0 {
		return nil
	}

	whole, frac := math.Modf(secs)
	t := time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()

	return &t
}

func isLegacyTimer(v []byte) bool {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(v, &fields); err != nil {
		return false
	}

	_, hasStart := fields["start_interval"]
	_, hasID := fields["id"]

	return hasStart && !hasID
}

func migrateTimers(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(timerBucket))

	type entry struct {
		key   []byte
		value []byte
	}

	var pending []entry

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		if !isLegacyTimer(v) {
			continue
		}

		var old legacyTimer

		err := json.Unmarshal(v, &old)
		if err != nil {
			return err
		}

		t := models.Timer{
			ID:                 string(k),
			ActivityLabel:      old.ActivityTitle,
			StartTime:          fromEpochSeconds(old.StartInterval),
			LastPauseTime:      fromEpochSeconds(old.LastPauseInterval),
			TotalPauseDuration: time.Duration(old.TotalPauseDuration * float64(time.Second)),
			IsRunning:          old.IsRunning,
		}

		if t.StartTime != nil {
			t.CreatedAt = *t.StartTime
		}

		b, err := json.Marshal(&t)
		if err != nil {
			return err
		}

		pending = append(pending, entry{
			key:   append([]byte(nil), k...),
			value: b,
		})
	}

	// bolt cursors must not be used across modifications of the bucket
	for _, e := range pending {
		err := bucket.Put(e.key, e.value)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) migrate(tx *bolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	version := 0
	if v := meta.Get([]byte(schemaVersionKey)); v != nil {
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return err
		}

		version = n
	}

	if version >= schemaVersion {
		return nil
	}

	err := migrateTimers(tx)
	if err != nil {
		return err
	}

	return meta.Put(
		[]byte(schemaVersionKey),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}
