// Package store connects to the data store and manages timers and activities
package store

import (
	"cmp"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/elapsed/internal/apperr"
	"github.com/ayoisaiah/elapsed/internal/models"
)

const (
	timerBucket    = "timers"
	activityBucket = "activities"
	metaBucket     = "meta"
)

var (
	// ErrUnavailable is returned when the database cannot be opened.
	ErrUnavailable = &apperr.Error{
		Message: "store unavailable: is elapsed already running? Only one instance can hold the database at a time",
	}

	errActivityNotFound = &apperr.Error{
		Message: "activity %q does not exist",
	}

	errActivityExists = &apperr.Error{
		Message: "an activity named %q already exists",
	}
)

// IsNotFound reports whether err signals a missing activity.
func IsNotFound(err error) bool {
	return errors.Is(err, errActivityNotFound)
}

// IsExists reports whether err signals an activity title collision.
func IsExists(err error) bool {
	return errors.Is(err, errActivityExists)
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

// view runs fn in a read-only transaction.
func (c *Client) view(fn func(*bolt.Tx) error) error {
	if c.DB == nil {
		return ErrUnavailable.Wrap(bolt.ErrDatabaseNotOpen)
	}

	err := c.View(fn)
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrUnavailable.Wrap(err)
	}

	return err
}

// update runs fn in a read-write transaction.
func (c *Client) update(fn func(*bolt.Tx) error) error {
	if c.DB == nil {
		return ErrUnavailable.Wrap(bolt.ErrDatabaseNotOpen)
	}

	err := c.Update(fn)
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrUnavailable.Wrap(err)
	}

	return err
}

func (c *Client) FindTimer(filter TimerFilter) (*models.Timer, error) {
	timers, err := c.Timers()
	if err != nil {
		return nil, err
	}

	var matches []*models.Timer

	for _, t := range timers {
		if filter.ActivityLabel != nil && t.Label() != *filter.ActivityLabel {
			continue
		}

		matches = append(matches, t)
	}

	if len(matches) == 0 {
		return nil, nil
	}

	if len(matches) > 1 {
		slog.Warn(
			"found more than one timer record, using the most recent",
			slog.Int("count", len(matches)),
			slog.String("id", matches[0].ID),
		)
	}

	return matches[0], nil
}

func (c *Client) Timers() ([]*models.Timer, error) {
	var timers []*models.Timer

	err := c.view(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).ForEach(func(_, v []byte) error {
			var t models.Timer

			err := json.Unmarshal(v, &t)
			if err != nil {
				return err
			}

			timers = append(timers, &t)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(timers, func(a, b *models.Timer) int {
		if n := b.CreatedAt.Compare(a.CreatedAt); n != 0 {
			return n
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return timers, nil
}

func (c *Client) SaveTimer(t *models.Timer) error {
	value, err := json.Marshal(t)
	if err != nil {
		return err
	}

	return c.update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Put([]byte(t.ID), value)
	})
}

func (c *Client) DeleteTimer(id string) error {
	return c.update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Delete([]byte(id))
	})
}

func (c *Client) DeleteAllTimers() error {
	return c.update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(timerBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucket([]byte(timerBucket))

		return err
	})
}

func (c *Client) Activities() ([]*models.Activity, error) {
	var activities []*models.Activity

	err := c.view(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(activityBucket)).ForEach(func(_, v []byte) error {
			var a models.Activity

			err := json.Unmarshal(v, &a)
			if err != nil {
				return err
			}

			activities = append(activities, &a)

			return nil
		})
	})

	return activities, err
}

func (c *Client) GetActivity(title string) (*models.Activity, error) {
	var a *models.Activity

	err := c.view(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(activityBucket)).Get([]byte(title))
		if len(v) == 0 {
			return nil
		}

		a = &models.Activity{}

		return json.Unmarshal(v, a)
	})

	return a, err
}

func (c *Client) SaveActivity(a *models.Activity) error {
	value, err := json.Marshal(a)
	if err != nil {
		return err
	}

	return c.update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(activityBucket)).Put([]byte(a.Title), value)
	})
}

func (c *Client) RenameActivity(oldTitle, newTitle string) error {
	return c.update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(activityBucket))

		v := b.Get([]byte(oldTitle))
		if len(v) == 0 {
			return errActivityNotFound.Fmt(oldTitle)
		}

		if len(b.Get([]byte(newTitle))) != 0 {
			return errActivityExists.Fmt(newTitle)
		}

		var a models.Activity

		err := json.Unmarshal(v, &a)
		if err != nil {
			return err
		}

		a.Title = newTitle

		value, err := json.Marshal(&a)
		if err != nil {
			return err
		}

		err = b.Put([]byte(newTitle), value)
		if err != nil {
			return err
		}

		return b.Delete([]byte(oldTitle))
	})
}

func (c *Client) DeleteActivity(title string) error {
	return c.update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(activityBucket))

		if len(b.Get([]byte(title))) == 0 {
			return errActivityNotFound.Fmt(title)
		}

		return b.Delete([]byte(title))
	})
}

func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrUnavailable.Wrap(err)
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{
		DB:   db,
		path: dbPath,
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{timerBucket, activityBucket, metaBucket} {
			_, err = tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
