// Package activity records completed timer runs as repeats of named
// activities and derives statistics from them
package activity

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/elapsed/internal/clock"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/store"
)

// IsNotFound reports whether err signals a missing activity.
func IsNotFound(err error) bool {
	return errors.Is(err, errNotFound) || store.IsNotFound(err)
}

// Average returns the mean time of all repeats.
func Average(a *models.Activity) (time.Duration, bool) {
	if len(a.Repeats) == 0 {
		return 0, false
	}

	var total time.Duration
	for _, r := range a.Repeats {
		total += r.Time
	}

	return total / time.Duration(len(a.Repeats)), true
}

// Shortest returns the fastest repeat time.
func Shortest(a *models.Activity) (time.Duration, bool) {
	if len(a.Repeats) == 0 {
		return 0, false
	}

	return slices.MinFunc(a.Repeats, compareTime).Time, true
}

// Longest returns the slowest repeat time.
func Longest(a *models.Activity) (time.Duration, bool) {
	if len(a.Repeats) == 0 {
		return 0, false
	}

	return slices.MaxFunc(a.Repeats, compareTime).Time, true
}

// LastRepeat returns the most recent repeat.
func LastRepeat(a *models.Activity) (models.Repeat, bool) {
	sorted := DateSorted(a)
	if len(sorted) == 0 {
		return models.Repeat{}, false
	}

	return sorted[0], true
}

// DateSorted returns the repeats ordered from newest to oldest.
func DateSorted(a *models.Activity) []models.Repeat {
	sorted := slices.Clone(a.Repeats)

	slices.SortStableFunc(sorted, func(x, y models.Repeat) int {
		return y.Date.Compare(x.Date)
	})

	return sorted
}

// ChartRepresentation maps a repeat time onto [0, 1] relative to floor and
// ceil. A degenerate range maps everything to 1.
func ChartRepresentation(r models.Repeat, floor, ceil time.Duration) float64 {
	if ceil <= floor {
		return 1
	}

	return float64(r.Time-floor) / float64(ceil-floor)
}

func compareTime(x, y models.Repeat) int {
	switch {
	case x.Time < y.Time:
		return -1
	case x.Time > y.Time:
		return 1
	}

	return 0
}

// Service manages activities in the store.
type Service struct {
	db    store.DB
	clock clock.Clock
}

// NewService returns an activity service backed by db.
func NewService(db store.DB, c clock.Clock) *Service {
	if c == nil {
		c = clock.System
	}

	return &Service{db: db, clock: c}
}

// Record appends a repeat of duration d to the named activity, creating it if
// necessary.
func (s *Service) Record(title string, d time.Duration) (*models.Activity, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errEmptyTitle
	}

	now := s.clock.Now()

	a, err := s.db.GetActivity(title)
	if err != nil {
		return nil, err
	}

	if a == nil {
		a = &models.Activity{
			Title:     title,
			CreatedAt: now,
		}
	}

	a.Repeats = append(a.Repeats, models.Repeat{
		Date: now,
		Time: d,
	})

	err = s.db.SaveActivity(a)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Get returns the named activity.
func (s *Service) Get(title string) (*models.Activity, error) {
	a, err := s.db.GetActivity(title)
	if err != nil {
		return nil, err
	}

	if a == nil {
		return nil, errNotFound.Fmt(title)
	}

	return a, nil
}

// List returns all activities in natural title order.
func (s *Service) List() ([]*models.Activity, error) {
	activities, err := s.db.Activities()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(activities, func(x, y *models.Activity) int {
		switch {
		case natural.Less(x.Title, y.Title):
			return -1
		case natural.Less(y.Title, x.Title):
			return 1
		}

		return 0
	})

	return activities, nil
}

// Rename changes the title of an activity.
func (s *Service) Rename(oldTitle, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return errEmptyTitle
	}

	if oldTitle == newTitle {
		_, err := s.Get(oldTitle)
		return err
	}

	return s.db.RenameActivity(oldTitle, newTitle)
}

// Delete removes an activity and all its repeats.
func (s *Service) Delete(title string) error {
	return s.db.DeleteActivity(title)
}

// RemoveRepeat deletes the repeat at index i of the date-sorted repeats
// (0 is the most recent).
func (s *Service) RemoveRepeat(title string, i int) error {
	a, err := s.Get(title)
	if err != nil {
		return err
	}

	sorted := DateSorted(a)
	if i < 0 || i >= len(sorted) {
		return errRepeatIndex.Fmt(title, i+1)
	}

	target := sorted[i]

	idx := slices.Index(a.Repeats, target)
	a.Repeats = slices.Delete(a.Repeats, idx, idx+1)

	return s.db.SaveActivity(a)
}
