// Package stats reports activity statistics on the terminal and over HTTP
package stats

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/ayoisaiah/elapsed/activity"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/internal/timeutil"
)

const (
	barChartChar     = "▇"
	chartWidth       = 40
	noActivitiesMsg  = "No activities recorded yet"
	noTimersMsg      = "No timers in progress"
	noRepeatsMessage = "No repeats recorded yet"
)

// Summary condenses an activity into its headline numbers. Average, Shortest
// and Longest are nil for an activity without repeats.
type Summary struct {
	LastRepeat *time.Time
	Average    *time.Duration
	Shortest   *time.Duration
	Longest    *time.Duration
	CreatedAt  time.Time
	Title      string
	Repeats    int
	Total      time.Duration
}

type summaryJSON struct {
	LastRepeat *time.Time `json:"last_repeat,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	Title      string     `json:"title"`
	Repeats    int        `json:"repeats"`
	Total      float64    `json:"total_seconds"`
	Average    *float64   `json:"average_seconds"`
	Shortest   *float64   `json:"shortest_seconds"`
	Longest    *float64   `json:"longest_seconds"`
}

func seconds(d *time.Duration) *float64 {
	if d == nil {
		return nil
	}

	secs := timeutil.Seconds(*d)

	return &secs
}

func optional(d time.Duration, ok bool) *time.Duration {
	if !ok {
		return nil
	}

	return &d
}

// MarshalJSON renders durations as fractional seconds.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryJSON{
		LastRepeat: s.LastRepeat,
		CreatedAt:  s.CreatedAt,
		Title:      s.Title,
		Repeats:    s.Repeats,
		Total:      timeutil.Seconds(s.Total),
		Average:    seconds(s.Average),
		Shortest:   seconds(s.Shortest),
		Longest:    seconds(s.Longest),
	})
}

// Summarize computes the summary of a.
func Summarize(a *models.Activity) Summary {
	s := Summary{
		CreatedAt: a.CreatedAt,
		Title:     a.Title,
		Repeats:   len(a.Repeats),
	}

	for _, r := range a.Repeats {
		s.Total += r.Time
	}

	s.Average = optional(activity.Average(a))
	s.Shortest = optional(activity.Shortest(a))
	s.Longest = optional(activity.Longest(a))

	if last, ok := activity.LastRepeat(a); ok {
		s.LastRepeat = &last.Date
	}

	return s
}

// Summaries summarizes each activity, keeping the input order.
func Summaries(activities []*models.Activity) []Summary {
	out := make([]Summary, 0, len(activities))

	for _, a := range activities {
		out = append(out, Summarize(a))
	}

	return out
}

// RepeatEntry is one repeat of an activity as shown in its history.
type RepeatEntry struct {
	Date  time.Time `json:"date"`
	Index int       `json:"index"`
	Time  float64   `json:"seconds"`
	// Bar is the repeat time relative to the shortest and longest repeat
	Bar float64 `json:"bar"`
}

// Detail is an activity summary together with its repeat history, newest
// first.
type Detail struct {
	Summary Summary       `json:"summary"`
	History []RepeatEntry `json:"history"`
}

// Details returns the summary and history of a.
func Details(a *models.Activity) Detail {
	sum := Summarize(a)

	sorted := activity.DateSorted(a)

	d := Detail{
		Summary: sum,
		History: make([]RepeatEntry, 0, len(sorted)),
	}

	shortest, _ := activity.Shortest(a)
	longest, _ := activity.Longest(a)

	for i, r := range sorted {
		bar := activity.ChartRepresentation(r, shortest, longest)

		d.History = append(d.History, RepeatEntry{
			Index: i + 1,
			Date:  r.Date,
			Time:  timeutil.Seconds(r.Time),
			Bar:   math.Round(bar*1000) / 1000,
		})
	}

	return d
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
