package stats

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/elapsed/activity"
	"github.com/ayoisaiah/elapsed/internal/config"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/internal/timeutil"
	"github.com/ayoisaiah/elapsed/internal/ui"
	"github.com/ayoisaiah/elapsed/timer"
)

// Confirm asks the user a yes/no question.
type Confirm func(question string) (bool, error)

// Reporter prints activities and timers for the command line.
type Reporter struct {
	svc     *activity.Service
	opts    *config.Config
	out     io.Writer
	confirm Confirm
}

// NewReporter returns a Reporter that writes to out.
func NewReporter(
	svc *activity.Service,
	cfg *config.Config,
	out io.Writer,
	confirm Confirm,
) *Reporter {
	return &Reporter{
		svc:     svc,
		opts:    cfg,
		out:     out,
		confirm: confirm,
	}
}

// optDuration formats d, or "-" when there is nothing to show.
func (r *Reporter) optDuration(d *time.Duration) string {
	if d == nil {
		return "-"
	}

	return r.duration(*d)
}

func (r *Reporter) duration(d time.Duration) string {
	return timeutil.TimerString(
		d,
		r.opts.Display.FullFormat,
		r.opts.Display.Milliseconds,
	)
}

// List prints a table of every activity, or their summaries as JSON.
func (r *Reporter) List(asJSON bool) error {
	activities, err := r.svc.List()
	if err != nil {
		return err
	}

	summaries := Summaries(activities)

	if asJSON {
		return WriteJSON(r.out, summaries)
	}

	if len(summaries) == 0 {
		pterm.Info.Println(noActivitiesMsg)
		return nil
	}

	rows := make([][]string, 0, len(summaries))

	for i, s := range summaries {
		last := "-"
		if s.LastRepeat != nil {
			last = s.LastRepeat.Local().Format(r.opts.TimeFormat())
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Title,
			strconv.Itoa(s.Repeats),
			r.optDuration(s.Average),
			ui.Green(r.optDuration(s.Shortest)),
			last,
		})
	}

	return ui.PrintTable(
		r.out,
		[]string{"#", "TITLE", "REPEATS", "AVERAGE", "BEST", "LAST REPEAT"},
		rows,
	)
}

// Show prints the statistics and repeat history of one activity.
func (r *Reporter) Show(title string, asJSON bool) error {
	a, err := r.svc.Get(title)
	if err != nil {
		return err
	}

	d := Details(a)

	if asJSON {
		return WriteJSON(r.out, d)
	}

	fmt.Fprintln(r.out, pterm.DefaultSection.Sprint(a.Title))

	if len(d.History) == 0 {
		pterm.Info.Println(noRepeatsMessage)
		return nil
	}

	ui.PrintKV(r.out, [][2]string{
		{"Repeats", strconv.Itoa(d.Summary.Repeats)},
		{"Total", r.duration(d.Summary.Total)},
		{"Average", r.optDuration(d.Summary.Average)},
		{"Best", ui.Green(r.optDuration(d.Summary.Shortest))},
		{"Worst", ui.Red(r.optDuration(d.Summary.Longest))},
	})

	chart, err := r.historyChart(a)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "\n"+ui.Cyan("History (newest first)"))
	fmt.Fprintln(r.out, chart)

	return nil
}

// historyChart draws one bar per repeat scaled between the best and worst
// times.
func (r *Reporter) historyChart(a *models.Activity) (string, error) {
	shortest, _ := activity.Shortest(a)
	longest, _ := activity.Longest(a)

	var bars pterm.Bars

	for i, rep := range activity.DateSorted(a) {
		scaled := activity.ChartRepresentation(rep, shortest, longest)

		bars = append(bars, pterm.Bar{
			// keep the best repeat visible
			Value: 1 + timeutil.Round(scaled*(chartWidth-1)),
			Label: fmt.Sprintf(
				"%d. %s  %s",
				i+1,
				rep.Date.Local().Format(r.opts.TimeFormat()),
				r.duration(rep.Time),
			),
		})
	}

	return pterm.DefaultBarChart.
		WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithWidth(chartWidth).
		WithBars(bars).
		Srender()
}

// Timers prints every persisted timer record.
func (r *Reporter) Timers(timers []*models.Timer, now time.Time) error {
	if len(timers) == 0 {
		pterm.Info.Println(noTimersMsg)
		return nil
	}

	rows := make([][]string, 0, len(timers))

	for i, t := range timers {
		elapsed := "-"
		if d, ok := t.ElapsedAt(now); ok {
			elapsed = r.duration(d)
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.Label(),
			ui.State(timer.StateOf(t).String()),
			elapsed,
			t.CreatedAt.Local().Format(r.opts.TimeFormat()),
		})
	}

	return ui.PrintTable(
		r.out,
		[]string{"#", "ACTIVITY", "STATE", "ELAPSED", "CREATED"},
		rows,
	)
}
