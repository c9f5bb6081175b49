package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/elapsed/activity"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/internal/timeutil"
	"github.com/ayoisaiah/elapsed/timer"
)

const shutdownTimeout = 5 * time.Second

// TimerStatus is the live view of the current timer.
type TimerStatus struct {
	Timer          *models.Timer `json:"timer"`
	ElapsedSeconds *float64      `json:"elapsed_seconds"`
	State          string        `json:"state"`
}

type httpError struct {
	err    error
	status int
}

func (e *httpError) Error() string {
	return e.err.Error()
}

func notFound(err error) error {
	return &httpError{err: err, status: http.StatusNotFound}
}

// errorHandler converts a returned error into a JSON error response.
type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	status := http.StatusInternalServerError

	var herr *httpError
	if errors.As(err, &herr) {
		status = herr.status
	} else {
		slog.Error(
			"request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := WriteJSON(w, v)
	if err != nil {
		slog.Warn("unable to write response", slog.Any("error", err))
	}
}

// Server exposes timers and activities as a read-only JSON API.
type Server struct {
	timers *timer.Manager
	svc    *activity.Service
	router *mux.Router
}

// NewServer returns a Server for the given manager and activity service.
func NewServer(m *timer.Manager, svc *activity.Service) *Server {
	s := &Server{
		timers: m,
		svc:    svc,
		router: mux.NewRouter(),
	}

	s.router.Handle("/api/timer", errorHandler(s.currentTimer)).
		Methods(http.MethodGet)
	s.router.Handle("/api/activities", errorHandler(s.activities)).
		Methods(http.MethodGet)
	s.router.Handle("/api/activities/{title}", errorHandler(s.activity)).
		Methods(http.MethodGet)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// GET /api/timer
func (s *Server) currentTimer(w http.ResponseWriter, _ *http.Request) error {
	sess, err := s.timers.RecoverActive()
	if err != nil {
		return err
	}

	if sess == nil {
		return notFound(errors.New(noTimersMsg))
	}

	status := TimerStatus{
		Timer: sess.Snapshot(),
		State: sess.State().String(),
	}

	if d, ok := sess.Elapsed(); ok {
		secs := timeutil.Seconds(d)
		status.ElapsedSeconds = &secs
	}

	writeJSON(w, http.StatusOK, status)

	return nil
}

// GET /api/activities
func (s *Server) activities(w http.ResponseWriter, _ *http.Request) error {
	list, err := s.svc.List()
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, Summaries(list))

	return nil
}

// GET /api/activities/{title}
func (s *Server) activity(w http.ResponseWriter, r *http.Request) error {
	a, err := s.svc.Get(mux.Vars(r)["title"])
	if err != nil {
		if activity.IsNotFound(err) {
			return notFound(err)
		}

		return err
	}

	writeJSON(w, http.StatusOK, Details(a))

	return nil
}

// ListenAndServe serves the API on port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port uint) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", port),
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	pterm.Info.Printfln("serving on http://%s/api", srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeout,
	)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
