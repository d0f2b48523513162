// Package http exposes playback sessions over a JSON API. Handlers are
// hand-rolled on chi; the server drives controller ticks from request
// time, so a remote host can poll /tick at its frame rate.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/strobe/internal/logging"
	presentation "github.com/aretw0/strobe/internal/presentation/graph"
	"github.com/aretw0/strobe/pkg/cue"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/playback"
	"github.com/aretw0/strobe/pkg/ports"
	"github.com/aretw0/strobe/pkg/registry"
	"github.com/aretw0/strobe/pkg/session"
)

// Server handles the session API.
type Server struct {
	manager  *session.Manager
	registry *registry.Registry
	history  ports.HistoryStore
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithRegistry serves the algorithm catalog on /algorithms.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Server) {
		s.registry = r
	}
}

// WithHistory serves performance records on /history.
func WithHistory(store ports.HistoryStore) Option {
	return func(s *Server) {
		s.history = store
	}
}

// WithLogger sets the server's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the session manager.
func NewHandler(manager *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		manager:  manager,
		registry: registry.Default(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/algorithms", s.listAlgorithms)
	r.Get("/history", s.listHistory)
	r.Delete("/history", s.clearHistory)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Get("/", s.listSessions)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.sessionStatus)
			r.Delete("/", s.deleteSession)
			r.Post("/start", s.start)
			r.Post("/pause", s.pause)
			r.Post("/reset", s.reset)
			r.Post("/step-forward", s.stepForward)
			r.Post("/step-backward", s.stepBackward)
			r.Post("/tick", s.tick)
			r.Put("/speed", s.setSpeed)
			r.Get("/cues", s.drainCues)
			r.Get("/mermaid", s.exportMermaid)
		})
	})
	return r
}

// Status is the session state document returned by most endpoints.
type Status struct {
	ID           string               `json:"id"`
	Family       domain.Family        `json:"family"`
	Algorithm    string               `json:"algorithm"`
	State        domain.PlaybackState `json:"state"`
	Cursor       int                  `json:"cursor"`
	Total        int                  `json:"total"`
	Description  string               `json:"description"`
	Speed        float64              `json:"speed"`
	Comparisons  int                  `json:"comparisons"`
	Mutations    int                  `json:"mutations"`
	GenerationMS float64              `json:"generation_ms"`
	StepApplied  bool                 `json:"step_applied,omitempty"`
}

func newStatus(sess *session.Session, c *playback.Controller) Status {
	cursor, total := c.Progress()
	counters := c.Counters()
	return Status{
		ID:           sess.ID,
		Family:       c.Family(),
		Algorithm:    c.Algorithm(),
		State:        c.State(),
		Cursor:       cursor,
		Total:        total,
		Description:  c.Description(),
		Speed:        c.Speed(),
		Comparisons:  counters.Comparisons,
		Mutations:    counters.Mutations,
		GenerationMS: float64(c.GenerationTime()) / float64(time.Millisecond),
	}
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var spec session.RunSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := s.manager.Create(spec)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var status Status
	_ = sess.With(func(c *playback.Controller) error {
		status = newStatus(sess, c)
		return nil
	})
	s.writeJSON(w, http.StatusCreated, status)
}

func (s *Server) listSessions(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"sessions": s.manager.List()})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.Delete(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sessionStatus(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session, c *playback.Controller) error {
		s.writeJSON(w, http.StatusOK, newStatus(sess, c))
		return nil
	})
}

func (s *Server) start(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session, c *playback.Controller) error {
		if err := c.Start(r.Context()); err != nil {
			s.writeError(w, err)
			return nil
		}
		s.writeJSON(w, http.StatusOK, newStatus(sess, c))
		return nil
	})
}

func (s *Server) pause(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session, c *playback.Controller) error {
		c.Pause(r.Context())
		s.writeJSON(w, http.StatusOK, newStatus(sess, c))
		return nil
	})
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session, c *playback.Controller) error {
		c.Reset(r.Context())
		s.writeJSON(w, http.StatusOK, newStatus(sess, c))
		return nil
	})
}

func (s *Server) stepForward(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session, c *playback.Controller) error {
		c.StepForward(r.Context())
		s.writeJSON(w, http.StatusOK, newStatus(sess, c))
		return nil
	})
}

func (s *Server) stepBackward(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session, c *playback.Controller) error {
		c.StepBackward(r.Context())
		s.writeJSON(w, http.StatusOK, newStatus(sess, c))
		return nil
	})
}

func (s *Server) tick(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session, c *playback.Controller) error {
		applied := c.Tick(r.Context(), time.Now())
		status := newStatus(sess, c)
		status.StepApplied = applied
		s.writeJSON(w, http.StatusOK, status)
		return nil
	})
}

func (s *Server) setSpeed(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Multiplier float64 `json:"multiplier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.withSession(w, r, func(sess *session.Session, c *playback.Controller) error {
		if err := c.SetSpeed(body.Multiplier); err != nil {
			s.writeError(w, err)
			return nil
		}
		s.writeJSON(w, http.StatusOK, newStatus(sess, c))
		return nil
	})
}

func (s *Server) drainCues(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(_ *session.Session, c *playback.Controller) error {
		events := c.DrainCues()
		if events == nil {
			events = []cue.Event{}
		}
		s.writeJSON(w, http.StatusOK, map[string][]cue.Event{"cues": events})
		return nil
	})
}

// exportMermaid renders the session's current graph snapshot as Mermaid
// markup, so a frame can be pasted into documentation or an issue.
func (s *Server) exportMermaid(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(_ *session.Session, c *playback.Controller) error {
		snapshot, ok := c.Snapshot().(domain.GraphSnapshot)
		if !ok {
			http.Error(w, "session has no graph snapshot to export", http.StatusConflict)
			return nil
		}
		w.Header().Set("Content-Type", "text/vnd.mermaid")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(presentation.GenerateMermaid(snapshot))); err != nil {
			s.logger.Error("failed to write mermaid export", "err", err)
		}
		return nil
	})
}

func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	family := domain.Family(r.URL.Query().Get("family"))
	entries := s.registry.List(family)

	type item struct {
		Family      domain.Family `json:"family"`
		Slug        string        `json:"slug"`
		DisplayName string        `json:"display_name"`
	}
	items := make([]item, 0, len(entries))
	for _, e := range entries {
		items = append(items, item{Family: e.Family, Slug: e.Slug, DisplayName: e.DisplayName})
	}
	s.writeJSON(w, http.StatusOK, map[string][]item{"algorithms": items})
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		http.Error(w, "history not configured", http.StatusNotFound)
		return
	}
	records, err := s.history.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list history", "err", err)
		http.Error(w, "failed to list history", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []domain.PerformanceRecord{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]domain.PerformanceRecord{"records": records})
}

func (s *Server) clearHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		http.Error(w, "history not configured", http.StatusNotFound)
		return
	}
	if err := s.history.Clear(r.Context()); err != nil {
		s.logger.Error("failed to clear history", "err", err)
		http.Error(w, "failed to clear history", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session, *playback.Controller) error) {
	sess, err := s.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	_ = sess.With(func(c *playback.Controller) error {
		return fn(sess, c)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownAlgorithm),
		errors.Is(err, domain.ErrMissingInput),
		errors.Is(err, domain.ErrInvalidSpeed):
		code = http.StatusBadRequest
	}
	http.Error(w, err.Error(), code)
}
