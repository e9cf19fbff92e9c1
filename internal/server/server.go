// Package server exposes the session API over HTTP+JSON. All state
// lives in the session store; handlers are thin glue between the wire
// format and the domain packages.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/abhisek/mindweave/internal/chat"
	"github.com/abhisek/mindweave/internal/mapgen"
	"github.com/abhisek/mindweave/internal/questions"
	"github.com/abhisek/mindweave/internal/session"
	"github.com/abhisek/mindweave/internal/store"
)

// Options configures a Server.
type Options struct {
	// AllowedOrigins is the CORS origin whitelist. Empty means all.
	AllowedOrigins []string

	// EventRepo records operational events. Nil disables recording.
	EventRepo store.EventRepo

	Logger *slog.Logger
}

// Server holds the API dependencies and builds the HTTP handler.
type Server struct {
	sessions  session.Store
	questions *questions.Service
	mapgen    *mapgen.Generator
	chat      *chat.Service
	events    store.EventRepo
	origins   []string
	log       *slog.Logger
}

// New assembles a Server from its services.
func New(sessions session.Store, qs *questions.Service, mg *mapgen.Generator, cs *chat.Service, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		sessions:  sessions,
		questions: qs,
		mapgen:    mg,
		chat:      cs,
		events:    opts.EventRepo,
		origins:   opts.AllowedOrigins,
		log:       log,
	}
}

// Handler returns the routed handler with CORS and request logging
// applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Session
	mux.HandleFunc("POST /api/session/init", s.handleInitSession)
	mux.HandleFunc("GET /api/session/data", s.handleSessionData)
	mux.HandleFunc("GET /api/session/progress", s.handleProgress)

	// Questions
	mux.HandleFunc("POST /api/questions/generate", s.handleGenerateQuestions)
	mux.HandleFunc("POST /api/questions/answer", s.handleAnswer)
	mux.HandleFunc("POST /api/questions/regenerate", s.handleRegenerate)
	mux.HandleFunc("POST /api/questions/check-unlockable", s.handleCheckUnlockable)

	// Mindmap
	mux.HandleFunc("POST /api/mindmap/create", s.handleCreateMindmap)
	mux.HandleFunc("POST /api/mindmap/expand", s.handleExpandNode)
	mux.HandleFunc("POST /api/mindmap/status", s.handleUpdateStatus)
	mux.HandleFunc("GET /api/node/{id}", s.handleNodeData)
	mux.HandleFunc("GET /api/map/view", s.handleMapView)

	// Chat
	mux.HandleFunc("GET /api/chat/{nodeID}", s.handleChatHistory)
	mux.HandleFunc("POST /api/chat/{nodeID}", s.handleChatMessage)

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:         86400,
	})

	return c.Handler(s.logRequests(mux))
}

// logRequests records method, path, status and duration for every
// request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// PurgeIdleLoop expires idle sessions on an interval until the context
// is cancelled. Expired sessions are recorded as session events.
func (s *Server) PurgeIdleLoop(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, id := range s.sessions.PurgeIdle(maxIdle) {
				s.log.Info("session expired", "session_id", id)
				s.recordSessionEvent(ctx, store.SessionEventData{SessionID: id, Action: "expire"})
			}
		}
	}
}

func (s *Server) recordSessionEvent(ctx context.Context, data store.SessionEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendSessionEvent(ctx, data); err != nil {
		s.log.Warn("record session event", "error", err)
	}
}

func (s *Server) recordGradingEvent(ctx context.Context, data store.GradingEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendGradingEvent(ctx, data); err != nil {
		s.log.Warn("record grading event", "error", err)
	}
}
