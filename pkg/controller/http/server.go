package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MannerMan/rocket-fuel/pkg/usecase"
	"github.com/MannerMan/rocket-fuel/pkg/utils/logging"
)

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	verifier *Verifier
}

type Options func(*Server)

// WithVerifier installs bearer-token verification for the mutating routes.
func WithVerifier(v *Verifier) Options {
	return func(s *Server) {
		s.verifier = v
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", s.handleSearchQuestions)
		r.Get("/questions/latest", s.handleLatestQuestions)
		r.Get("/questions/thread/{threadID}", s.handleGetQuestionByThread)
		r.Post("/questions/thread/{threadID}/upvote", s.handleUpVoteQuestion)
		r.Post("/questions/thread/{threadID}/downvote", s.handleDownVoteQuestion)
		r.Get("/questions/{questionID}", s.handleGetQuestion)
		r.Get("/questions/{questionID}/answers", s.handleGetAnswers)

		r.Get("/answers/thread/{threadID}", s.handleGetAnswerByThread)
		r.Post("/answers/thread/{threadID}/upvote", s.handleUpVoteAnswer)
		r.Post("/answers/thread/{threadID}/downvote", s.handleDownVoteAnswer)

		r.Get("/tags", s.handleGetTags)
		r.Get("/tags/popular", s.handleGetPopularTags)

		// Routes mutating on behalf of a user need a resolved principal.
		r.Group(func(r chi.Router) {
			r.Use(principalMiddleware(s.verifier))
			r.Post("/questions", s.handleCreateQuestion)
			r.Post("/questions/{questionID}/answers", s.handleCreateAnswer)
			r.Put("/questions/{questionID}/answers/{answerID}", s.handleUpdateAnswer)
			r.Post("/answers/{answerID}/accept", s.handleAcceptAnswer)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err)
	}
}
