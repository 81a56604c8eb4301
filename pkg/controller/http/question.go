package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MannerMan/rocket-fuel/pkg/domain/model"
	"github.com/MannerMan/rocket-fuel/pkg/domain/model/auth"
	"github.com/MannerMan/rocket-fuel/pkg/domain/types"
	"github.com/MannerMan/rocket-fuel/pkg/utils/errutil"
	"github.com/MannerMan/rocket-fuel/pkg/utils/safe"
)

// limitParam parses the limit query parameter; absent or malformed values
// mean unspecified, letting the usecase apply its default.
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}

func questionIDParam(r *http.Request) (types.QuestionID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "questionID"), 10, 64)
	if err != nil {
		return 0, types.NewBadRequest("invalid.question.id")
	}
	return types.QuestionID(id), nil
}

func threadIDParam(r *http.Request) types.ThreadID {
	return types.ThreadID(chi.URLParam(r, "threadID"))
}

func (s *Server) handleSearchQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questions, err := s.uc.Question.GetQuestionsBySearchQuery(ctx, r.URL.Query().Get("search"), limitParam(r))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, questions)
}

func (s *Server) handleLatestQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questions, err := s.uc.Question.GetLatestQuestions(ctx, limitParam(r))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, questions)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := questionIDParam(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	question, err := s.uc.Question.GetQuestionByID(ctx, id)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, question)
}

func (s *Server) handleGetQuestionByThread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	question, err := s.uc.Question.GetQuestionBySlackThreadID(ctx, threadIDParam(r))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, question)
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	defer safe.Close(ctx, r.Body)
	var question model.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		errutil.HandleHTTP(ctx, w, types.NewBadRequest("invalid.request.body"))
		return
	}

	created, err := s.uc.Question.CreateQuestion(ctx, principal, &question)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusCreated, created)
}

func (s *Server) handleUpVoteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.uc.Question.UpVoteQuestion(ctx, threadIDParam(r)); err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDownVoteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.uc.Question.DownVoteQuestion(ctx, threadIDParam(r)); err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
