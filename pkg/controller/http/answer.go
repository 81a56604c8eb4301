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

func answerIDParam(r *http.Request) (types.AnswerID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "answerID"), 10, 64)
	if err != nil {
		return 0, types.NewBadRequest("invalid.answer.id")
	}
	return types.AnswerID(id), nil
}

func (s *Server) handleGetAnswers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questionID, err := questionIDParam(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	answers, err := s.uc.Answer.GetAnswers(ctx, questionID)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, answers)
}

func (s *Server) handleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	questionID, err := questionIDParam(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	defer safe.Close(ctx, r.Body)
	var answer model.Answer
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
		errutil.HandleHTTP(ctx, w, types.NewBadRequest("invalid.request.body"))
		return
	}

	created, err := s.uc.Answer.AnswerQuestion(ctx, principal, &answer, questionID)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusCreated, created)
}

func (s *Server) handleUpdateAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	questionID, err := questionIDParam(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	answerID, err := answerIDParam(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	defer safe.Close(ctx, r.Body)
	var answer model.Answer
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
		errutil.HandleHTTP(ctx, w, types.NewBadRequest("invalid.request.body"))
		return
	}

	if err := s.uc.Answer.UpdateAnswer(ctx, principal, questionID, answerID, &answer); err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAcceptAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	answerID, err := answerIDParam(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}

	if err := s.uc.Answer.MarkAsAcceptedAnswer(ctx, principal, answerID); err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGetAnswerByThread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	answer, err := s.uc.Answer.GetAnswerBySlackID(ctx, threadIDParam(r))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, answer)
}

func (s *Server) handleUpVoteAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.uc.Answer.UpVoteAnswer(ctx, threadIDParam(r)); err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDownVoteAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.uc.Answer.DownVoteAnswer(ctx, threadIDParam(r)); err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
