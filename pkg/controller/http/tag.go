package http

import (
	"net/http"

	"github.com/MannerMan/rocket-fuel/pkg/utils/errutil"
)

func (s *Server) handleGetTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tags, err := s.uc.Tag.GetTags(ctx, r.URL.Query().Get("search"))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, tags)
}

func (s *Server) handleGetPopularTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tags, err := s.uc.Tag.GetPopularTags(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, tags)
}
