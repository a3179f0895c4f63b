package httpapi

import (
	"net/http"

	appTopic "github.com/forum-hub/forum-hub/internal/application/topic"
)

type topicCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) createTopic(w http.ResponseWriter, r *http.Request) {
	var req topicCreateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "title is required")
		return
	}
	authorID, err := actingUser(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "missing or invalid X-User-ID")
		return
	}
	t, err := s.topicSvc.Create(r.Context(), appTopic.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "action failed, try again")
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 50, 200)
	topics, err := s.topicSvc.ListModerated(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "action failed, try again")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"topics": topics})
}

func (s *Server) getTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := parseIDParam(r, "topicId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid topic id")
		return
	}
	t, err := s.topicSvc.Get(r.Context(), topicID)
	if err != nil {
		respondReactionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}
