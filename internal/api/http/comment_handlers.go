package httpapi

import (
	"net/http"

	appComment "github.com/forum-hub/forum-hub/internal/application/comment"
)

type commentCreateRequest struct {
	Text string `json:"text"`
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	topicID, err := parseIDParam(r, "topicId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid topic id")
		return
	}
	var req commentCreateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "text is required")
		return
	}
	authorID, err := actingUser(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "missing or invalid X-User-ID")
		return
	}
	c, err := s.commentSvc.Create(r.Context(), appComment.CreateInput{
		TopicID:  topicID,
		AuthorID: authorID,
		Text:     req.Text,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "action failed, try again")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	topicID, err := parseIDParam(r, "topicId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid topic id")
		return
	}
	comments, err := s.commentSvc.ListByTopic(r.Context(), topicID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "action failed, try again")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

func (s *Server) getComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseIDParam(r, "commentId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid comment id")
		return
	}
	c, err := s.commentSvc.Get(r.Context(), commentID)
	if err != nil {
		respondReactionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}
