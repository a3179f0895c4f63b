package httpapi

import (
	"net/http"
)

func (s *Server) toggleTopicLike(w http.ResponseWriter, r *http.Request) {
	topicID, err := parseIDParam(r, "topicId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid topic id")
		return
	}
	userID, err := actingUser(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "missing or invalid X-User-ID")
		return
	}
	t, err := s.topicReactions.ToggleLike(r.Context(), topicID, userID)
	if err != nil {
		respondReactionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *Server) toggleTopicDislike(w http.ResponseWriter, r *http.Request) {
	topicID, err := parseIDParam(r, "topicId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid topic id")
		return
	}
	userID, err := actingUser(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "missing or invalid X-User-ID")
		return
	}
	t, err := s.topicReactions.ToggleDislike(r.Context(), topicID, userID)
	if err != nil {
		respondReactionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *Server) toggleCommentLike(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseIDParam(r, "commentId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid comment id")
		return
	}
	userID, err := actingUser(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "missing or invalid X-User-ID")
		return
	}
	c, err := s.commentReactions.ToggleLike(r.Context(), commentID, userID)
	if err != nil {
		respondReactionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) toggleCommentDislike(w http.ResponseWriter, r *http.Request) {
	commentID, err := parseIDParam(r, "commentId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid comment id")
		return
	}
	userID, err := actingUser(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "missing or invalid X-User-ID")
		return
	}
	c, err := s.commentReactions.ToggleDislike(r.Context(), commentID, userID)
	if err != nil {
		respondReactionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// fastLikeTopic is the throttled counter-only like. Check and record are
// two separate guard calls; two concurrent requests from one session can
// both pass the check. The guard is a best-effort throttle, not a lock.
func (s *Server) fastLikeTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := parseIDParam(r, "topicId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid topic id")
		return
	}
	sessionID := sessionIDFromContext(r.Context())
	if !s.guard.CanLike(sessionID, topicID) {
		respondError(w, http.StatusForbidden, "ALREADY_LIKED", "this session already liked the topic")
		return
	}
	count, err := s.topicSvc.IncrementLikes(r.Context(), topicID)
	if err != nil {
		respondReactionError(w, err)
		return
	}
	s.guard.RecordLike(sessionID, topicID)
	respondJSON(w, http.StatusOK, map[string]interface{}{"likeCount": count})
}
