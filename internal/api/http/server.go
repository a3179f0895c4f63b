package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	appComment "github.com/forum-hub/forum-hub/internal/application/comment"
	appReaction "github.com/forum-hub/forum-hub/internal/application/reaction"
	appTopic "github.com/forum-hub/forum-hub/internal/application/topic"
	domainComment "github.com/forum-hub/forum-hub/internal/domain/comment"
	"github.com/forum-hub/forum-hub/internal/domain/reaction"
	domainTopic "github.com/forum-hub/forum-hub/internal/domain/topic"
	"github.com/forum-hub/forum-hub/internal/infrastructure/likeguard"
)

// Server holds dependencies for HTTP handlers. It is the caller the
// reaction core is composed by: user and session identity arrive already
// resolved (header and cookie), and the handlers wire the guard in front
// of the fast-path like.
type Server struct {
	topicSvc            *appTopic.Service
	commentSvc          *appComment.Service
	topicReactions      *appReaction.Service[*domainTopic.Topic]
	commentReactions    *appReaction.Service[*domainComment.Comment]
	guard               *likeguard.Guard
	sessionCookieName   string
	sessionCookieSecure bool
}

func NewServer(
	topicSvc *appTopic.Service,
	commentSvc *appComment.Service,
	topicReactions *appReaction.Service[*domainTopic.Topic],
	commentReactions *appReaction.Service[*domainComment.Comment],
	guard *likeguard.Guard,
	sessionCookieName string,
	sessionCookieSecure bool,
) *Server {
	return &Server{
		topicSvc:            topicSvc,
		commentSvc:          commentSvc,
		topicReactions:      topicReactions,
		commentReactions:    commentReactions,
		guard:               guard,
		sessionCookieName:   sessionCookieName,
		sessionCookieSecure: sessionCookieSecure,
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.ensureSession)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/topics", func(r chi.Router) {
			r.Post("/", s.createTopic)
			r.Get("/", s.listTopics)
			r.Get("/{topicId}", s.getTopic)
			r.Post("/{topicId}/like", s.toggleTopicLike)
			r.Post("/{topicId}/dislike", s.toggleTopicDislike)
			r.Post("/{topicId}/fast-like", s.fastLikeTopic)
			r.Post("/{topicId}/comments", s.createComment)
			r.Get("/{topicId}/comments", s.listComments)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/{commentId}", s.getComment)
			r.Post("/{commentId}/like", s.toggleCommentLike)
			r.Post("/{commentId}/dislike", s.toggleCommentDislike)
		})
	})

	return r
}

// Helpers

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}

// respondReactionError maps the reaction error taxonomy onto HTTP. A 409
// invites the client to retry; a 500 carries a generic message so a
// failed toggle is never reported as success.
func respondReactionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reaction.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "item not found")
	case errors.Is(err, reaction.ErrConflict):
		respondError(w, http.StatusConflict, "CONFLICT", "concurrent update, retry")
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "action failed, try again")
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}

// actingUser resolves the acting user from the X-User-ID header. Proper
// authentication lives upstream of this service.
func actingUser(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.Header.Get("X-User-ID"))
}

func parseLimitOffset(r *http.Request, defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil {
			limit = l
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if o, err := strconv.Atoi(v); err == nil {
			offset = o
		}
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
