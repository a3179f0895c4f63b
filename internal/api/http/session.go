package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
)

type sessionCtxKey struct{}

// ensureSession guarantees every request carries an opaque session id.
// The id correlates requests from one browser client; it carries no
// authentication meaning.
func (s *Server) ensureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if c, err := r.Cookie(s.sessionCookieName); err == nil && c.Value != "" {
			sessionID = c.Value
		}
		if sessionID == "" {
			id, err := generateSessionID()
			if err != nil {
				respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "action failed, try again")
				return
			}
			sessionID = id
			http.SetCookie(w, &http.Cookie{
				Name:     s.sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.sessionCookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionCtxKey{}).(string); ok {
		return v
	}
	return ""
}

func generateSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
