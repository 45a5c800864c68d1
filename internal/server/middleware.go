package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type contextKey string

const actorKey contextKey = "actor"

// actor is the authenticated user attached to the request context.
type actor struct {
	ID   string
	Role string
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="restricted"`)
			respondError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		valid, err := s.users.ValidateUser(r.Context(), username, password)
		if err != nil {
			s.logger.Error("validate user", zap.String("username", username), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !valid {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		u, err := s.users.GetByUsername(r.Context(), username)
		if err != nil {
			s.logger.Error("load user", zap.String("username", username), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, actor{ID: u.ID, Role: u.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actorFrom(r *http.Request) (actor, bool) {
	a, ok := r.Context().Value(actorKey).(actor)
	return a, ok
}
