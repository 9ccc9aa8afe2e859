package router

import (
	"log/slog"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/shandysiswandi/expensio/internal/pkg/jwt"
)

func middlewareNoop(next http.Handler) http.Handler {
	return next
}

func middlewareAuthorization(enforcer *casbin.Enforcer, publicEndpoints map[string]map[string]struct{}) Middleware {
	if enforcer == nil {
		return middlewareNoop
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			claims := jwt.GetAuth(r.Context())
			if claims == nil {
				writeJSON(w, map[string]string{"message": "Authentication required"}, http.StatusUnauthorized)
				return
			}

			allowed, err := enforcer.Enforce(claims.UserRole, path, r.Method)
			if err != nil {
				slog.ErrorContext(r.Context(), "authorization check failed", "error", err)
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
				return
			}

			if !allowed {
				writeJSON(w, errorResponse{Message: "You do not have permission to perform this action"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
