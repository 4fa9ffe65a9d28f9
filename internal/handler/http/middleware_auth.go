package http

import (
	"net/http"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// and resolves it to an account via [service.AuthService.CurrentUser]. On
// success the full user record is stored in the request context under
// [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// Every rejection, whether the header is absent, the token malformed, expired,
// signed with the wrong key, missing its subject, or pointing at a deleted
// account, produces the same response: HTTP 401 with body "Could not validate
// credentials" and a "WWW-Authenticate: Bearer" challenge. The distinction is
// only logged, never surfaced to the client.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.unauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.unauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.CurrentUser(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("current user resolution failed")
			h.unauthorized(w)
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without re-parsing the token.
		ctx = utils.WithCurrentUser(ctx, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
