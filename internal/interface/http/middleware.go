package http

import (
	"context"
	"errors"
	"net/http"

	domsession "example.com/trustylads/storefront/internal/domain/session"
)

const sessionHeader = "X-Session-ID"

type ctxKey int

const ctxSessionKey ctxKey = iota

var errMissingSession = errors.New("missing " + sessionHeader + " header")

// sessionMiddleware scopes cart, checkout and auth state to the caller's
// session id.
func (a *API) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(sessionHeader)
		if sessionID == "" {
			respondError(w, http.StatusBadRequest, errMissingSession)
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuthenticated gates the admin views on the session store's flag.
// This is a routing gate only; the backend re-checks the token itself.
func (a *API) requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := getSessionID(r.Context())
		if sessionID == "" || !a.authSvc.IsAuthenticated(r.Context(), sessionID) {
			respondError(w, http.StatusUnauthorized, domsession.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxSessionKey).(string); ok {
		return id
	}
	return ""
}
