package http

import "net/http"

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (a *API) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	token, err := a.authSvc.AdminLogin(r.Context(), sessionID, req.Email, req.Password)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token":           token,
		"isAuthenticated": true,
	})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	a.authSvc.Logout(r.Context(), sessionID)
	writeJSON(w, http.StatusOK, map[string]any{"isAuthenticated": false})
}
