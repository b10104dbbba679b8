package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mgarridov/wraps-backend/internal/api/httpx"
	"github.com/mgarridov/wraps-backend/internal/api/validate"
	"github.com/mgarridov/wraps-backend/internal/auth"
	"github.com/mgarridov/wraps-backend/internal/metrics"
	"github.com/mgarridov/wraps-backend/internal/middleware"
	"github.com/mgarridov/wraps-backend/internal/services"
)

const sessionMaxAge = int(auth.SessionTTL / time.Second)

type AuthHandler struct {
	users *services.UserService
	tm    *auth.TokenManager
	prod  bool
}

func NewAuthHandler(users *services.UserService, tm *auth.TokenManager, prod bool) *AuthHandler {
	return &AuthHandler{users: users, tm: tm, prod: prod}
}

// userResp is the auth wire shape; register/me carry email, login does not.
type userResp struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	in, ferrs := validate.Register(body.Email, body.Username, body.Password)
	if !ferrs.Empty() {
		httpx.WriteError(w, http.StatusBadRequest, ferrs.Report())
		return
	}

	u, err := h.users.Register(r.Context(), in.Email, in.Username, in.Password)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "Email ya existe")
		return
	case errors.Is(err, services.ErrUsernameTaken):
		httpx.WriteError(w, http.StatusConflict, "Username ya existe")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if !h.setSession(w, u.ID) {
		return
	}
	metrics.SignupsTotal.Inc()
	httpx.WriteJSON(w, http.StatusOK, userResp{ID: u.ID, Email: u.Email, Username: u.Username})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	in, ferrs := validate.Login(body.Username, body.Password)
	if !ferrs.Empty() {
		httpx.WriteError(w, http.StatusBadRequest, ferrs.Report())
		return
	}

	u, err := h.users.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		// same body for unknown user and wrong password
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		httpx.WriteError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	if !h.setSession(w, u.ID) {
		return
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	httpx.WriteJSON(w, http.StatusOK, userResp{ID: u.ID, Username: u.Username})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "No auth")
		return
	}
	u, err := h.users.GetByID(r.Context(), uid)
	if err != nil {
		// session outlived the user row
		httpx.WriteError(w, http.StatusUnauthorized, "No auth")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResp{ID: u.ID, Email: u.Email, Username: u.Username})
}

// setSession issues a token and delivers it via the HTTP-only cookie. The
// client never sees the token itself.
func (h *AuthHandler) setSession(w http.ResponseWriter, userID string) bool {
	token, err := h.tm.Issue(userID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	c := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.prod {
		// cross-origin cookie: SameSite=None requires Secure
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, c)
	return true
}
