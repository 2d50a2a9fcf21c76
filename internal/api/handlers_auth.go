package api

import (
	"encoding/json"
	"net/http"

	"github.com/turtletrack/turtletrack/internal/api/respond"
	"github.com/turtletrack/turtletrack/internal/api/validate"
	"github.com/turtletrack/turtletrack/internal/auth"
	"github.com/turtletrack/turtletrack/internal/model"
)

// AuthHandler exposes login/register/logout and the current session.
type AuthHandler struct {
	session *auth.Manager
}

func NewAuthHandler(session *auth.Manager) *AuthHandler { return &AuthHandler{session: session} }

// Login POST /api/auth/login
// A failed login returns 200 with success=false; the outcome is data,
// not a transport error.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string     `json:"username"`
		Password string     `json:"password"`
		Role     model.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Role == "" {
		req.Role = model.RoleVolunteer
	}
	respond.WriteJSON(w, http.StatusOK, h.session.Login(req.Username, req.Password, req.Role))
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Username(req.Username); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Email(req.Email); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Password(req.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.session.Register(req.Username, req.Email, req.Password))
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Session GET /api/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	u := h.session.Current()
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": u != nil,
		"user":          u,
	})
}
