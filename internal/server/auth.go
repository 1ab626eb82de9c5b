package server

import (
	"fmt"
	"net/http"

	"github.com/spliteasy/spliteasy/internal/apperr"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// handleCreateUser registers a new account. No auth required.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Name == "" {
		writeError(w, fmt.Errorf("%w: name is required", apperr.ErrValidation))
		return
	}
	if req.Email == "" {
		writeError(w, fmt.Errorf("%w: email is required", apperr.ErrValidation))
		return
	}
	if req.Password == "" {
		writeError(w, fmt.Errorf("%w: password is required", apperr.ErrValidation))
		return
	}

	user, err := s.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": user.ID})
}

// handleLogin verifies credentials and returns a bearer token valid for
// the configured TTL (24h by default).
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, apperr.ErrInvalidCredentials)
		return
	}

	token, err := s.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message:     "Login successful",
		AccessToken: token,
	})
}
