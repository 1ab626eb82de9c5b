package server

import "net/http"

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// handleGetUser returns a user's profile. The password hash is never
// included.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.userService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// handleUpdateUser applies a partial profile update; absent fields keep
// their current values.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.userService.UpdateUser(r.Context(), r.PathValue("id"), req.Name, req.Email); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}
