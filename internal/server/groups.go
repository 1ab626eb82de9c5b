package server

import (
	"fmt"
	"net/http"

	"github.com/spliteasy/spliteasy/internal/apperr"
	"github.com/spliteasy/spliteasy/internal/models"
)

type createGroupRequest struct {
	GroupName string `json:"group_name"`
}

type addMemberRequest struct {
	Email string `json:"email"`
}

type groupResponse struct {
	ID        string `json:"id"`
	GroupName string `json:"group_name"`
}

func toGroupResponse(group *models.Group) groupResponse {
	return groupResponse{ID: group.ID, GroupName: group.Name}
}

// handleCreateGroup creates a new group.
func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.GroupName == "" {
		writeError(w, fmt.Errorf("%w: group_name is required", apperr.ErrValidation))
		return
	}

	group, err := s.groupService.CreateGroup(r.Context(), req.GroupName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": group.ID})
}

// handleGetGroup returns a group by ID.
func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := s.groupService.GetGroup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(group))
}

// handleListGroups returns every group.
func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groupService.ListGroups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]groupResponse, len(groups))
	for i := range groups {
		resp[i] = toGroupResponse(&groups[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAddGroupMember joins an existing user, looked up by email, to
// the group.
func (s *Server) handleAddGroupMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" {
		writeError(w, fmt.Errorf("%w: email is required", apperr.ErrValidation))
		return
	}

	member, err := s.groupService.AddMember(r.Context(), r.PathValue("id"), req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": member.ID})
}

// handleGroupBalance returns each member's net balance for the group as
// a user_id to balance mapping. Positive balances owe into the pool.
func (s *Server) handleGroupBalance(w http.ResponseWriter, r *http.Request) {
	balances, err := s.groupService.GroupBalances(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balances)
}
