package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spliteasy/spliteasy/internal/apperr"
	"github.com/spliteasy/spliteasy/internal/middleware"
	"github.com/spliteasy/spliteasy/internal/models"
)

type addExpenseRequest struct {
	UserID      string           `json:"user_id"`
	GroupID     string           `json:"group_id"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

type updateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

type expenseResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	GroupID     string          `json:"group_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

func toExpenseResponse(expense *models.Expense) expenseResponse {
	return expenseResponse{
		ID:          expense.ID,
		UserID:      expense.UserID,
		GroupID:     expense.GroupID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        time.Unix(expense.Date, 0).UTC().Format(time.RFC3339),
	}
}

// handleAddExpense records an expense. The payer is taken from the
// request body, not the token; ownership is not enforced.
func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.UserID == "" {
		writeError(w, fmt.Errorf("%w: user_id is required", apperr.ErrValidation))
		return
	}
	if req.GroupID == "" {
		writeError(w, fmt.Errorf("%w: group_id is required", apperr.ErrValidation))
		return
	}
	if req.Amount == nil {
		writeError(w, fmt.Errorf("%w: amount is required", apperr.ErrValidation))
		return
	}
	if req.Description == nil {
		writeError(w, fmt.Errorf("%w: description is required", apperr.ErrValidation))
		return
	}

	// The authenticated caller and the payer may differ; only identity
	// presence is enforced.
	slog.Debug("Expense submitted",
		"actor_id", middleware.GetUserID(r.Context()),
		"payer_id", req.UserID,
	)

	expense := &models.Expense{
		UserID:      req.UserID,
		GroupID:     req.GroupID,
		Amount:      *req.Amount,
		Description: *req.Description,
	}
	if err := s.expenseService.AddExpense(r.Context(), expense); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": expense.ID})
}

// handleGetExpense returns a full expense record.
func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := s.expenseService.GetExpense(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponse(expense))
}

// handleListGroupExpenses returns every expense in a group.
func (s *Server) handleListGroupExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenseService.ListGroupExpenses(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = toExpenseResponse(&expenses[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleUpdateExpense applies a partial update to amount and/or
// description.
func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req updateExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.expenseService.UpdateExpense(r.Context(), r.PathValue("id"), req.Amount, req.Description); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Expense updated successfully"})
}

// handleDeleteExpense removes an expense.
func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenseService.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}
