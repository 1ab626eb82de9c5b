// Package server implements the HTTP/JSON API under /api.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spliteasy/spliteasy/internal/auth"
	"github.com/spliteasy/spliteasy/internal/middleware"
	"github.com/spliteasy/spliteasy/internal/service"
)

// Server holds the services behind the API and builds the route table.
type Server struct {
	authService    *service.AuthService
	userService    *service.UserService
	groupService   *service.GroupService
	expenseService *service.ExpenseService
	jwtManager     *auth.JWTManager
}

// New creates a Server wired to the given services.
func New(
	authService *service.AuthService,
	userService *service.UserService,
	groupService *service.GroupService,
	expenseService *service.ExpenseService,
	jwtManager *auth.JWTManager,
) *Server {
	return &Server{
		authService:    authService,
		userService:    userService,
		groupService:   groupService,
		expenseService: expenseService,
		jwtManager:     jwtManager,
	}
}

// Routes registers every endpoint on a new mux. Auth-required routes are
// wrapped so the bearer token is validated before the handler runs;
// identity presence is all that is checked, not resource ownership.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", s.handleCreateUser)
	mux.Handle("GET /api/users/{id}", s.authed(s.handleGetUser))
	mux.Handle("PUT /api/users/{id}", s.authed(s.handleUpdateUser))

	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.HandleFunc("POST /api/groups", s.handleCreateGroup)
	mux.HandleFunc("GET /api/groups", s.handleListGroups)
	mux.HandleFunc("GET /api/groups/{id}", s.handleGetGroup)
	mux.HandleFunc("POST /api/groups/{id}/members", s.handleAddGroupMember)
	mux.HandleFunc("GET /api/groups/{id}/balance", s.handleGroupBalance)
	mux.Handle("GET /api/groups/{id}/expenses", s.authed(s.handleListGroupExpenses))

	mux.Handle("POST /api/expenses", s.authed(s.handleAddExpense))
	mux.HandleFunc("GET /api/expenses/{id}", s.handleGetExpense)
	mux.Handle("PUT /api/expenses/{id}", s.authed(s.handleUpdateExpense))
	mux.Handle("DELETE /api/expenses/{id}", s.authed(s.handleDeleteExpense))

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func (s *Server) authed(h http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(s.jwtManager, h)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
