package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spliteasy/spliteasy/internal/auth"
	"github.com/spliteasy/spliteasy/internal/models"
	"github.com/spliteasy/spliteasy/internal/server"
	"github.com/spliteasy/spliteasy/internal/service"
	"github.com/spliteasy/spliteasy/internal/storage/sqlite"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := server.New(
		service.NewAuthService(authenticator, jwtManager),
		service.NewUserService(store),
		service.NewGroupService(store),
		service.NewExpenseService(store),
		jwtManager,
	)

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	return ts
}

// do issues a JSON request and decodes the JSON response into a generic
// value. token is attached as a bearer credential when non-empty.
func do(t *testing.T, ts *httptest.Server, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// doList is like do but for endpoints returning a JSON array.
func doList(t *testing.T, ts *httptest.Server, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func registerUser(t *testing.T, ts *httptest.Server, name, email string) string {
	t.Helper()

	status, body := do(t, ts, http.MethodPost, "/api/users", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, status)
	return body["id"].(string)
}

func login(t *testing.T, ts *httptest.Server, email string) string {
	t.Helper()

	status, body := do(t, ts, http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, status)
	return body["access_token"].(string)
}

func TestRegistration(t *testing.T) {
	ts := newTestServer(t)

	t.Run("creates a user", func(t *testing.T) {
		status, body := do(t, ts, http.MethodPost, "/api/users", "", map[string]string{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "correct-horse",
		})
		assert.Equal(t, http.StatusCreated, status)
		assert.NotEmpty(t, body["id"])
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		status, body := do(t, ts, http.MethodPost, "/api/users", "", map[string]string{
			"name":     "Other",
			"email":    "alice@example.com",
			"password": "correct-horse",
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, body["error"], "email")
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodPost, "/api/users", "", map[string]string{
			"name": "NoEmail",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodPost, "/api/users", "", map[string]string{
			"name":     "Bob",
			"email":    "bob@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestLoginAndAuth(t *testing.T) {
	ts := newTestServer(t)
	userID := registerUser(t, ts, "Alice", "alice@example.com")

	t.Run("valid credentials return a usable token", func(t *testing.T) {
		token := login(t, ts, "alice@example.com")

		status, body := do(t, ts, http.MethodGet, "/api/users/"+userID, token, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Alice", body["name"])
		assert.Equal(t, "alice@example.com", body["email"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodPost, "/api/login", "", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodGet, "/api/users/"+userID, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodGet, "/api/users/"+userID, "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		manager := auth.NewJWTManager(testSecret, -time.Hour)
		token, err := manager.Generate(&models.User{ID: userID, Email: "alice@example.com"})
		require.NoError(t, err)

		status, _ := do(t, ts, http.MethodGet, "/api/users/"+userID, token, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestUpdateUser(t *testing.T) {
	ts := newTestServer(t)
	userID := registerUser(t, ts, "Alice", "alice@example.com")
	token := login(t, ts, "alice@example.com")

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		status, body := do(t, ts, http.MethodPut, "/api/users/"+userID, token, map[string]string{
			"name": "Alicia",
		})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "User updated successfully", body["message"])

		status, body = do(t, ts, http.MethodGet, "/api/users/"+userID, token, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Alicia", body["name"])
		assert.Equal(t, "alice@example.com", body["email"])
	})

	t.Run("missing user returns 404", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodPut, "/api/users/nonexistent", token, map[string]string{
			"name": "Nobody",
		})
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestGroups(t *testing.T) {
	ts := newTestServer(t)

	t.Run("create, get, and list groups", func(t *testing.T) {
		status, body := do(t, ts, http.MethodPost, "/api/groups", "", map[string]string{
			"group_name": "Roommates",
		})
		require.Equal(t, http.StatusCreated, status)
		groupID := body["id"].(string)

		status, body = do(t, ts, http.MethodGet, "/api/groups/"+groupID, "", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Roommates", body["group_name"])

		status, groups := doList(t, ts, http.MethodGet, "/api/groups", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, groups, 1)
	})

	t.Run("missing group_name is rejected", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodPost, "/api/groups", "", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("missing group returns 404", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodGet, "/api/groups/nonexistent", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("member joins by email", func(t *testing.T) {
		registerUser(t, ts, "Bob", "bob@example.com")

		status, body := do(t, ts, http.MethodPost, "/api/groups", "", map[string]string{
			"group_name": "Trip",
		})
		require.Equal(t, http.StatusCreated, status)
		groupID := body["id"].(string)

		status, body = do(t, ts, http.MethodPost, "/api/groups/"+groupID+"/members", "", map[string]string{
			"email": "bob@example.com",
		})
		assert.Equal(t, http.StatusCreated, status)
		assert.NotEmpty(t, body["id"])
	})

	t.Run("unknown email returns 404", func(t *testing.T) {
		status, body := do(t, ts, http.MethodPost, "/api/groups", "", map[string]string{
			"group_name": "Lunch",
		})
		require.Equal(t, http.StatusCreated, status)
		groupID := body["id"].(string)

		status, _ = do(t, ts, http.MethodPost, "/api/groups/"+groupID+"/members", "", map[string]string{
			"email": "nobody@example.com",
		})
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestExpenses(t *testing.T) {
	ts := newTestServer(t)
	userID := registerUser(t, ts, "Alice", "alice@example.com")
	token := login(t, ts, "alice@example.com")

	status, body := do(t, ts, http.MethodPost, "/api/groups", "", map[string]string{
		"group_name": "Roommates",
	})
	require.Equal(t, http.StatusCreated, status)
	groupID := body["id"].(string)

	addExpense := func(t *testing.T, amount float64, description string) string {
		t.Helper()
		status, body := do(t, ts, http.MethodPost, "/api/expenses", token, map[string]any{
			"user_id":     userID,
			"group_id":    groupID,
			"amount":      amount,
			"description": description,
		})
		require.Equal(t, http.StatusCreated, status)
		return body["id"].(string)
	}

	t.Run("create and fetch an expense", func(t *testing.T) {
		expenseID := addExpense(t, 42.5, "Groceries")

		status, body := do(t, ts, http.MethodGet, "/api/expenses/"+expenseID, "", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, userID, body["user_id"])
		assert.Equal(t, groupID, body["group_id"])
		assert.Equal(t, "42.5", body["amount"])
		assert.Equal(t, "Groceries", body["description"])
		assert.NotEmpty(t, body["date"])
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodPost, "/api/expenses", token, map[string]any{
			"user_id":  userID,
			"group_id": groupID,
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("creating without auth is rejected", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodPost, "/api/expenses", "", map[string]any{
			"user_id":     userID,
			"group_id":    groupID,
			"amount":      1,
			"description": "x",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("list group expenses requires auth", func(t *testing.T) {
		addExpense(t, 10, "Coffee")

		status, _ := doList(t, ts, http.MethodGet, "/api/groups/"+groupID+"/expenses", token)
		assert.Equal(t, http.StatusOK, status)

		status, _ = do(t, ts, http.MethodGet, "/api/groups/"+groupID+"/expenses", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("partial update changes amount only", func(t *testing.T) {
		expenseID := addExpense(t, 10, "Snacks")

		status, body := do(t, ts, http.MethodPut, "/api/expenses/"+expenseID, token, map[string]any{
			"amount": 12.34,
		})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Expense updated successfully", body["message"])

		status, body = do(t, ts, http.MethodGet, "/api/expenses/"+expenseID, "", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "12.34", body["amount"])
		assert.Equal(t, "Snacks", body["description"])
	})

	t.Run("delete then fetch returns 404", func(t *testing.T) {
		expenseID := addExpense(t, 5, "Ephemeral")

		status, _ := do(t, ts, http.MethodDelete, "/api/expenses/"+expenseID, token, nil)
		assert.Equal(t, http.StatusOK, status)

		status, _ = do(t, ts, http.MethodGet, "/api/expenses/"+expenseID, "", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("deleting a missing expense returns 404", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodDelete, "/api/expenses/nonexistent", token, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestGroupBalance(t *testing.T) {
	ts := newTestServer(t)

	aliceID := registerUser(t, ts, "Alice", "alice@example.com")
	bobID := registerUser(t, ts, "Bob", "bob@example.com")
	carolID := registerUser(t, ts, "Carol", "carol@example.com")
	token := login(t, ts, "alice@example.com")

	status, body := do(t, ts, http.MethodPost, "/api/groups", "", map[string]string{
		"group_name": "Trip",
	})
	require.Equal(t, http.StatusCreated, status)
	groupID := body["id"].(string)

	for _, email := range []string{"alice@example.com", "bob@example.com", "carol@example.com"} {
		status, _ := do(t, ts, http.MethodPost, "/api/groups/"+groupID+"/members", "", map[string]string{
			"email": email,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	t.Run("equal split settles a single payer", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodPost, "/api/expenses", token, map[string]any{
			"user_id":     aliceID,
			"group_id":    groupID,
			"amount":      90,
			"description": "Hotel",
		})
		require.Equal(t, http.StatusCreated, status)

		status, balances := do(t, ts, http.MethodGet, "/api/groups/"+groupID+"/balance", "", nil)
		require.Equal(t, http.StatusOK, status)

		// share = 30; Alice covered 90 so she is owed 60
		assert.Equal(t, "-60", balances[aliceID])
		assert.Equal(t, "30", balances[bobID])
		assert.Equal(t, "30", balances[carolID])
	})

	t.Run("missing group returns 404", func(t *testing.T) {
		status, _ := do(t, ts, http.MethodGet, "/api/groups/nonexistent/balance", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("empty group is rejected, not a division fault", func(t *testing.T) {
		status, body := do(t, ts, http.MethodPost, "/api/groups", "", map[string]string{
			"group_name": "Empty",
		})
		require.Equal(t, http.StatusCreated, status)
		emptyID := body["id"].(string)

		status, body = do(t, ts, http.MethodGet, "/api/groups/"+emptyID+"/balance", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, body["error"], "members")
	})
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	status, body := do(t, ts, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
