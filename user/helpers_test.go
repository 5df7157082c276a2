package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/mathsolve/backend/user"
	"github.com/mathsolve/backend/user/auth"
	userhttp "github.com/mathsolve/backend/user/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPgDb(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       "mathsolve", // local dev pg user
		Password:   "mathsolve", // local dev pg password
		Host:       "localhost",
		Port:       "5433",
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New("../migrate")
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(ctx, config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func setupUserHttpHandler(t *testing.T) http.Handler {
	pg := newTestPgDb(t)
	userSrvc := user.NewUserSrvc(pg)
	userHandler := userhttp.NewUserHttpHandler(userSrvc, []byte("test"), t.TempDir())
	router := chi.NewRouter()
	router.Use(auth.GetJwtAuthMiddleware([]byte("test")))
	userHandler.RegisterRoutes(router)
	return router
}

func newJsonReq(method, path string, body map[string]interface{}) (*http.Request, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func register(t *testing.T, handler http.Handler, userData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req, err := newJsonReq(http.MethodPost, "/users", userData)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, handler http.Handler, loginData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req, err := newJsonReq(http.MethodPost, "/auth/login", loginData)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user and returns its bearer token.
func registerAndLogin(t *testing.T, handler http.Handler, username, password string) string {
	t.Helper()
	w := register(t, handler, map[string]interface{}{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "Registration failed: %s", w.Body.String())

	var responseWrapper struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err)
	require.NotEmpty(t, responseWrapper.Data.Token)
	return responseWrapper.Data.Token
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	assert.NotEqual(t, http.StatusOK, w.Code, "Expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	assert.Equal(t, "error", errorResponse.Status, "Expected status to be 'error'")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}
