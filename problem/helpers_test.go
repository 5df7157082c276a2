package problem_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mathsolve/backend/problem"
	problemhttp "github.com/mathsolve/backend/problem/http"
	"github.com/mathsolve/backend/user"
	"github.com/mathsolve/backend/user/auth"
	userhttp "github.com/mathsolve/backend/user/http"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
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

// setupRouter composes the user and problem handlers the same way the
// server does, so tests can register users and work with problems over
// one mux.
func setupRouter(t *testing.T) http.Handler {
	pg := newTestPgDb(t)
	uploadDir := t.TempDir()

	userSrvc := user.NewUserSrvc(pg)
	problemSrvc := problem.NewProblemSrvc(pg)

	router := chi.NewRouter()
	router.Use(auth.GetJwtAuthMiddleware([]byte("test")))
	userhttp.NewUserHttpHandler(userSrvc, []byte("test"), uploadDir).RegisterRoutes(router)
	problemhttp.NewProblemHttpHandler(problemSrvc, uploadDir).RegisterRoutes(router)
	return router
}

// registerUser creates a user over HTTP and returns its bearer token.
func registerUser(t *testing.T, handler http.Handler, username string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": "password123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "Registration failed: %s", w.Body.String())

	var responseWrapper struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	err = json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err)
	return responseWrapper.Data.Token
}

// createProblem posts a multipart problem form and returns the recorder.
func createProblem(t *testing.T, handler http.Handler, token string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, form.WriteField(key, value))
	}
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/problems", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
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
