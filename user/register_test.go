package user_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHttp(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	userData := map[string]interface{}{
		"username": "testuser",
		"password": "password123",
	}

	w := register(t, userHandler, userData)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status string `json:"status"`
		Data   struct {
			User  map[string]interface{} `json:"user"`
			Token string                 `json:"token"`
		} `json:"data"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")

	assert.Equal(t, "success", responseWrapper.Status)
	assert.Contains(t, responseWrapper.Data.User, "uuid")
	assert.Equal(t, "testuser", responseWrapper.Data.User["username"])
	assert.Equal(t, float64(0), responseWrapper.Data.User["points"])
	assert.NotEmpty(t, responseWrapper.Data.Token)
}

func TestRegisterHttpDuplicateUsername(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	w := register(t, userHandler, map[string]interface{}{
		"username": "testuser",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, "First registration failed: %s", w.Body.String())

	// same username, different case
	w = register(t, userHandler, map[string]interface{}{
		"username": "TestUser",
		"password": "password456",
	})
	assertErrorInHttpResponse(t, w, "username_exists")
}

func TestRegisterHttpValidation(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	testCases := []struct {
		name      string
		userData  map[string]interface{}
		errorCode string
	}{
		{
			name:      "Username Too Short",
			userData:  map[string]interface{}{"username": "a", "password": "password123"},
			errorCode: "username_too_short",
		},
		{
			name:      "Password Too Short",
			userData:  map[string]interface{}{"username": "testuser", "password": "short"},
			errorCode: "password_too_short",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := register(t, userHandler, tc.userData)
			assertErrorInHttpResponse(t, w, tc.errorCode)
		})
	}
}
