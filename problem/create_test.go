package problem_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProblemHttp(t *testing.T) {
	router := setupRouter(t)
	token := registerUser(t, router, "author")

	w := createProblem(t, router, token, map[string]string{
		"type":          "multiple-choice",
		"text":          "What is 2 + 2?",
		"options":       `["3", "4", "5"]`,
		"correctAnswer": "4",
		"difficulty":    "easy",
		"tags":          "arithmetic, basics",
	})

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")

	assert.Equal(t, "success", responseWrapper.Status)
	assert.Equal(t, "What is 2 + 2?", responseWrapper.Data["text"])
	assert.Equal(t, "easy", responseWrapper.Data["difficulty"])
	assert.EqualValues(t, []interface{}{"3", "4", "5"}, responseWrapper.Data["options"])
	// the correct answer never leaves the server
	assert.NotContains(t, responseWrapper.Data, "correctAnswer")
	assert.NotContains(t, w.Body.String(), "correctAnswer")
}

func TestCreateProblemHttpValidation(t *testing.T) {
	router := setupRouter(t)
	token := registerUser(t, router, "author")

	testCases := []struct {
		name      string
		fields    map[string]string
		errorCode string
	}{
		{
			name: "Answer Not An Option",
			fields: map[string]string{
				"type":          "multiple-choice",
				"text":          "What is 2 + 2?",
				"options":       `["3", "5"]`,
				"correctAnswer": "4",
			},
			errorCode: "answer_not_an_option",
		},
		{
			name: "Short Answer Not An Integer",
			fields: map[string]string{
				"type":          "short-answer",
				"text":          "What is 2 + 2?",
				"correctAnswer": "four",
			},
			errorCode: "answer_not_an_integer",
		},
		{
			name: "Empty Text",
			fields: map[string]string{
				"type":          "short-answer",
				"text":          "",
				"correctAnswer": "4",
			},
			errorCode: "problem_text_empty",
		},
		{
			name: "Unknown Type",
			fields: map[string]string{
				"type":          "essay",
				"text":          "Discuss.",
				"correctAnswer": "anything",
			},
			errorCode: "invalid_problem_type",
		},
		{
			name: "Too Few Options",
			fields: map[string]string{
				"type":          "multiple-choice",
				"text":          "What is 2 + 2?",
				"options":       `["4"]`,
				"correctAnswer": "4",
			},
			errorCode: "options_required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := createProblem(t, router, token, tc.fields)
			assertErrorInHttpResponse(t, w, tc.errorCode)
		})
	}
}

func TestCreateProblemHttpUnauthenticated(t *testing.T) {
	router := setupRouter(t)

	w := createProblem(t, router, "", map[string]string{
		"type":          "short-answer",
		"text":          "What is 2 + 2?",
		"correctAnswer": "4",
	})
	assertErrorInHttpResponse(t, w, "unauthorized")
}

func TestGetProblemHttp(t *testing.T) {
	router := setupRouter(t)
	token := registerUser(t, router, "author")

	w := createProblem(t, router, token, map[string]string{
		"type":          "short-answer",
		"text":          "What is 6 * 7?",
		"correctAnswer": "42",
		"difficulty":    "hard",
	})
	require.Equal(t, http.StatusOK, w.Code, "Creation failed: %s", w.Body.String())

	var created struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)

	req := httptest.NewRequest(http.MethodGet, "/problems/42000", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assertErrorInHttpResponse(t, w2, "problem_not_found")

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/problems/%d", created.Data.ID), nil)
	w2 = httptest.NewRecorder()
	router.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code, "Response body: %s", w2.Body.String())

	var responseWrapper struct {
		Status string `json:"status"`
		Data   struct {
			Problem  map[string]interface{} `json:"problem"`
			Author   map[string]interface{} `json:"author"`
			IsSolved bool                   `json:"isSolved"`
			IsSaved  bool                   `json:"isSaved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &responseWrapper))

	assert.Equal(t, "success", responseWrapper.Status)
	assert.Equal(t, "What is 6 * 7?", responseWrapper.Data.Problem["text"])
	assert.Equal(t, "author", responseWrapper.Data.Author["username"])
	assert.False(t, responseWrapper.Data.IsSolved)
	assert.NotContains(t, w2.Body.String(), "correctAnswer")
}
