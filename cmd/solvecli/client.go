package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// apiClient is a thin wrapper over the mathsolve HTTP API. All responses
// come in the {status, data, code, message} envelope.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newApiClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type apiError struct {
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

type userPayload struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

type loginPayload struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

type problemPayload struct {
	ID         int64    `json:"id"`
	Type       string   `json:"type"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
	SolveCount int      `json:"solveCount"`
}

type recommendedPayload struct {
	Problem problemPayload `json:"problem"`
	Author  struct {
		Username string `json:"username"`
	} `json:"author"`
}

type checkAnswerPayload struct {
	Correct      bool   `json:"correct"`
	PointsEarned *int   `json:"pointsEarned"`
	Message      string `json:"message"`
}

func (c *apiClient) login(username string, password string) (*loginPayload, error) {
	var payload loginPayload
	err := c.call("POST", "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}
	c.token = payload.Token
	return &payload, nil
}

func (c *apiClient) recommend() (*recommendedPayload, error) {
	var payload []recommendedPayload
	if err := c.call("GET", "/problems/recommend?limit=1", nil, &payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, nil
	}
	return &payload[0], nil
}

func (c *apiClient) checkAnswer(problemID int64, answer string) (*checkAnswerPayload, error) {
	var payload checkAnswerPayload
	path := fmt.Sprintf("/problems/%d/check-answer", problemID)
	err := c.call("POST", path, map[string]string{"answer": answer}, &payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *apiClient) call(method string, path string, body any, out any) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		Status  string          `json:"status"`
		Data    json.RawMessage `json:"data"`
		ErrCode string          `json:"code"`
		ErrMsg  string          `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("unexpected response (%s): %w", resp.Status, err)
	}

	if envelope.Status != "success" {
		return &apiError{Code: envelope.ErrCode, Message: envelope.ErrMsg}
	}
	if out != nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}
