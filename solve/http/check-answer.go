package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mathsolve/backend/httpjson"
	"github.com/mathsolve/backend/srvcerror"
	"github.com/mathsolve/backend/user/auth"
)

func (h *SolveHttpHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	type checkAnswerRequest struct {
		Answer string `json:"answer"`
	}

	type checkAnswerResponse struct {
		Correct      bool   `json:"correct"`
		PointsEarned *int   `json:"pointsEarned,omitempty"`
		Message      string `json:"message"`
	}

	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	problemID, err := problemIDParam(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	var request checkAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := h.solveSrvc.Submit(r.Context(), callerUuid, problemID, request.Answer)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	if !result.Correct {
		httpjson.WriteSuccessJson(w, checkAnswerResponse{
			Correct: false,
			Message: "Incorrect answer. Try again!",
		})
		return
	}

	httpjson.WriteSuccessJson(w, checkAnswerResponse{
		Correct:      true,
		PointsEarned: &result.PointsEarned,
		Message:      "Correct answer!",
	})
}

var errNotAuthenticated = srvcerror.New(
	"unauthorized", "please log in",
).SetHttpStatusCode(http.StatusUnauthorized)

func callerUUID(r *http.Request) (uuid.UUID, error) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		return uuid.Nil, errNotAuthenticated
	}
	id, err := uuid.Parse(claims.UUID)
	if err != nil {
		return uuid.Nil, errors.New("invalid uuid in token claims")
	}
	return id, nil
}

func problemIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "problemId"), 10, 64)
	if err != nil {
		return 0, srvcerror.New(
			"invalid_problem_id", "invalid problem id",
		).SetHttpStatusCode(http.StatusBadRequest)
	}
	return id, nil
}
