package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mathsolve/backend/httpjson"
)

func (h *ProblemHttpHandler) MyProblems(w http.ResponseWriter, r *http.Request) {
	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	problems, err := h.problemSrvc.UserProblems(r.Context(), callerUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]ProblemJson, 0, len(problems))
	for i := range problems {
		response = append(response, toProblemJson(&problems[i]))
	}

	httpjson.WriteSuccessJson(w, response)
}

func (h *ProblemHttpHandler) MySolved(w http.ResponseWriter, r *http.Request) {
	type solvedJson struct {
		Problem      ProblemJson `json:"problem"`
		PointsEarned int         `json:"pointsEarned"`
		SolvedAt     string      `json:"solvedAt"`
	}

	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	entries, err := h.problemSrvc.SolvedProblems(r.Context(), callerUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]solvedJson, 0, len(entries))
	for i := range entries {
		response = append(response, solvedJson{
			Problem:      toProblemJson(&entries[i].Problem),
			PointsEarned: entries[i].PointsEarned,
			SolvedAt:     entries[i].SolvedAt.Format(time.RFC3339),
		})
	}

	httpjson.WriteSuccessJson(w, response)
}

func (h *ProblemHttpHandler) MySaved(w http.ResponseWriter, r *http.Request) {
	type savedJson struct {
		Problem ProblemJson `json:"problem"`
		SavedAt string      `json:"savedAt"`
	}

	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	entries, err := h.problemSrvc.SavedProblems(r.Context(), callerUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]savedJson, 0, len(entries))
	for i := range entries {
		response = append(response, savedJson{
			Problem: toProblemJson(&entries[i].Problem),
			SavedAt: entries[i].SavedAt.Format(time.RFC3339),
		})
	}

	httpjson.WriteSuccessJson(w, response)
}
