package http

import (
	"log/slog"
	"net/http"

	"github.com/mathsolve/backend/httpjson"
)

func (h *ProblemHttpHandler) Save(w http.ResponseWriter, r *http.Request) {
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

	err = h.problemSrvc.SaveProblem(r.Context(), callerUuid, problemID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, "problem saved successfully")
}

func (h *ProblemHttpHandler) Unsave(w http.ResponseWriter, r *http.Request) {
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

	err = h.problemSrvc.UnsaveProblem(r.Context(), callerUuid, problemID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, "problem unsaved successfully")
}
