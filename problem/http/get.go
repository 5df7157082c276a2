package http

import (
	"log/slog"
	"net/http"

	"github.com/mathsolve/backend/httpjson"
	"github.com/mathsolve/backend/problem"
)

func (h *ProblemHttpHandler) Get(w http.ResponseWriter, r *http.Request) {
	problemID, err := problemIDParam(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	p, err := h.problemSrvc.GetProblem(r.Context(), problemID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	views, err := h.problemSrvc.Views(r.Context(), viewerUUID(r), []problem.Problem{*p})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}
	if len(views) == 0 {
		httpjson.WriteErrorJson(w, "problem author was not found", http.StatusNotFound, "author_not_found")
		return
	}

	httpjson.WriteSuccessJson(w, toViewJson(&views[0]))
}
