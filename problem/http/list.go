package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mathsolve/backend/httpjson"
)

const defaultPageSize = 10

// List serves the problem feed: ?page=N&limit=M, newest first.
func (h *ProblemHttpHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 0
	limit := defaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			httpjson.WriteErrorJson(w, "invalid page", http.StatusBadRequest, "invalid_page")
			return
		}
		page = parsed
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			httpjson.WriteErrorJson(w, "invalid limit", http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = parsed
	}

	problems, err := h.problemSrvc.ListProblems(r.Context(), limit, page*limit)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	views, err := h.problemSrvc.Views(r.Context(), viewerUUID(r), problems)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, toViewListJson(views))
}
