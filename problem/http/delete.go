package http

import (
	"log/slog"
	"net/http"

	"github.com/mathsolve/backend/httpjson"
	"github.com/mathsolve/backend/user/auth"
)

// Delete removes a problem. Authors may delete their own problems; admins
// may delete any.
func (h *ProblemHttpHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	claims := auth.ClaimsFromContext(r.Context())
	isAdmin := claims != nil && claims.IsAdmin

	err = h.problemSrvc.DeleteProblem(r.Context(), callerUuid, isAdmin, problemID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, "problem deleted successfully")
}
