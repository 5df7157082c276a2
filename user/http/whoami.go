package http

import (
	"log/slog"
	"net/http"

	"github.com/mathsolve/backend/httpjson"
)

func (h *UserHttpHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	me, err := h.userSrvc.GetUserByUUID(r.Context(), callerUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, toUserJson(me))
}
