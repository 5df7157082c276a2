package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mathsolve/backend/httpjson"
	"github.com/mathsolve/backend/user"
)

func (h *UserHttpHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	type updateRequest struct {
		ProfilePicture *string `json:"profilePicture"`
	}

	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	var request updateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	updated, err := h.userSrvc.UpdateUser(r.Context(), callerUuid, user.UpdateUserParams{
		ProfilePicture: request.ProfilePicture,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, toUserJson(updated))
}
