package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mathsolve/backend/httpjson"
)

func (h *UserHttpHandler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	_, err := h.requireAdmin(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	users, err := h.userSrvc.ListUsers(r.Context())
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]User, 0, len(users))
	for i := range users {
		response = append(response, toUserJson(&users[i]))
	}

	httpjson.WriteSuccessJson(w, response)
}

func (h *UserHttpHandler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	callerUuid, err := h.requireAdmin(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	userUuid, err := uuid.Parse(chi.URLParam(r, "userUuid"))
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid user uuid", http.StatusBadRequest, "invalid_user_uuid")
		return
	}

	err = h.userSrvc.DeleteUser(r.Context(), callerUuid, userUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, "user deleted successfully")
}

func (h *UserHttpHandler) AdminGrantAdmin(w http.ResponseWriter, r *http.Request) {
	type grantAdminRequest struct {
		Username string `json:"username"`
	}

	_, err := h.requireAdmin(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	var request grantAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	granted, err := h.userSrvc.GrantAdmin(r.Context(), request.Username)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, toUserJson(granted))
}
