package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mathsolve/backend/httpjson"
	"github.com/mathsolve/backend/user"
	"github.com/mathsolve/backend/user/auth"
)

func (h *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	type registerResponse struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	token, err := auth.GenerateJWT(created.Username, created.UUID, created.IsAdmin, h.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, registerResponse{
		User:  toUserJson(created),
		Token: token,
	})
}
