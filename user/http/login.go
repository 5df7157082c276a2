package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mathsolve/backend/httpjson"
	"github.com/mathsolve/backend/user/auth"
)

func (h *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	type loginResponse struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	loggedIn, err := h.userSrvc.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	token, err := auth.GenerateJWT(loggedIn.Username, loggedIn.UUID, loggedIn.IsAdmin, h.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, loginResponse{
		User:  toUserJson(loggedIn),
		Token: token,
	})
}
