package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mathsolve/backend/httpjson"
)

const defaultLeaderboardSize = 10

func (h *UserHttpHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	type leaderboardRow struct {
		Rank           int     `json:"rank"`
		UUID           string  `json:"uuid"`
		Username       string  `json:"username"`
		Points         int     `json:"points"`
		ProblemsSolved int     `json:"problemsSolved"`
		ProfilePicture *string `json:"profilePicture,omitempty"`
	}

	limit := defaultLeaderboardSize
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			httpjson.WriteErrorJson(w, "invalid limit", http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = parsed
	}

	users, err := h.userSrvc.Leaderboard(r.Context(), limit)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	rows := make([]leaderboardRow, 0, len(users))
	for i, u := range users {
		rows = append(rows, leaderboardRow{
			Rank:           i + 1,
			UUID:           u.UUID.String(),
			Username:       u.Username,
			Points:         u.Points,
			ProblemsSolved: u.ProblemsSolved,
			ProfilePicture: u.ProfilePicture,
		})
	}

	httpjson.WriteSuccessJson(w, rows)
}
