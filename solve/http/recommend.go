package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mathsolve/backend/httpjson"
)

func (h *SolveHttpHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	type problemJson struct {
		ID         int64    `json:"id"`
		Type       string   `json:"type"`
		Text       string   `json:"text"`
		Options    []string `json:"options,omitempty"`
		Image      *string  `json:"image,omitempty"`
		Difficulty string   `json:"difficulty"`
		Tags       []string `json:"tags,omitempty"`
		SolveCount int      `json:"solveCount"`
		CreatedAt  string   `json:"createdAt"`
	}

	type authorJson struct {
		UUID           string  `json:"uuid"`
		Username       string  `json:"username"`
		ProfilePicture *string `json:"profilePicture,omitempty"`
	}

	type recommendedJson struct {
		Problem  problemJson `json:"problem"`
		Author   authorJson  `json:"author"`
		IsSolved bool        `json:"isSolved"`
		IsSaved  bool        `json:"isSaved"`
	}

	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	problems, err := h.solveSrvc.Recommend(r.Context(), callerUuid, limit)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	views, err := h.problemSrvc.Views(r.Context(), &callerUuid, problems)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]recommendedJson, 0, len(views))
	for i := range views {
		v := &views[i]
		response = append(response, recommendedJson{
			Problem: problemJson{
				ID:         v.Problem.ID,
				Type:       string(v.Problem.Type),
				Text:       v.Problem.Text,
				Options:    v.Problem.Options,
				Image:      v.Problem.Image,
				Difficulty: string(v.Problem.Difficulty),
				Tags:       v.Problem.Tags,
				SolveCount: v.Problem.SolveCount,
				CreatedAt:  v.Problem.CreatedAt.Format(time.RFC3339),
			},
			Author: authorJson{
				UUID:           v.Author.UUID.String(),
				Username:       v.Author.Username,
				ProfilePicture: v.Author.ProfilePicture,
			},
			IsSolved: v.IsSolved,
			IsSaved:  v.IsSaved,
		})
	}

	httpjson.WriteSuccessJson(w, response)
}
