package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mathsolve/backend/problem"
	"github.com/mathsolve/backend/srvcerror"
	"github.com/mathsolve/backend/user/auth"
)

// ProblemJson is the public problem shape. The correct answer is never
// part of it.
type ProblemJson struct {
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

type AuthorJson struct {
	UUID           string  `json:"uuid"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

type ProblemWithAuthor struct {
	Problem  ProblemJson `json:"problem"`
	Author   AuthorJson  `json:"author"`
	IsSolved bool        `json:"isSolved"`
	IsSaved  bool        `json:"isSaved"`
}

func toProblemJson(p *problem.Problem) ProblemJson {
	return ProblemJson{
		ID:         p.ID,
		Type:       string(p.Type),
		Text:       p.Text,
		Options:    p.Options,
		Image:      p.Image,
		Difficulty: string(p.Difficulty),
		Tags:       p.Tags,
		SolveCount: p.SolveCount,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

func toViewJson(v *problem.View) ProblemWithAuthor {
	return ProblemWithAuthor{
		Problem: toProblemJson(&v.Problem),
		Author: AuthorJson{
			UUID:           v.Author.UUID.String(),
			Username:       v.Author.Username,
			ProfilePicture: v.Author.ProfilePicture,
		},
		IsSolved: v.IsSolved,
		IsSaved:  v.IsSaved,
	}
}

func toViewListJson(views []problem.View) []ProblemWithAuthor {
	response := make([]ProblemWithAuthor, 0, len(views))
	for i := range views {
		response = append(response, toViewJson(&views[i]))
	}
	return response
}

var errNotAuthenticated = srvcerror.New(
	"unauthorized", "please log in",
).SetHttpStatusCode(http.StatusUnauthorized)

func callerUUID(r *http.Request) (uuid.UUID, error) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		return uuid.Nil, errNotAuthenticated
	}
	id, err := uuid.Parse(claims.UUID)
	if err != nil {
		return uuid.Nil, errors.New("invalid uuid in token claims")
	}
	return id, nil
}

// viewerUUID is like callerUUID but tolerates anonymous requests.
func viewerUUID(r *http.Request) *uuid.UUID {
	id, err := callerUUID(r)
	if err != nil {
		return nil
	}
	return &id
}

func problemIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "problemId"), 10, 64)
	if err != nil {
		return 0, srvcerror.New(
			"invalid_problem_id", "invalid problem id",
		).SetHttpStatusCode(http.StatusBadRequest)
	}
	return id, nil
}
