package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mathsolve/backend/srvcerror"
	"github.com/mathsolve/backend/user"
	"github.com/mathsolve/backend/user/auth"
)

type User struct {
	UUID            string  `json:"uuid"`
	Username        string  `json:"username"`
	Points          int     `json:"points"`
	ProblemsSolved  int     `json:"problemsSolved"`
	ProblemsCreated int     `json:"problemsCreated"`
	Streak          int     `json:"streak"`
	IsAdmin         bool    `json:"isAdmin"`
	ProfilePicture  *string `json:"profilePicture,omitempty"`
}

func toUserJson(u *user.User) User {
	return User{
		UUID:            u.UUID.String(),
		Username:        u.Username,
		Points:          u.Points,
		ProblemsSolved:  u.ProblemsSolved,
		ProblemsCreated: u.ProblemsCreated,
		Streak:          u.Streak,
		IsAdmin:         u.IsAdmin,
		ProfilePicture:  u.ProfilePicture,
	}
}

var errNotAuthenticated = srvcerror.New(
	"unauthorized", "please log in",
).SetHttpStatusCode(http.StatusUnauthorized)

var errForbidden = srvcerror.New(
	"forbidden", "admin privileges required",
).SetHttpStatusCode(http.StatusForbidden)

// callerUUID extracts the authenticated caller's uuid from the JWT claims
// placed in the context by the auth middleware.
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

// requireAdmin re-checks the admin flag against the database rather than
// trusting the token, so a revoked admin loses access immediately.
func (h *UserHttpHandler) requireAdmin(r *http.Request) (uuid.UUID, error) {
	callerUuid, err := callerUUID(r)
	if err != nil {
		return uuid.Nil, err
	}
	caller, err := h.userSrvc.GetUserByUUID(r.Context(), callerUuid)
	if err != nil {
		return uuid.Nil, err
	}
	if !caller.IsAdmin {
		return uuid.Nil, errForbidden
	}
	return callerUuid, nil
}
