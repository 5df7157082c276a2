package solve

import (
	"net/http"

	"github.com/mathsolve/backend/srvcerror"
)

const ErrCodeUnauthorized = "unauthorized"

func newErrUnauthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnauthorized,
		"please log in",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeSelfSolveForbidden = "self_solve_forbidden"

func newErrSelfSolveForbidden() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSelfSolveForbidden,
		"you cannot solve your own problem",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeAlreadySolved = "already_solved"

func newErrAlreadySolved() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadySolved,
		"you already solved this problem",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeProblemNotFound = "problem_not_found"

func newErrProblemNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		"problem was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAnswerMissing = "answer_missing"

func newErrAnswerMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAnswerMissing,
		"an answer is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
