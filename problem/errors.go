package problem

import (
	"net/http"

	"github.com/mathsolve/backend/srvcerror"
)

const ErrCodeProblemNotFound = "problem_not_found"

func newErrProblemNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		"problem was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidProblemType = "invalid_problem_type"

func newErrInvalidProblemType() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidProblemType,
		"problem type must be multiple-choice or short-answer",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeProblemTextEmpty = "problem_text_empty"

func newErrProblemTextEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemTextEmpty,
		"problem text must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeOptionsRequired = "options_required"

func newErrOptionsRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeOptionsRequired,
		"a multiple-choice problem needs at least two options",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAnswerNotAnOption = "answer_not_an_option"

func newErrAnswerNotAnOption() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAnswerNotAnOption,
		"the correct answer must be one of the options",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAnswerNotAnInteger = "answer_not_an_integer"

func newErrAnswerNotAnInteger() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAnswerNotAnInteger,
		"a short-answer problem needs an integer answer",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidDifficulty = "invalid_difficulty"

func newErrInvalidDifficulty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidDifficulty,
		"difficulty must be easy, medium or hard",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeBookmarkNotFound = "bookmark_not_found"

func newErrBookmarkNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeBookmarkNotFound,
		"saved problem was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNotProblemOwner = "not_problem_owner"

func newErrNotProblemOwner() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotProblemOwner,
		"only the author or an admin can delete a problem",
	).SetHttpStatusCode(http.StatusForbidden)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
