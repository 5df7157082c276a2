package user

import (
	"fmt"
	"net/http"

	"github.com/mathsolve/backend/srvcerror"
)

const ErrCodeUsernameTooShort = "username_too_short"

func newErrUsernameTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUsernameTooShort,
		fmt.Sprintf("username must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUsernameTooLong = "username_too_long"

func newErrUsernameTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUsernameTooLong,
		fmt.Sprintf("username must not be longer than %d characters", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUsernameAlreadyExists = "username_exists"

func newErrUsernameExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUsernameAlreadyExists,
		"username is already taken",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooLong = "password_too_long"

func newErrPasswordTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooLong,
		fmt.Sprintf("password must not be longer than %d characters", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"user was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeUsernameOrPasswordIncorrect = "username_or_password_incorrect"

func newErrUsernameOrPasswordIncorrect() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUsernameOrPasswordIncorrect,
		"username or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeCannotDeleteSelf = "cannot_delete_self"

func newErrCannotDeleteSelf() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCannotDeleteSelf,
		"you cannot delete your own account",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
