package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 2
	maxUsernameLength = 32
	minPasswordLength = 8
	maxPasswordLength = 64
)

type CreateUserParams struct {
	Username string
	Password string
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (*User, error) {
	if err := validateUsername(p.Username); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}

	// username must be unique, case-insensitively
	_, err := selectUserByUsername(ctx, s.postgres, p.Username)
	if err == nil {
		return nil, newErrUsernameExists()
	}
	if !isNoRows(err) {
		return nil, newErrInternalSE().SetDebug(err)
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := &dbUser{
		UUID:      uuid.New(),
		Username:  p.Username,
		BcryptPwd: string(bcryptPwd),
		CreatedAt: time.Now(),
	}

	err = insertUser(ctx, s.postgres, row)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return row.toDomain(), nil
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength {
		return newErrUsernameTooShort(minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return newErrUsernameTooLong(maxUsernameLength)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return newErrPasswordTooLong(maxPasswordLength)
	}
	return nil
}
