package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func (s *UserSrvc) Login(ctx context.Context, username string, password string) (*User, error) {
	row, err := selectUserByUsername(ctx, s.postgres, username)
	if err != nil {
		if isNoRows(err) {
			return nil, newErrUsernameOrPasswordIncorrect()
		}
		errMsg := fmt.Errorf("error selecting user: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	err = bcrypt.CompareHashAndPassword([]byte(row.BcryptPwd), []byte(password))
	if err != nil {
		return nil, newErrUsernameOrPasswordIncorrect()
	}

	return row.toDomain(), nil
}
