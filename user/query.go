package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (s *UserSrvc) GetUserByUUID(ctx context.Context, userUUID uuid.UUID) (*User, error) {
	row, err := selectUserByUUID(ctx, s.postgres, userUUID)
	if err != nil {
		if isNoRows(err) {
			return nil, newErrUserNotFound()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}
	return row.toDomain(), nil
}

func (s *UserSrvc) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	row, err := selectUserByUsername(ctx, s.postgres, username)
	if err != nil {
		if isNoRows(err) {
			return nil, newErrUserNotFound()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}
	return row.toDomain(), nil
}

// ListUsers returns every user, newest first. Admin table view.
func (s *UserSrvc) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.postgres.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		row, err := scanUser(rows)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		users = append(users, *row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return users, nil
}

// Leaderboard returns up to limit users ordered by points, ties broken by
// solved count and then username for a stable ordering.
func (s *UserSrvc) Leaderboard(ctx context.Context, limit int) ([]User, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.postgres.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY points DESC, problems_solved DESC, username ASC
		LIMIT $1
	`, limit)
	if err != nil {
		errMsg := fmt.Errorf("error querying leaderboard: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		row, err := scanUser(rows)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		users = append(users, *row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return users, nil
}
