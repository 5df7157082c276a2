package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserSrvc struct {
	postgres *pgxpool.Pool
}

func NewUserSrvc(pool *pgxpool.Pool) *UserSrvc {
	return &UserSrvc{postgres: pool}
}

type dbUser struct {
	UUID            uuid.UUID
	Username        string
	BcryptPwd       string
	Points          int
	ProblemsSolved  int
	ProblemsCreated int
	Streak          int
	IsAdmin         bool
	ProfilePicture  *string
	CreatedAt       time.Time
}

const userColumns = `uuid, username, bcrypt_pwd, points, problems_solved,
	problems_created, streak, is_admin, profile_picture, created_at`

func scanUser(row pgx.Row) (*dbUser, error) {
	var user dbUser
	err := row.Scan(
		&user.UUID,
		&user.Username,
		&user.BcryptPwd,
		&user.Points,
		&user.ProblemsSolved,
		&user.ProblemsCreated,
		&user.Streak,
		&user.IsAdmin,
		&user.ProfilePicture,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func selectUserByUUID(ctx context.Context, pg *pgxpool.Pool, userUUID uuid.UUID) (*dbUser, error) {
	row := pg.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE uuid = $1
	`, userUUID)
	return scanUser(row)
}

func selectUserByUsername(ctx context.Context, pg *pgxpool.Pool, username string) (*dbUser, error) {
	row := pg.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE lower(username) = lower($1)
	`, username)
	return scanUser(row)
}

func insertUser(ctx context.Context, pg *pgxpool.Pool, user *dbUser) error {
	_, err := pg.Exec(ctx, `
		INSERT INTO users (uuid, username, bcrypt_pwd, created_at)
		VALUES ($1, $2, $3, $4)
	`,
		user.UUID,
		user.Username,
		user.BcryptPwd,
		user.CreatedAt,
	)
	return err
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func (row *dbUser) toDomain() *User {
	return &User{
		UUID:            row.UUID,
		Username:        row.Username,
		Points:          row.Points,
		ProblemsSolved:  row.ProblemsSolved,
		ProblemsCreated: row.ProblemsCreated,
		Streak:          row.Streak,
		IsAdmin:         row.IsAdmin,
		ProfilePicture:  row.ProfilePicture,
		CreatedAt:       row.CreatedAt,
	}
}
